package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ianozsvald/bulwark/pkg/checks"
	"github.com/ianozsvald/bulwark/pkg/frame"
)

// RuleFunc builds a check rule against the frame a step is about to see or
// has just produced.
type RuleFunc func(*frame.Frame) checks.Rule

// Step couples a frame transform with checkpoint rules. Pre rules run
// against the step's input, Post rules against its output, both failing
// fast. A step with a nil Apply is a pure checkpoint.
type Step struct {
	Name  string
	Apply func(*frame.Frame) (*frame.Frame, error)
	Pre   []RuleFunc
	Post  []RuleFunc
}

// Pipeline threads a frame through a sequence of checkpointed steps.
type Pipeline struct {
	steps []Step
	log   *slog.Logger
}

// Option configures pipeline construction.
type Option func(*Pipeline)

// WithLogger sets the logger for step outcomes.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// New builds a pipeline over the given steps.
func New(steps []Step, opts ...Option) *Pipeline {
	p := &Pipeline{steps: steps, log: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run applies each step in order, stopping at the first violation or
// transform error. The returned error names the step at fault, so a broken
// invariant surfaces where the bad data was introduced rather than as a
// confusing downstream symptom.
func (p *Pipeline) Run(ctx context.Context, f *frame.Frame) (*frame.Frame, error) {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := verify(f, step.Pre); err != nil {
			p.log.ErrorContext(ctx, "pre-check failed", "step", step.Name, "error", err)
			return nil, fmt.Errorf("step %q pre-check: %w", step.Name, err)
		}

		if step.Apply != nil {
			out, err := step.Apply(f)
			if err != nil {
				p.log.ErrorContext(ctx, "transform failed", "step", step.Name, "error", err)
				return nil, fmt.Errorf("step %q: %w", step.Name, err)
			}
			f = out
		}

		if err := verify(f, step.Post); err != nil {
			p.log.ErrorContext(ctx, "post-check failed", "step", step.Name, "error", err)
			return nil, fmt.Errorf("step %q post-check: %w", step.Name, err)
		}

		p.log.DebugContext(ctx, "step completed", "step", step.Name, "rows", f.Len(), "cols", f.Width())
	}
	return f, nil
}

func verify(f *frame.Frame, ruleFuncs []RuleFunc) error {
	rules := make([]checks.Rule, len(ruleFuncs))
	for i, rf := range ruleFuncs {
		rules[i] = rf(f)
	}
	return checks.Verify(rules...)
}
