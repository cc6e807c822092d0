// Package pipeline threads a frame through checkpointed transform steps.
// Each step may declare pre and post rules; the run stops at the first
// violation and the error names the step that introduced the bad data.
//
//	p := pipeline.New([]pipeline.Step{
//	    {
//	        Name:  "log-income",
//	        Apply: func(f *frame.Frame) (*frame.Frame, error) { return f.MapFloat("income", math.Log) },
//	        Post:  []pipeline.RuleFunc{func(f *frame.Frame) checks.Rule { return checks.HasNoNegInfs(f, "income") }},
//	    },
//	})
//	out, err := p.Run(ctx, f)
//
// This is the inline-checkpoint pattern: rather than validating once at the
// end and guessing which transform broke the data, every step is bracketed
// by the invariants it must preserve.
package pipeline
