package main

import (
	"github.com/spf13/cobra"

	"github.com/ianozsvald/bulwark/pkg/config"
	"github.com/ianozsvald/bulwark/pkg/frame"
	"github.com/ianozsvald/bulwark/pkg/logger"
	"github.com/ianozsvald/bulwark/pkg/suite"
)

type appConfig struct {
	LogLevel  string `env:"BULWARK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BULWARK_LOG_FORMAT" envDefault:"text"`
}

func newCheckCmd() *cobra.Command {
	var (
		dataPath   string
		suitePath  string
		indexCol   string
		stringCols []string
		failFast   bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a CSV dataset against a check suite",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			log := logger.New(
				logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
				logger.WithFormat(logFormat(cfg.LogFormat)),
			)

			var opts []frame.CSVOption
			if indexCol != "" {
				opts = append(opts, frame.WithIndexColumn(indexCol))
			}
			if len(stringCols) > 0 {
				opts = append(opts, frame.WithStringColumns(stringCols...))
			}
			f, err := frame.ReadCSVFile(dataPath, opts...)
			if err != nil {
				return err
			}

			s, err := suite.LoadFile(suitePath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fail-fast") {
				s.FailFast = &failFast
			}

			log.Info("running check suite",
				"data", dataPath, "suite", suitePath, "rows", f.Len(), "cols", f.Width())
			if err := s.Run(f); err != nil {
				return err
			}
			log.Info("validation passed", "data", dataPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Path to the CSV dataset")
	cmd.Flags().StringVar(&suitePath, "suite", "", "Path to the YAML check suite")
	cmd.Flags().StringVar(&indexCol, "index-col", "", "Column to use as row index")
	cmd.Flags().StringSliceVar(&stringCols, "string-cols", nil, "Columns to load as strings, skipping numeric sniffing")
	cmd.Flags().BoolVar(&failFast, "fail-fast", true, "Stop at the first violation (overrides the suite's fail_fast)")
	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("suite")
	return cmd
}

func logFormat(s string) logger.Format {
	if s == string(logger.FormatJSON) {
		return logger.FormatJSON
	}
	return logger.FormatText
}
