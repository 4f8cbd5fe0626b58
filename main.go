package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/antigravity/morocco-transport/internal/transport"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var pretty bool
	var logLevel string

	cmd := &cobra.Command{
		Use:           "transportcatalogue",
		Short:         "Answer bus-route queries over a stop/bus catalogue read from stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			defer logger.Sync()

			return run(cmd.InOrStdin(), cmd.OutOrStdout(), logger, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the output JSON for human inspection")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")

	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("unknown level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zapLevel
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func run(in io.Reader, out io.Writer, logger *zap.Logger, pretty bool) error {
	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	doc, err := transport.Decode(raw)
	if err != nil {
		logger.Error("parse failed", zap.Error(err))
		return err
	}

	h, err := transport.Load(doc, logger)
	if err != nil {
		logger.Error("load failed", zap.Error(err))
		return err
	}

	results := transport.RunQueries(h, doc.StatRequests)
	logger.Debug("queries answered", zap.Int("count", len(results)))

	var encoded []byte
	if pretty {
		encoded, err = json.MarshalIndent(results, "", "  ")
	} else {
		encoded, err = json.Marshal(results)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	_, err = out.Write(encoded)
	return err
}
