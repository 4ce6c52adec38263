package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/steved/routetable/pkg/config"
	"github.com/steved/routetable/pkg/dump"
	"github.com/steved/routetable/pkg/report"
)

var log logr.Logger
var debug bool

var (
	format        string
	snapshotPath  string
	skipMalformed bool
)

var rootCmd = &cobra.Command{
	Use:               "rt",
	Short:             "Print the IPv4 routing table with route types and origin protocols spelled out.",
	Version:           config.Version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		zapConfig := zap.Config{
			Level:             zap.NewAtomicLevelAt(zap.InfoLevel),
			Development:       false,
			DisableCaller:     true,
			DisableStacktrace: true,
			Encoding:          "console",
			EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
			OutputPaths:       []string{"stderr"},
			ErrorOutputPaths:  []string{"stderr"},
		}

		if debug {
			zapConfig.Development = true
			zapConfig.DisableCaller = false
			zapConfig.DisableStacktrace = false
			zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}

		log = zapr.NewLogger(zap.Must(zapConfig.Build()))
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		cfg, err := config.NewConfig(
			config.WithFormat(format),
			config.WithSnapshot(snapshotPath),
			config.WithSkipMalformed(skipMalformed),
		)
		if err != nil {
			return err
		}

		return dump.Run(logr.NewContext(ctx, log), cfg, cmd.OutOrStdout())
	},
}

func init() {
	var (
		debugDefault bool
		err          error
	)

	if envDebug := os.Getenv("DEBUG"); envDebug != "" {
		debugDefault, err = strconv.ParseBool(envDebug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to parse DEBUG env variable: %v\n", err)
		}
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", debugDefault, "Toggle debug logging")

	rootCmd.Flags().StringVarP(&format, "format", "f", "text", fmt.Sprintf("Output format (%s)", strings.Join(report.Formats, ", ")))
	rootCmd.Flags().StringVar(&snapshotPath, "from", "", "Replay a snapshot file instead of reading the local routing table")
	rootCmd.Flags().BoolVar(&skipMalformed, "skip-malformed", false, "Skip rows the provider returned in an unexpected shape instead of failing")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
