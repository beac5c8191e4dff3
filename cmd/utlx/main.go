// Package main provides the CLI entry point for utlx, a format-agnostic
// functional transformation language and runtime.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/utlx-lang/utlx/engine"
	"github.com/utlx-lang/utlx/log"
	"github.com/utlx-lang/utlx/profile"
	"github.com/utlx-lang/utlx/version"
)

func main() {
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()

	var scriptPath string

	var outputPath string

	var logFilePath string

	rootCmd := &cobra.Command{
		Use:           "utlx [flags] <script.utlx> [input-file]",
		Short:         "Run a UTL-X transformation script",
		Long:          `utlx compiles a UTL-X script and runs it against an input file (or stdin), writing the serialized result to stdout (or --output).`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			scriptPath = args[0]

			inputPath := "-"
			if len(args) == 2 {
				inputPath = args[1]
			}

			return run(cmd, logCfg, profileCfg, scriptPath, inputPath, outputPath, logFilePath)
		},
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", "",
		"also write logs to this file, fanned out to stderr alongside it")

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, logCfg *log.Config, profileCfg *profile.Config, scriptPath, inputPath, outputPath, logFilePath string) error {
	handler, stopLogging, err := newLogHandler(cmd, logCfg, logFilePath)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	defer stopLogging()

	logger := slog.New(handler)

	prof := profileCfg.NewProfiler()
	if err := prof.Start(); err != nil {
		return fmt.Errorf("starting profiler: %w", err)
	}

	defer func() {
		if stopErr := prof.Stop(); stopErr != nil {
			logger.Error("profiler stop failed", "error", stopErr)
		}
	}()

	source, err := os.ReadFile(scriptPath) //nolint:gosec // script path is a CLI argument, read intentionally.
	if err != nil {
		return fmt.Errorf("reading script %s: %w", scriptPath, err)
	}

	eng, err := engine.Compile(string(source))
	if err != nil {
		return fmt.Errorf("compiling %s: %w", scriptPath, err)
	}

	input, err := readInput(inputPath)
	if err != nil {
		return err
	}

	result, err := eng.Transform(input, nil, engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("transforming %s: %w", inputPath, err)
	}

	return writeOutput(cmd, outputPath, result)
}

// newLogHandler builds the log handler for run. With no --log-file it logs
// straight to cmd's stderr. With --log-file it writes to the file and, per
// the fan-out pattern documented in [log.Publisher], tees the same stream to
// a [log.Publisher] subscription that relays entries to stderr, so neither
// consumer can block the other. The returned stop func closes the file and
// drains the subscriber goroutine; callers must defer it.
func newLogHandler(cmd *cobra.Command, logCfg *log.Config, logFilePath string) (log.Handler, func(), error) {
	if logFilePath == "" {
		handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
		if err != nil {
			return nil, nil, err
		}

		return handler, func() {}, nil
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // log file path is a CLI argument.
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", logFilePath, err)
	}

	pub := log.NewPublisher()
	sub := pub.Subscribe()

	done := make(chan struct{})

	go func() {
		defer close(done)

		for entry := range sub.C() {
			_, _ = cmd.ErrOrStderr().Write(entry)
		}
	}()

	handler, err := log.NewHandlerFromStrings(io.MultiWriter(logFile, pub), logCfg.Level, logCfg.Format)
	if err != nil {
		sub.Close()
		pub.Close()
		_ = logFile.Close()

		return nil, nil, err
	}

	stop := func() {
		sub.Close()
		pub.Close()
		<-done
		_ = logFile.Close()
	}

	return handler, stop, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // input path is a CLI argument, read intentionally.
	if err != nil {
		return nil, fmt.Errorf("reading input %s: %w", path, err)
	}

	return data, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		if err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}

		return nil
	}

	err := os.WriteFile(path, data, 0o644) //nolint:gosec // output path is a CLI argument, written intentionally.
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
