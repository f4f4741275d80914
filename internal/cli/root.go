// Package cli provides the command-line interface for parsnip.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/l-donovan/parsnip"
	"github.com/l-donovan/parsnip/common"
	"github.com/l-donovan/parsnip/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

type configKey struct{}

type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:     "parsnip",
		Short:   "Parse relaxed JSON documents and evaluate integer arithmetic",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			}

			if cfg.FileUsed != "" {
				logger.Debug("loaded config file", "path", cfg.FileUsed)
			}

			// Diagnostics go to stderr; document colors are attached per
			// writer by serializerFor.
			color.NoColor = !cfg.UseColor(cmd.ErrOrStderr())

			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./parsnip.yaml)")
	flags.Int("indent", config.DefaultIndent, "Spaces (or tabs) per indentation level")
	flags.Bool("tabs", false, "Indent with tabs")
	flags.Bool("minify", false, "Print documents on a single line")
	flags.String("color", config.DefaultColor, "Color output (auto|always|never)")
	flags.Int("context-lines", config.DefaultContextLines, "Lines of input shown around a parse error")
	flags.BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ColorAuto, config.ColorAlways, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newJSONCmd())
	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newDemoCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithLogger returns a context carrying logger. A logger already in the
// context when the command runs is used instead of building one.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return config.Default()
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

func serializerFor(cfg *config.Config, w io.Writer) *common.SerializerConfig {
	serializer := common.NewSerializerConfig(cfg.Tabs, cfg.Indent, cfg.Minify)

	if cfg.UseColor(w) {
		serializer = serializer.WithColors(common.NewColors())
	}

	return serializer
}

// reportParseError writes the input surrounding a parse error to w.
// Other errors are left for the caller to report.
func reportParseError(w io.Writer, cfg *config.Config, contents string, err error) {
	var parseErr *common.ParseError

	if !errors.As(err, &parseErr) {
		return
	}

	parsnip.PrintContext(w, contents, err, cfg.ContextLines)
}
