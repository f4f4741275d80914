package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/l-donovan/parsnip/jsonish/document"
	"github.com/spf13/cobra"
)

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json [file]",
		Short: "Parse a document and print it back out",
		Long: `Parse a relaxed JSON document from a file, or from standard input when no
file is given, and print the converted value.

Trailing commas and empty collections are accepted. Strings are limited to
letters, digits, '-', '@' and '.'.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd.Context())
			logger := GetLogger(cmd.Context())

			source := "stdin"
			var contents []byte
			var err error

			if len(args) == 1 {
				source = args[0]
				contents, err = os.ReadFile(source)
			} else {
				contents, err = io.ReadAll(cmd.InOrStdin())
			}

			if err != nil {
				return fmt.Errorf("read %s: %w", source, err)
			}

			logger.Debug("parsing document", "source", source, "bytes", len(contents))
			start := time.Now()

			doc, err := document.Loads(string(contents))
			if err != nil {
				reportParseError(cmd.ErrOrStderr(), cfg, string(contents), err)
				return fmt.Errorf("parse %s: %w", source, err)
			}

			logger.Debug("parsed document", "source", source, "elapsed", time.Since(start))

			out, err := doc.Serialize(serializerFor(cfg, cmd.OutOrStdout()), 0)
			if err != nil {
				return fmt.Errorf("serialize %s: %w", source, err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
