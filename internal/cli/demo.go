package cli

import (
	"fmt"

	"github.com/l-donovan/parsnip/internal/demo"
	"github.com/l-donovan/parsnip/jsonish"
	"github.com/l-donovan/parsnip/jsonish/document"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "demo",
		Short:         "Parse a built-in sample document",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())

			tree, err := jsonish.Parse(demo.Document)
			if err != nil {
				reportParseError(cmd.ErrOrStderr(), cfg, demo.Document, err)
				return err
			}

			doc, err := document.Convert(tree)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			out, err := doc.Serialize(serializerFor(cfg, w), 0)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(w, "Tree: %s\n", tree)
			_, _ = fmt.Fprintf(w, "Value: %s\n", out)
			return nil
		},
	}
}
