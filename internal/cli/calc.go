package cli

import (
	"fmt"

	"github.com/l-donovan/parsnip/arith"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expr>...",
		Short: "Evaluate integer expressions",
		Long: `Evaluate each argument as an integer expression and print the result.

Operators, loosest first: + and -, * and /, ^. Every operator groups left
to right, so 2^3^2 is 64. Division truncates toward zero.`,
		Example:       `  parsnip calc "5 + 3*2" "(2)^5"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd.Context())
			logger := GetLogger(cmd.Context())

			for _, expr := range args {
				result, err := arith.Evaluate(expr)
				if err != nil {
					reportParseError(cmd.ErrOrStderr(), cfg, expr, err)
					return fmt.Errorf("evaluate %q: %w", expr, err)
				}

				logger.Debug("evaluated expression", "expr", expr, "result", result)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
			}

			return nil
		},
	}
}
