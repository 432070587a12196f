package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terravet/terravet/internal/adapters/outbound/tui"
	"github.com/terravet/terravet/internal/domain/rules"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the registered checks",
		Long:  "Print every registered check in execution order with its description.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := rules.Registry()
			if jsonOutput {
				return renderJSON(cmd, reg)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(reg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the checks as JSON")

	return cmd
}
