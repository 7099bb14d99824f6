package cli

import (
	"github.com/spf13/cobra"
)

func newAgentsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "Print the configured agents",
		Long: `Agents builds every configured role and prints the agent names,
one per line, in construction order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := opts.build()
			if err != nil {
				return err
			}
			return b.FprintAgents(cmd.OutOrStdout())
		},
	}
}
