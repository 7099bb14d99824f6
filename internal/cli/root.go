// Package cli implements the agentic3d command line interface.
package cli

import (
	"github.com/hupe1980/agentic3d"
	"github.com/hupe1980/agentic3d/builder"
	"github.com/hupe1980/agentic3d/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	envFiles   []string
	streaming  bool
}

// NewRootCmd returns the agentic3d root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "agentic3d",
		Short: "Configure the agents that turn descriptions into OpenSCAD models",
		Long: `agentic3d builds the designer, OpenSCAD generator, feedback and
prompt improver agents from a YAML configuration.

Examples:
  agentic3d agents --config agentic3d.yaml
  agentic3d ask feedback_agent "Does the render match?" --image render.png`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "agentic3d.yaml", "configuration file")
	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load (default .env)")
	cmd.PersistentFlags().BoolVar(&opts.streaming, "stream", false, "stream model responses")

	cmd.AddCommand(newAgentsCmd(opts), newAskCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) build() (*builder.Builder, error) {
	cfg, err := config.Load(o.configFile, o.envFiles...)
	if err != nil {
		return nil, err
	}
	return agentic3d.New(cfg, func(opts *agentic3d.Options) {
		opts.EnableStreaming = o.streaming
	})
}
