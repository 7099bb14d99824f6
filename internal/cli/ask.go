package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hupe1980/agentic3d/core"
	"github.com/spf13/cobra"
)

func newAskCmd(opts *rootOptions) *cobra.Command {
	var (
		images  []string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ask <role> <message>",
		Short: "Ask one agent for a single reply",
		Long: `Ask sends one user message (and optional images) to the agent built
for <role> and prints its reply. It reports whether the reply is a
termination message for that agent. No conversation loop is run.

Examples:
  agentic3d ask openscad_generator_agent "A mug with a handle"
  agentic3d ask feedback_agent "Does this match a mug?" --image render.png`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.build()
			if err != nil {
				return err
			}

			role := args[0]
			a, ok := b.Agent(role)
			if !ok {
				return fmt.Errorf("role %q is not configured", role)
			}

			msg, err := userMessage(strings.Join(args[1:], " "), images)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			reply, err := a.GenerateReply(ctx, []core.Message{msg})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "[%s]\n%s\n", reply.Name, reply.Text())
			fmt.Fprintf(out, "terminate: %t\n", a.IsTerminationMsg(reply))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&images, "image", nil, "image file to attach (repeatable)")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "reply timeout")

	return cmd
}

func userMessage(text string, images []string) (core.Message, error) {
	msg := core.NewTextMessage(core.RoleUser, text)
	for _, path := range images {
		data, err := os.ReadFile(path)
		if err != nil {
			return core.Message{}, fmt.Errorf("read image: %w", err)
		}
		msg.Content = append(msg.Content, core.ImagePart{
			Data:     data,
			MimeType: mime.TypeByExtension(filepath.Ext(path)),
		})
	}
	return msg, nil
}
