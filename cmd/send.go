package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	replyview "github.com/kpaz/focus-assistant-cli/internal/adapters/render/reply"
	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

func newSendCmd(app *app) *cobra.Command {
	var (
		profileName string
		asJSON      bool
		plain       bool
		width       int
	)

	cmd := &cobra.Command{
		Use:   "send <message>...",
		Short: "Send a message to the assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			profile, err := app.resolveProfile(ctx, profileName)
			if err != nil {
				return err
			}

			session := app.session(profile)
			defer session.Close()

			text := strings.Join(args, " ")

			reply, err := runWithSpinner(!asJSON, "Thinking...", func() (domain.AssistantReply, error) {
				return session.SendMessage(ctx, text)
			})
			if err != nil {
				return err
			}

			return writeReply(cmd, reply, asJSON, replyview.RenderOptions{Width: width, Markdown: !plain})
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "profile to use")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the reply as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable markdown rendering")
	cmd.Flags().IntVar(&width, "width", 0, "wrap markdown output at this width")

	return cmd
}

func writeReply(cmd *cobra.Command, reply domain.AssistantReply, asJSON bool, opts replyview.RenderOptions) error {
	if asJSON {
		encoded, err := json.MarshalIndent(reply, "", "  ")
		if err != nil {
			return fmt.Errorf("encode reply: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	rendered, err := replyview.Render(reply, opts)
	if err != nil {
		return fmt.Errorf("render reply: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
