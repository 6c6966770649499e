package cmd

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	replyview "github.com/kpaz/focus-assistant-cli/internal/adapters/render/reply"
	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

func newVoiceCmd(app *app) *cobra.Command {
	var (
		profileName string
		asJSON      bool
		plain       bool
		width       int
	)

	cmd := &cobra.Command{
		Use:   "voice <audio-file>",
		Short: "Send a voice note to the assistant",
		Long:  "Reads a recorded audio file, sends it for server-side transcription, and prints the assistant's reply.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			profile, err := app.resolveProfile(ctx, profileName)
			if err != nil {
				return err
			}

			audioData, err := readAudioFile(args[0])
			if err != nil {
				return err
			}

			session := app.session(profile)
			defer session.Close()

			reply, err := runWithSpinner(!asJSON, "Transcribing...", func() (domain.AssistantReply, error) {
				return session.SendVoiceMessage(ctx, audioData)
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

func readAudioFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("audio file %q is empty", path)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}
