package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	replyview "github.com/kpaz/focus-assistant-cli/internal/adapters/render/reply"
)

func newHistoryCmd(app *app) *cobra.Command {
	var (
		profileName string
		limit       int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversation history, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			profile, err := app.resolveProfile(ctx, profileName)
			if err != nil {
				return err
			}

			session := app.session(profile)
			defer session.Close()

			effectiveLimit := limit
			if effectiveLimit <= 0 {
				effectiveLimit = app.historyLimit(profile)
			}

			if err := session.LoadHistory(ctx, effectiveLimit); err != nil {
				return err
			}

			messages := session.Messages()

			if asJSON {
				encoded, err := json.MarshalIndent(messages, "", "  ")
				if err != nil {
					return fmt.Errorf("encode history: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}

			rendered, err := replyview.RenderTranscript(messages)
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "profile to use")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of messages to fetch")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print history as JSON")

	return cmd
}
