package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open an interactive chat with the assistant",
		Long:  "Starts a full-screen chat. Enter sends the current message, Esc cancels a pending request, Ctrl+C quits.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			profile, err := app.resolveProfile(ctx, profileName)
			if err != nil {
				return err
			}

			session := app.session(profile)
			defer session.Close()

			p := tea.NewProgram(
				newChatModel(session, app.historyLimit(profile)),
				tea.WithAltScreen(),
			)

			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "profile to use")

	return cmd
}
