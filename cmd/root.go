package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fa",
		Short:         "Focus Assistant CLI (fa): chat with your ADHD focus assistant",
		Long:          "fa (Focus Assistant CLI) sends messages and voice notes to a focus assistant service, keeps the conversation history at hand, and renders task breakdowns and focus tips in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newProfileCmd(app),
		newSendCmd(app),
		newVoiceCmd(app),
		newHistoryCmd(app),
		newChatCmd(app),
	)

	return rootCmd
}
