package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd(app *app) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			profile, err := app.resolveProfile(ctx, profileName)
			if err != nil {
				return err
			}

			if err := app.secrets.Delete(ctx, tokenRef(profile)); err != nil {
				return fmt.Errorf("delete session token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged out of %q.\n", profile.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "", "profile name")

	return cmd
}
