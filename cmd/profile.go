package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage assistant profiles",
	}

	cmd.AddCommand(
		newProfileListCmd(app),
		newProfileUseCmd(app),
		newProfileRemoveCmd(app),
	)

	return cmd
}

func newProfileListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			profiles, err := app.profiles.List(ctx)
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles registered. Run `fa login` first.")
				return nil
			}

			active, err := app.profiles.Active(ctx)
			if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
				return err
			}

			for _, profile := range profiles {
				marker := " "
				if profile.Name == active {
					marker = "*"
				}

				line := fmt.Sprintf("%s %s", marker, profile.Name)
				if url := app.baseURL(profile); url != "" {
					line += "  " + url
				}
				if !profile.LastUsedAt.IsZero() {
					line += "  (last used " + profile.LastUsedAt.Local().Format("2006-01-02") + ")"
				}

				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}
}

func newProfileUseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Switch the active profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := domain.ProfileName(args[0])

			if err := app.profiles.SetActive(ctx, name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Now using profile %q.\n", name)
			return nil
		},
	}
}

func newProfileRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a profile and its stored token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := domain.ProfileName(args[0])

			profile, err := app.profiles.GetByName(ctx, name)
			if err != nil {
				return err
			}

			if err := app.profiles.Delete(ctx, name); err != nil {
				return err
			}
			if err := app.secrets.Delete(ctx, tokenRef(profile)); err != nil {
				return fmt.Errorf("delete session token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed profile %q.\n", name)
			return nil
		},
	}
}
