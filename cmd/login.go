package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var (
		token       string
		profileName string
		baseURL     string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a session token and register the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			value := strings.TrimSpace(token)
			if value == "" {
				return errors.New("--token is required")
			}

			name := profileName
			if name == "" {
				name = string(defaultProfileName)
			}

			profile, err := app.profiles.GetByName(ctx, domain.ProfileName(name))
			if err != nil {
				if !errors.Is(err, domain.ErrProfileNotFound) {
					return err
				}
				profile = domain.Profile{
					Name:         domain.ProfileName(name),
					TokenRef:     name,
					HistoryLimit: app.cfg.GetInt("history.limit"),
				}
			}
			if baseURL != "" {
				profile.BaseURL = baseURL
			}
			profile.LastUsedAt = time.Now()

			ref := tokenRef(profile)
			if err := app.secrets.Put(ctx, ref, value); err != nil {
				return fmt.Errorf("store session token: %w", err)
			}

			if err := app.profiles.Save(ctx, profile); err != nil {
				// Roll the token back so a half-registered login does not
				// leave credentials behind.
				_ = app.secrets.Delete(ctx, ref)
				return fmt.Errorf("save profile: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %q.\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "session bearer token")
	cmd.Flags().StringVar(&profileName, "profile", "", `profile name (default "default")`)
	cmd.Flags().StringVar(&baseURL, "base-url", "", "assistant API base URL for this profile")

	return cmd
}
