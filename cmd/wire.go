package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kpaz/focus-assistant-cli/internal/adapters/api"
	tomlrepo "github.com/kpaz/focus-assistant-cli/internal/adapters/repo/toml"
	filesecrets "github.com/kpaz/focus-assistant-cli/internal/adapters/secrets/file"
	"github.com/kpaz/focus-assistant-cli/internal/application"
	"github.com/kpaz/focus-assistant-cli/internal/domain"
	"github.com/kpaz/focus-assistant-cli/internal/ports"
)

const defaultProfileName = domain.ProfileName("default")

type app struct {
	cfg      *viper.Viper
	profiles ports.ProfileRepository
	secrets  *filesecrets.Store
}

func wireApp() (*app, error) {
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetEnvPrefix("FA")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetDefault("api.base_url", "http://localhost:8000")
	cfg.SetDefault("api.timeout", api.DefaultRequestTimeout)
	cfg.SetDefault("assistant.debounce", application.DefaultDebounce)
	cfg.SetDefault("history.limit", application.DefaultHistoryLimit)
	cfg.SetDefault("tokens.path", filepath.Join(homeDir, ".fa", "tokens"))

	profiles, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("open profile registry: %w", err)
	}

	secrets := filesecrets.NewStore(cfg.GetString("tokens.path"))

	return &app{cfg: cfg, profiles: profiles, secrets: secrets}, nil
}

// resolveProfile picks the profile commands act on: the named one if given,
// otherwise the active one, otherwise an implicit default built from config.
func (a *app) resolveProfile(ctx context.Context, name string) (domain.Profile, error) {
	if name != "" {
		return a.profiles.GetByName(ctx, domain.ProfileName(name))
	}

	active, err := a.profiles.Active(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return a.implicitProfile(), nil
		}
		return domain.Profile{}, err
	}

	profile, err := a.profiles.GetByName(ctx, active)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return a.implicitProfile(), nil
	}

	return profile, err
}

// implicitProfile lets the CLI work before any profile is registered, as
// long as the environment provides a base URL and a token was stored.
func (a *app) implicitProfile() domain.Profile {
	return domain.Profile{
		Name:         defaultProfileName,
		BaseURL:      a.cfg.GetString("api.base_url"),
		TokenRef:     string(defaultProfileName),
		HistoryLimit: a.cfg.GetInt("history.limit"),
	}
}

func (a *app) session(profile domain.Profile) *application.Session {
	tokens := a.secrets.Source(tokenRef(profile))

	gateway := &api.Client{
		BaseURL:        a.baseURL(profile),
		Tokens:         tokens,
		RequestTimeout: a.cfg.GetDuration("api.timeout"),
	}

	return application.NewSession(gateway, tokens, nil, a.cfg.GetDuration("assistant.debounce"))
}

func (a *app) baseURL(profile domain.Profile) string {
	if profile.BaseURL != "" {
		return profile.BaseURL
	}
	return a.cfg.GetString("api.base_url")
}

func (a *app) historyLimit(profile domain.Profile) int {
	if profile.HistoryLimit > 0 {
		return profile.HistoryLimit
	}
	return a.cfg.GetInt("history.limit")
}

func tokenRef(profile domain.Profile) string {
	if profile.TokenRef != "" {
		return profile.TokenRef
	}
	return string(profile.Name)
}
