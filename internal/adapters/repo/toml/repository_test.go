package toml

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())

	profilesPath := filepath.Join(t.TempDir(), "profiles.toml")
	cfg := viper.New()
	cfg.Set("profiles.path", profilesPath)

	repo, err := NewRepository(cfg)
	require.NoError(t, err)

	return repo, profilesPath
}

func testProfile(name string) domain.Profile {
	return domain.Profile{
		Name:         domain.ProfileName(name),
		BaseURL:      "http://localhost:8000",
		TokenRef:     name,
		HistoryLimit: 10,
		LastUsedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndGetByName(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := t.Context()

	require.NoError(t, repo.Save(ctx, testProfile("work")))

	got, err := repo.GetByName(ctx, "work")
	require.NoError(t, err)

	assert.Equal(t, domain.ProfileName("work"), got.Name)
	assert.Equal(t, "http://localhost:8000", got.BaseURL)
	assert.Equal(t, "work", got.TokenRef)
	assert.Equal(t, 10, got.HistoryLimit)
	assert.True(t, got.LastUsedAt.Equal(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)))
}

func TestFirstSavedProfileBecomesActive(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := t.Context()

	require.NoError(t, repo.Save(ctx, testProfile("work")))
	require.NoError(t, repo.Save(ctx, testProfile("home")))

	active, err := repo.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileName("work"), active)
}

func TestSaveUpsertsExistingProfile(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := t.Context()

	require.NoError(t, repo.Save(ctx, testProfile("work")))

	updated := testProfile("work")
	updated.BaseURL = "https://assistant.example.com"
	require.NoError(t, repo.Save(ctx, updated))

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "https://assistant.example.com", profiles[0].BaseURL)
}

func TestGetMissingProfile(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.GetByName(t.Context(), "nope")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestListWithoutFile(t *testing.T) {
	repo, _ := newTestRepository(t)

	profiles, err := repo.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestDeleteReassignsActive(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := t.Context()

	require.NoError(t, repo.Save(ctx, testProfile("work")))
	require.NoError(t, repo.Save(ctx, testProfile("home")))

	require.NoError(t, repo.Delete(ctx, "work"))

	active, err := repo.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileName("home"), active)

	_, err = repo.GetByName(ctx, "work")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestDeleteMissingProfile(t *testing.T) {
	repo, _ := newTestRepository(t)

	err := repo.Delete(t.Context(), "nope")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestSetActive(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := t.Context()

	require.NoError(t, repo.Save(ctx, testProfile("work")))
	require.NoError(t, repo.Save(ctx, testProfile("home")))

	require.NoError(t, repo.SetActive(ctx, "home"))

	active, err := repo.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileName("home"), active)
}

func TestSetActiveMissingProfile(t *testing.T) {
	repo, _ := newTestRepository(t)

	err := repo.SetActive(t.Context(), "nope")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestActiveWithoutProfiles(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Active(t.Context())
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfilesFileIsOwnerOnly(t *testing.T) {
	repo, profilesPath := newTestRepository(t)

	require.NoError(t, repo.Save(t.Context(), testProfile("work")))

	info, err := os.Stat(profilesPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
