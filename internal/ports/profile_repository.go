package ports

import (
	"context"

	"github.com/kpaz/focus-assistant-cli/internal/domain"
)

type ProfileRepository interface {
	GetByName(ctx context.Context, name domain.ProfileName) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
	Delete(ctx context.Context, name domain.ProfileName) error
	Active(ctx context.Context) (domain.ProfileName, error)
	SetActive(ctx context.Context, name domain.ProfileName) error
}
