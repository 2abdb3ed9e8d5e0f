// Package seeder fills the reference tables every installation needs:
// timezones and the global interaction types.
package seeder

import (
	"context"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// TimezoneRepo is implemented by user.Repo.
type TimezoneRepo interface {
	UpsertTimezones(ctx context.Context, zones []domain.Timezone) (int, error)
}

// InteractionTypeRepo is implemented by interactiontype.Repo.
type InteractionTypeRepo interface {
	EnsureGlobal(ctx context.Context, names []string) (int, error)
}
