package roster

import (
	"context"

	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

// Repository describes team persistence needs from use cases. Each variant
// owns an independent team collection; insertion order is preserved.
type Repository interface {
	ListByVariant(ctx context.Context, variant schema.Variant) ([]Team, error)
	GetByID(ctx context.Context, variant schema.Variant, teamID int) (Team, bool, error)
	// Insert stores the team under a fresh id unique within the variant
	// partition and returns the stored copy.
	Insert(ctx context.Context, team Team) (Team, error)
	// Update replaces the stored team in place; the bool reports whether the
	// id existed.
	Update(ctx context.Context, team Team) (Team, bool, error)
	// Delete removes the team and, by ownership, all of its players.
	Delete(ctx context.Context, variant schema.Variant, teamID int) (bool, error)
}
