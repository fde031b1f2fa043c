package gallery

import (
	"context"

	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

// Repository describes gallery persistence needs from use cases.
type Repository interface {
	ListByVariant(ctx context.Context, variant schema.Variant) ([]Image, error)
	Insert(ctx context.Context, image Image) (Image, error)
	Delete(ctx context.Context, variant schema.Variant, imageID int) (bool, error)
}
