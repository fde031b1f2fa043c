package memory

import (
	"context"
	"sync"

	"github.com/ahaliasports/tournament-ops/internal/domain/gallery"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

// GalleryRepository stores gallery images per variant, insertion-ordered.
type GalleryRepository struct {
	mu              sync.RWMutex
	imagesByVariant map[schema.Variant][]gallery.Image
	nextID          map[schema.Variant]int
}

func NewGalleryRepository(images []gallery.Image) *GalleryRepository {
	imagesByVariant := make(map[schema.Variant][]gallery.Image)
	nextID := make(map[schema.Variant]int)
	for _, item := range images {
		imagesByVariant[item.Variant] = append(imagesByVariant[item.Variant], item)
		if item.ID >= nextID[item.Variant] {
			nextID[item.Variant] = item.ID + 1
		}
	}
	for _, variant := range schema.AllVariants() {
		if nextID[variant] == 0 {
			nextID[variant] = 1
		}
	}

	return &GalleryRepository{imagesByVariant: imagesByVariant, nextID: nextID}
}

func (r *GalleryRepository) ListByVariant(_ context.Context, variant schema.Variant) ([]gallery.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.imagesByVariant[variant]
	out := make([]gallery.Image, len(rows))
	copy(out, rows)

	return out, nil
}

func (r *GalleryRepository) Insert(_ context.Context, image gallery.Image) (gallery.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nextID[image.Variant] == 0 {
		r.nextID[image.Variant] = 1
	}
	image.ID = r.nextID[image.Variant]
	r.nextID[image.Variant]++

	r.imagesByVariant[image.Variant] = append(r.imagesByVariant[image.Variant], image)

	return image, nil
}

func (r *GalleryRepository) Delete(_ context.Context, variant schema.Variant, imageID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.imagesByVariant[variant]
	for idx := range rows {
		if rows[idx].ID == imageID {
			r.imagesByVariant[variant] = append(rows[:idx:idx], rows[idx+1:]...)
			return true, nil
		}
	}

	return false, nil
}
