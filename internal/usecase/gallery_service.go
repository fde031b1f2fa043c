package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ahaliasports/tournament-ops/internal/domain/gallery"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
	"github.com/ahaliasports/tournament-ops/internal/platform/cache"
)

// GalleryService manages the per-variant image collections. Reads go through
// the TTL cache when one is configured; writes invalidate the variant's key.
type GalleryService struct {
	repo     gallery.Repository
	cache    *cache.Store
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewGalleryService(repo gallery.Repository, cacheStore *cache.Store, notifier Notifier, logger *slog.Logger) *GalleryService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GalleryService{
		repo:     repo,
		cache:    cacheStore,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *GalleryService) List(ctx context.Context, variant schema.Variant) ([]gallery.Image, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GalleryService.List")
	defer span.End()

	if !variant.Valid() {
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownVariant, variant)
	}

	if s.cache == nil {
		images, err := s.repo.ListByVariant(ctx, variant)
		if err != nil {
			return nil, fmt.Errorf("list gallery images: %w", err)
		}
		return images, nil
	}

	value, err := s.cache.GetOrLoad(ctx, galleryCacheKey(variant), func(ctx context.Context) (any, error) {
		return s.repo.ListByVariant(ctx, variant)
	})
	if err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}

	images, ok := value.([]gallery.Image)
	if !ok {
		return nil, fmt.Errorf("unexpected gallery cache entry type %T", value)
	}

	// The cached slice is shared across callers; hand out a copy.
	out := make([]gallery.Image, len(images))
	copy(out, images)

	return out, nil
}

// AddImage requires a url and caption; the date defaults to today when left
// empty.
func (s *GalleryService) AddImage(ctx context.Context, variant schema.Variant, url, caption, date string) (gallery.Image, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GalleryService.AddImage")
	defer span.End()

	if !variant.Valid() {
		return gallery.Image{}, fmt.Errorf("%w: %q", schema.ErrUnknownVariant, variant)
	}

	image := gallery.Image{
		Variant: variant,
		URL:     strings.TrimSpace(url),
		Caption: strings.TrimSpace(caption),
		Date:    date,
	}
	if err := image.Validate(); err != nil {
		notifyDestructive(ctx, s.notifier, "Error", "Please provide an image and caption")
		return gallery.Image{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(image.Date) == "" {
		image.Date = s.now().Format("2006-01-02")
	}

	created, err := s.repo.Insert(ctx, image)
	if err != nil {
		return gallery.Image{}, fmt.Errorf("insert gallery image: %w", err)
	}

	s.invalidate(ctx, variant)
	notifyInfo(ctx, s.notifier, "Success", "Image uploaded successfully")

	return created, nil
}

// RemoveImage is idempotent; removing an absent id is a silent no-op.
func (s *GalleryService) RemoveImage(ctx context.Context, variant schema.Variant, imageID int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GalleryService.RemoveImage")
	defer span.End()

	if !variant.Valid() {
		return fmt.Errorf("%w: %q", schema.ErrUnknownVariant, variant)
	}

	deleted, err := s.repo.Delete(ctx, variant, imageID)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	if !deleted {
		return nil
	}

	s.invalidate(ctx, variant)
	notifyInfo(ctx, s.notifier, "Success", "Image deleted successfully")

	return nil
}

func (s *GalleryService) invalidate(ctx context.Context, variant schema.Variant) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, galleryCacheKey(variant))
}

func galleryCacheKey(variant schema.Variant) string {
	return "gallery:" + string(variant)
}
