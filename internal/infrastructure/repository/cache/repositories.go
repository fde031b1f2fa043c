package cache

import (
	"context"
	"strconv"

	"github.com/ahaliasports/tournament-ops/internal/domain/roster"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
	basecache "github.com/ahaliasports/tournament-ops/internal/platform/cache"
)

// TeamRepository decorates a roster repository with a read-through TTL
// cache. Every write invalidates the variant's key prefix, so readers never
// see a roster older than the TTL after a mutation.
type TeamRepository struct {
	next  roster.Repository
	cache *basecache.Store
}

func NewTeamRepository(next roster.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByVariant(ctx context.Context, variant schema.Variant) ([]roster.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListKey(variant), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByVariant(ctx, variant)
		if err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]roster.Team)
	out := make([]roster.Team, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, variant schema.Variant, teamID int) (roster.Team, bool, error) {
	type lookup struct {
		team   roster.Team
		exists bool
	}

	v, err := r.cache.GetOrLoad(ctx, teamKey(variant, teamID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, variant, teamID)
		if err != nil {
			return nil, err
		}
		return lookup{team: item, exists: exists}, nil
	})
	if err != nil {
		return roster.Team{}, false, err
	}

	found, _ := v.(lookup)

	return found.team.Clone(), found.exists, nil
}

func (r *TeamRepository) Insert(ctx context.Context, team roster.Team) (roster.Team, error) {
	created, err := r.next.Insert(ctx, team)
	if err != nil {
		return roster.Team{}, err
	}
	r.invalidate(ctx, created.Variant)

	return created, nil
}

func (r *TeamRepository) Update(ctx context.Context, team roster.Team) (roster.Team, bool, error) {
	updated, exists, err := r.next.Update(ctx, team)
	if err != nil {
		return roster.Team{}, false, err
	}
	r.invalidate(ctx, team.Variant)

	return updated, exists, nil
}

func (r *TeamRepository) Delete(ctx context.Context, variant schema.Variant, teamID int) (bool, error) {
	deleted, err := r.next.Delete(ctx, variant, teamID)
	if err != nil {
		return false, err
	}
	r.invalidate(ctx, variant)

	return deleted, nil
}

func (r *TeamRepository) invalidate(ctx context.Context, variant schema.Variant) {
	r.cache.DeletePrefix(ctx, "teams:"+string(variant))
}

func teamListKey(variant schema.Variant) string {
	return "teams:" + string(variant) + ":list"
}

func teamKey(variant schema.Variant, teamID int) string {
	return "teams:" + string(variant) + ":id:" + strconv.Itoa(teamID)
}
