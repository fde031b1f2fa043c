package memory

import (
	"context"
	"sync"

	"github.com/ahaliasports/tournament-ops/internal/domain/roster"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

// TeamRepository holds the committed team set, partitioned by tournament
// variant. Everything crossing the boundary is deep-copied so callers never
// alias stored state.
type TeamRepository struct {
	mu             sync.RWMutex
	teamsByVariant map[schema.Variant][]roster.Team
	nextID         map[schema.Variant]int
}

func NewTeamRepository(teams []roster.Team) *TeamRepository {
	teamsByVariant := make(map[schema.Variant][]roster.Team)
	nextID := make(map[schema.Variant]int)
	for _, item := range teams {
		teamsByVariant[item.Variant] = append(teamsByVariant[item.Variant], item.Clone())
		if item.ID >= nextID[item.Variant] {
			nextID[item.Variant] = item.ID + 1
		}
	}
	for _, variant := range schema.AllVariants() {
		if nextID[variant] == 0 {
			nextID[variant] = 1
		}
	}

	return &TeamRepository{teamsByVariant: teamsByVariant, nextID: nextID}
}

func (r *TeamRepository) ListByVariant(_ context.Context, variant schema.Variant) ([]roster.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.teamsByVariant[variant]
	out := make([]roster.Team, 0, len(rows))
	for _, item := range rows {
		out = append(out, item.Clone())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, variant schema.Variant, teamID int) (roster.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teamsByVariant[variant] {
		if item.ID == teamID {
			return item.Clone(), true, nil
		}
	}

	return roster.Team{}, false, nil
}

func (r *TeamRepository) Insert(_ context.Context, team roster.Team) (roster.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nextID[team.Variant] == 0 {
		r.nextID[team.Variant] = 1
	}
	team.ID = r.nextID[team.Variant]
	r.nextID[team.Variant]++

	if team.NextPlayerID <= len(team.Players) {
		team.NextPlayerID = len(team.Players) + 1
	}

	stored := team.Clone()
	r.teamsByVariant[team.Variant] = append(r.teamsByVariant[team.Variant], stored)

	return stored.Clone(), nil
}

func (r *TeamRepository) Update(_ context.Context, team roster.Team) (roster.Team, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.teamsByVariant[team.Variant]
	for idx := range rows {
		if rows[idx].ID == team.ID {
			rows[idx] = team.Clone()
			return rows[idx].Clone(), true, nil
		}
	}

	return roster.Team{}, false, nil
}

func (r *TeamRepository) Delete(_ context.Context, variant schema.Variant, teamID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.teamsByVariant[variant]
	for idx := range rows {
		if rows[idx].ID == teamID {
			r.teamsByVariant[variant] = append(rows[:idx:idx], rows[idx+1:]...)
			return true, nil
		}
	}

	return false, nil
}
