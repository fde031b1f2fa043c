package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahaliasports/tournament-ops/internal/domain/roster"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

// RosterService owns every mutation of the committed team set. Each operation
// validates before writing and emits one notification on the outcome.
type RosterService struct {
	repo     roster.Repository
	notifier Notifier
	logger   *slog.Logger
}

func NewRosterService(repo roster.Repository, notifier Notifier, logger *slog.Logger) *RosterService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RosterService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *RosterService) ListTeams(ctx context.Context, variant schema.Variant) ([]roster.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListTeams")
	defer span.End()

	if !variant.Valid() {
		return nil, fmt.Errorf("%w: %q", schema.ErrUnknownVariant, variant)
	}

	teams, err := s.repo.ListByVariant(ctx, variant)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *RosterService) GetTeam(ctx context.Context, variant schema.Variant, teamID int) (roster.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetTeam")
	defer span.End()

	if !variant.Valid() {
		return roster.Team{}, fmt.Errorf("%w: %q", schema.ErrUnknownVariant, variant)
	}

	item, exists, err := s.repo.GetByID(ctx, variant, teamID)
	if err != nil {
		return roster.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return roster.Team{}, fmt.Errorf("%w: team=%d variant=%s", ErrNotFound, teamID, variant)
	}

	return item, nil
}

func (s *RosterService) CreateTeam(ctx context.Context, variant schema.Variant, fields roster.TeamFields) (roster.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.CreateTeam")
	defer span.End()

	if !variant.Valid() {
		return roster.Team{}, fmt.Errorf("%w: %q", schema.ErrUnknownVariant, variant)
	}

	if err := fields.Validate(); err != nil {
		notifyDestructive(ctx, s.notifier, "Missing information", "Please fill in all required fields")
		return roster.Team{}, err
	}

	created, err := s.repo.Insert(ctx, roster.Team{
		Variant:      variant,
		Name:         strings.TrimSpace(fields.Name),
		Department:   strings.TrimSpace(fields.Department),
		CaptainName:  strings.TrimSpace(fields.CaptainName),
		CaptainEmail: strings.TrimSpace(fields.CaptainEmail),
		CaptainPhone: strings.TrimSpace(fields.CaptainPhone),
		Description:  strings.TrimSpace(fields.Description),
		Status:       roster.StatusActive,
		NextPlayerID: 1,
	})
	if err != nil {
		return roster.Team{}, fmt.Errorf("insert team: %w", err)
	}

	notifyInfo(ctx, s.notifier, "Team added",
		fmt.Sprintf("%s has been added to the %s tournament.", created.Name, strings.ToUpper(string(variant))))

	return created, nil
}

// UpdateTeam re-validates the merged result with the create rules; the stored
// entity is untouched on failure.
func (s *RosterService) UpdateTeam(ctx context.Context, variant schema.Variant, teamID int, fields roster.TeamFields, status roster.Status) (roster.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.UpdateTeam")
	defer span.End()

	existing, err := s.GetTeam(ctx, variant, teamID)
	if err != nil {
		return roster.Team{}, err
	}

	if err := fields.Validate(); err != nil {
		notifyDestructive(ctx, s.notifier, "Missing information", "Please fill in all required fields")
		return roster.Team{}, err
	}
	if !status.Valid() {
		return roster.Team{}, fmt.Errorf("%w: unknown team status %q", ErrInvalidInput, status)
	}

	existing.Name = strings.TrimSpace(fields.Name)
	existing.Department = strings.TrimSpace(fields.Department)
	existing.CaptainName = strings.TrimSpace(fields.CaptainName)
	existing.CaptainEmail = strings.TrimSpace(fields.CaptainEmail)
	existing.CaptainPhone = strings.TrimSpace(fields.CaptainPhone)
	existing.Description = strings.TrimSpace(fields.Description)
	existing.Status = status

	updated, exists, err := s.repo.Update(ctx, existing)
	if err != nil {
		return roster.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !exists {
		return roster.Team{}, fmt.Errorf("%w: team=%d variant=%s", ErrNotFound, teamID, variant)
	}

	notifyInfo(ctx, s.notifier, "Team updated",
		fmt.Sprintf("%s has been updated successfully.", updated.Name))

	return updated, nil
}

// DeleteTeam cascades to the team's players by ownership. An absent id is a
// NotFound the caller may treat as already satisfied.
func (s *RosterService) DeleteTeam(ctx context.Context, variant schema.Variant, teamID int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.DeleteTeam")
	defer span.End()

	existing, err := s.GetTeam(ctx, variant, teamID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, variant, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: team=%d variant=%s", ErrNotFound, teamID, variant)
	}

	notifyInfo(ctx, s.notifier, "Team removed",
		fmt.Sprintf("%s has been removed from the tournament.", existing.Name))

	return nil
}

func (s *RosterService) AddPlayer(ctx context.Context, variant schema.Variant, teamID int, fields roster.PlayerFields) (roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.AddPlayer")
	defer span.End()

	team, err := s.GetTeam(ctx, variant, teamID)
	if err != nil {
		return roster.Player{}, err
	}

	if err := roster.ValidatePlayer(team.Variant, fields); err != nil {
		notifyDestructive(ctx, s.notifier, "Missing information", firstViolation(err))
		return roster.Player{}, err
	}

	stats, err := schema.EmptyStats(team.Variant)
	if err != nil {
		return roster.Player{}, err
	}

	player := roster.Player{
		ID:           team.NextPlayerID,
		Name:         strings.TrimSpace(fields.Name),
		Position:     fields.Position,
		JerseyNumber: roster.CoerceJersey(fields.JerseyNumber),
		Stats:        stats,
	}
	team.Players = append(team.Players, player)
	team.NextPlayerID++

	if _, _, err := s.repo.Update(ctx, team); err != nil {
		return roster.Player{}, fmt.Errorf("update team roster: %w", err)
	}

	notifyInfo(ctx, s.notifier, "Player added",
		fmt.Sprintf("%s has been added to %s.", player.Name, team.Name))

	return player, nil
}

// UpdatePlayer applies the field patch and merges stats per-field under the
// lenient-numeric policy.
func (s *RosterService) UpdatePlayer(ctx context.Context, variant schema.Variant, teamID, playerID int, fields roster.PlayerFields, patch schema.StatsPatch) (roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.UpdatePlayer")
	defer span.End()

	team, err := s.GetTeam(ctx, variant, teamID)
	if err != nil {
		return roster.Player{}, err
	}

	idx := -1
	for i := range team.Players {
		if team.Players[i].ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return roster.Player{}, fmt.Errorf("%w: player=%d team=%d", ErrNotFound, playerID, teamID)
	}

	if err := roster.ValidatePlayer(team.Variant, fields); err != nil {
		notifyDestructive(ctx, s.notifier, "Missing information", firstViolation(err))
		return roster.Player{}, err
	}

	player := &team.Players[idx]
	player.Name = strings.TrimSpace(fields.Name)
	player.Position = fields.Position
	player.JerseyNumber = roster.CoerceJersey(fields.JerseyNumber)
	player.Stats = player.Stats.Merge(patch)

	updated := *player
	if _, _, err := s.repo.Update(ctx, team); err != nil {
		return roster.Player{}, fmt.Errorf("update team roster: %w", err)
	}

	notifyInfo(ctx, s.notifier, "Player updated",
		fmt.Sprintf("%s's statistics have been updated.", updated.Name))

	return updated, nil
}

// RemovePlayer is idempotent: removing an absent id is a silent no-op.
func (s *RosterService) RemovePlayer(ctx context.Context, variant schema.Variant, teamID, playerID int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.RemovePlayer")
	defer span.End()

	team, err := s.GetTeam(ctx, variant, teamID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range team.Players {
		if team.Players[i].ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	removed := team.Players[idx]
	team.Players = append(team.Players[:idx], team.Players[idx+1:]...)

	if _, _, err := s.repo.Update(ctx, team); err != nil {
		return fmt.Errorf("update team roster: %w", err)
	}

	notifyInfo(ctx, s.notifier, "Player removed",
		fmt.Sprintf("%s has been removed from %s.", removed.Name, team.Name))

	return nil
}

// CommitRegistration is the wizard's atomic draft-to-committed transition:
// one insert carrying the full roster, no intermediate states visible to
// readers. It emits no notification; the wizard owns the submission outcome.
func (s *RosterService) CommitRegistration(ctx context.Context, variant schema.Variant, fields roster.TeamFields, players []roster.PlayerFields) (roster.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.CommitRegistration")
	defer span.End()

	if !variant.Valid() {
		return roster.Team{}, fmt.Errorf("%w: %q", schema.ErrUnknownVariant, variant)
	}
	if err := fields.Validate(); err != nil {
		return roster.Team{}, err
	}

	roll := make([]roster.Player, 0, len(players))
	for i, item := range players {
		if err := roster.ValidatePlayer(variant, item); err != nil {
			return roster.Team{}, err
		}
		stats, err := schema.EmptyStats(variant)
		if err != nil {
			return roster.Team{}, err
		}
		roll = append(roll, roster.Player{
			ID:           i + 1,
			Name:         strings.TrimSpace(item.Name),
			Position:     item.Position,
			JerseyNumber: roster.CoerceJersey(item.JerseyNumber),
			Stats:        stats,
		})
	}

	created, err := s.repo.Insert(ctx, roster.Team{
		Variant:      variant,
		Name:         strings.TrimSpace(fields.Name),
		Department:   strings.TrimSpace(fields.Department),
		CaptainName:  strings.TrimSpace(fields.CaptainName),
		CaptainEmail: strings.TrimSpace(fields.CaptainEmail),
		CaptainPhone: strings.TrimSpace(fields.CaptainPhone),
		Description:  strings.TrimSpace(fields.Description),
		Status:       roster.StatusActive,
		Players:      roll,
		NextPlayerID: len(roll) + 1,
	})
	if err != nil {
		return roster.Team{}, fmt.Errorf("insert team: %w", err)
	}

	return created, nil
}

func firstViolation(err error) string {
	var verr *roster.ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		return verr.Fields[0].Message
	}

	return "Please fill in all required fields"
}
