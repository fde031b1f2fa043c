package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ahaliasports/tournament-ops/internal/domain/roster"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

// AdminService is the stateful roster editor over committed teams. It keeps
// the inline-edit shadow copy and the player-dialog position; all writes go
// through the roster service. Switching variant switches which collection is
// shown and never converts a team in place.
type AdminService struct {
	roster *RosterService
	logger *slog.Logger

	mu               sync.Mutex
	variant          schema.Variant
	editing          *roster.Team
	dialogTeamID     int
	selectedPlayerID int
}

func NewAdminService(rosterService *RosterService, logger *slog.Logger) *AdminService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AdminService{
		roster:  rosterService,
		logger:  logger,
		variant: schema.VariantSoccerLeague,
	}
}

func (s *AdminService) Variant() schema.Variant {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.variant
}

// SelectVariant changes the displayed collection. Any edit shadow or open
// dialog belongs to the previous collection and is discarded.
func (s *AdminService) SelectVariant(variant schema.Variant) error {
	if !variant.Valid() {
		return fmt.Errorf("%w: %q", schema.ErrUnknownVariant, variant)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.variant = variant
	s.editing = nil
	s.dialogTeamID = 0
	s.selectedPlayerID = 0

	return nil
}

func (s *AdminService) ListTeams(ctx context.Context) ([]roster.Team, error) {
	return s.roster.ListTeams(ctx, s.Variant())
}

func (s *AdminService) AddTeam(ctx context.Context, fields roster.TeamFields) (roster.Team, error) {
	return s.roster.CreateTeam(ctx, s.Variant(), fields)
}

// DeleteTeam follows the idempotent-delete policy: an already-absent team is
// treated as satisfied.
func (s *AdminService) DeleteTeam(ctx context.Context, teamID int) error {
	err := s.roster.DeleteTeam(ctx, s.Variant(), teamID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	// The team is gone either way; a shadow or dialog pointing at it is stale.
	s.mu.Lock()
	if s.editing != nil && s.editing.ID == teamID {
		s.editing = nil
	}
	if s.dialogTeamID == teamID {
		s.dialogTeamID = 0
		s.selectedPlayerID = 0
	}
	s.mu.Unlock()

	return nil
}

// StartEdit takes a full shadow copy of the team. At most one team is in edit
// mode; switching targets cancels the previous shadow.
func (s *AdminService) StartEdit(ctx context.Context, teamID int) (roster.Team, error) {
	team, err := s.roster.GetTeam(ctx, s.Variant(), teamID)
	if err != nil {
		return roster.Team{}, err
	}

	shadow := team.Clone()
	s.mu.Lock()
	s.editing = &shadow
	s.mu.Unlock()

	return team, nil
}

// UpdateShadow applies typed edits to the shadow only; the store stays
// untouched until SaveEdit.
func (s *AdminService) UpdateShadow(fields roster.TeamFields, status roster.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing == nil {
		return fmt.Errorf("%w: no team is in edit mode", ErrInvalidInput)
	}

	s.editing.Name = fields.Name
	s.editing.Department = fields.Department
	s.editing.CaptainName = fields.CaptainName
	s.editing.CaptainEmail = fields.CaptainEmail
	s.editing.CaptainPhone = fields.CaptainPhone
	s.editing.Description = fields.Description
	s.editing.Status = status

	return nil
}

func (s *AdminService) SaveEdit(ctx context.Context) (roster.Team, error) {
	s.mu.Lock()
	if s.editing == nil {
		s.mu.Unlock()
		return roster.Team{}, fmt.Errorf("%w: no team is in edit mode", ErrInvalidInput)
	}
	shadow := s.editing.Clone()
	s.mu.Unlock()

	updated, err := s.roster.UpdateTeam(ctx, shadow.Variant, shadow.ID, roster.TeamFields{
		Name:         shadow.Name,
		Department:   shadow.Department,
		CaptainName:  shadow.CaptainName,
		CaptainEmail: shadow.CaptainEmail,
		CaptainPhone: shadow.CaptainPhone,
		Description:  shadow.Description,
	}, shadow.Status)
	if err != nil {
		return roster.Team{}, err
	}

	s.mu.Lock()
	s.editing = nil
	s.mu.Unlock()

	return updated, nil
}

func (s *AdminService) CancelEdit() {
	s.mu.Lock()
	s.editing = nil
	s.mu.Unlock()
}

// OpenRoster enters the team's player dialog.
func (s *AdminService) OpenRoster(ctx context.Context, teamID int) (roster.Team, error) {
	team, err := s.roster.GetTeam(ctx, s.Variant(), teamID)
	if err != nil {
		return roster.Team{}, err
	}

	s.mu.Lock()
	s.dialogTeamID = team.ID
	s.selectedPlayerID = 0
	s.mu.Unlock()

	return team, nil
}

func (s *AdminService) CloseRoster() {
	s.mu.Lock()
	s.dialogTeamID = 0
	s.selectedPlayerID = 0
	s.mu.Unlock()
}

// SelectPlayer moves the dialog into the player sub-editor.
func (s *AdminService) SelectPlayer(ctx context.Context, playerID int) (roster.Player, error) {
	teamID, err := s.dialogTeam()
	if err != nil {
		return roster.Player{}, err
	}

	team, err := s.roster.GetTeam(ctx, s.Variant(), teamID)
	if err != nil {
		return roster.Player{}, err
	}

	for _, p := range team.Players {
		if p.ID == playerID {
			s.mu.Lock()
			s.selectedPlayerID = playerID
			s.mu.Unlock()
			return p.Clone(), nil
		}
	}

	return roster.Player{}, fmt.Errorf("%w: player=%d team=%d", ErrNotFound, playerID, teamID)
}

// Back returns from the player sub-editor to the player list without saving.
func (s *AdminService) Back() {
	s.mu.Lock()
	s.selectedPlayerID = 0
	s.mu.Unlock()
}

// SavePlayer persists the sub-editor and returns to the player list.
func (s *AdminService) SavePlayer(ctx context.Context, fields roster.PlayerFields, patch schema.StatsPatch) (roster.Player, error) {
	s.mu.Lock()
	teamID := s.dialogTeamID
	playerID := s.selectedPlayerID
	s.mu.Unlock()

	if teamID == 0 {
		return roster.Player{}, fmt.Errorf("%w: no roster dialog is open", ErrInvalidInput)
	}
	if playerID == 0 {
		return roster.Player{}, fmt.Errorf("%w: no player is selected", ErrInvalidInput)
	}

	updated, err := s.roster.UpdatePlayer(ctx, s.Variant(), teamID, playerID, fields, patch)
	if err != nil {
		return roster.Player{}, err
	}

	s.mu.Lock()
	s.selectedPlayerID = 0
	s.mu.Unlock()

	return updated, nil
}

func (s *AdminService) AddPlayer(ctx context.Context, fields roster.PlayerFields) (roster.Player, error) {
	teamID, err := s.dialogTeam()
	if err != nil {
		return roster.Player{}, err
	}

	return s.roster.AddPlayer(ctx, s.Variant(), teamID, fields)
}

func (s *AdminService) RemovePlayer(ctx context.Context, playerID int) error {
	teamID, err := s.dialogTeam()
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.selectedPlayerID == playerID {
		s.selectedPlayerID = 0
	}
	s.mu.Unlock()

	return s.roster.RemovePlayer(ctx, s.Variant(), teamID, playerID)
}

// StatFields lists the stat column names shown for the active collection.
func (s *AdminService) StatFields() ([]string, error) {
	return schema.StatFieldsFor(s.Variant())
}

func (s *AdminService) dialogTeam() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dialogTeamID == 0 {
		return 0, fmt.Errorf("%w: no roster dialog is open", ErrInvalidInput)
	}

	return s.dialogTeamID, nil
}
