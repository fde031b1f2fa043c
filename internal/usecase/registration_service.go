package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ahaliasports/tournament-ops/internal/domain/roster"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

// WizardStep is the registration wizard's position.
type WizardStep int

const (
	StepTeamInfo WizardStep = iota + 1
	StepPlayers
	StepReview
)

func (s WizardStep) String() string {
	switch s {
	case StepTeamInfo:
		return "team_info"
	case StepPlayers:
		return "players"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// MinRosterSize is the committed-roster lower bound enforced at the
// Players->Review gate and again at submit.
const MinRosterSize = 11

// WizardState is a point-in-time snapshot of the draft session.
type WizardState struct {
	Step       WizardStep
	Variant    schema.Variant
	Fields     roster.TeamFields
	Players    []roster.Player
	Staged     roster.PlayerFields
	Submitting bool
}

// RegistrationService is the wizard state machine. It owns the draft team and
// roster exclusively; nothing reaches the committed store before the single
// atomic commit at submit time.
type RegistrationService struct {
	roster      *RosterService
	notifier    Notifier
	logger      *slog.Logger
	submitDelay time.Duration
	sleep       func(time.Duration)

	mu          sync.Mutex
	step        WizardStep
	variant     schema.Variant
	fields      roster.TeamFields
	players     []roster.Player
	staged      roster.PlayerFields
	nextDraftID int
	submitting  bool
}

func NewRegistrationService(rosterService *RosterService, notifier Notifier, logger *slog.Logger, submitDelay time.Duration) *RegistrationService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &RegistrationService{
		roster:      rosterService,
		notifier:    notifier,
		logger:      logger,
		submitDelay: submitDelay,
		sleep:       time.Sleep,
	}
	s.resetLocked(schema.VariantSoccerLeague)

	return s
}

func (s *RegistrationService) State() WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	players := make([]roster.Player, len(s.players))
	for i, p := range s.players {
		players[i] = p.Clone()
	}

	return WizardState{
		Step:       s.step,
		Variant:    s.variant,
		Fields:     s.fields,
		Players:    players,
		Staged:     s.staged,
		Submitting: s.submitting,
	}
}

// SetTeamInfo stores the draft fields as typed. Validation happens at the
// step gate, not per keystroke.
func (s *RegistrationService) SetTeamInfo(fields roster.TeamFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrSubmissionInFlight
	}
	s.fields = fields

	return nil
}

// SelectVariant switches the active tournament. Allowed on the team-info step
// only; the staged position snaps to the new variant's first position and the
// draft roster is cleared so no player can carry a stale schema.
func (s *RegistrationService) SelectVariant(variant schema.Variant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrSubmissionInFlight
	}
	if !variant.Valid() {
		return fmt.Errorf("%w: %q", schema.ErrUnknownVariant, variant)
	}
	if s.step != StepTeamInfo {
		return fmt.Errorf("%w: variant can only change on the team info step", ErrInvalidInput)
	}
	if variant == s.variant {
		return nil
	}

	defaultPosition, err := schema.DefaultPositionFor(variant)
	if err != nil {
		return err
	}

	s.variant = variant
	s.players = nil
	s.nextDraftID = 1
	s.staged = roster.PlayerFields{Position: defaultPosition}

	return nil
}

func (s *RegistrationService) StagePlayer(fields roster.PlayerFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrSubmissionInFlight
	}
	s.staged = fields

	return nil
}

// AddDraftPlayer appends the staged player to the draft roster. An empty name
// is a user-facing warning, not a hard failure of the wizard; there is no
// draft-time upper bound.
func (s *RegistrationService) AddDraftPlayer(ctx context.Context, fields roster.PlayerFields) (roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.AddDraftPlayer")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return roster.Player{}, ErrSubmissionInFlight
	}

	if err := roster.ValidatePlayer(s.variant, fields); err != nil {
		notifyDestructive(ctx, s.notifier, "Missing player name", "Please enter the player's name")
		return roster.Player{}, err
	}

	stats, err := schema.EmptyStats(s.variant)
	if err != nil {
		return roster.Player{}, err
	}

	// Draft ids are monotonic so a remove-then-add can never mint a
	// duplicate of a surviving entry.
	player := roster.Player{
		ID:           s.nextDraftID,
		Name:         fields.Name,
		Position:     fields.Position,
		JerseyNumber: roster.CoerceJersey(fields.JerseyNumber),
		Stats:        stats,
	}
	s.players = append(s.players, player)
	s.nextDraftID++

	defaultPosition, err := schema.DefaultPositionFor(s.variant)
	if err != nil {
		return roster.Player{}, err
	}
	s.staged = roster.PlayerFields{Position: defaultPosition}

	return player.Clone(), nil
}

// RemoveDraftPlayer drops the draft entry by id; absent ids are a no-op.
func (s *RegistrationService) RemoveDraftPlayer(playerID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrSubmissionInFlight
	}

	for idx := range s.players {
		if s.players[idx].ID == playerID {
			s.players = append(s.players[:idx], s.players[idx+1:]...)
			break
		}
	}

	return nil
}

// Next advances one step, enforcing the step-exit gate.
func (s *RegistrationService) Next(ctx context.Context) (WizardStep, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.Next")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return s.step, ErrSubmissionInFlight
	}

	switch s.step {
	case StepTeamInfo:
		if err := s.fields.Validate(); err != nil {
			notifyDestructive(ctx, s.notifier, "Missing information", "Please fill in all required fields")
			return s.step, err
		}
		s.step = StepPlayers
	case StepPlayers:
		if err := s.checkRosterGateLocked(ctx); err != nil {
			return s.step, err
		}
		s.step = StepReview
	case StepReview:
		return s.step, fmt.Errorf("%w: already on the review step, submit instead", ErrInvalidInput)
	default:
		return s.step, fmt.Errorf("%w: unknown wizard step %d", ErrInvalidInput, s.step)
	}

	return s.step, nil
}

// Back moves one step toward team info, unconditionally preserving the draft.
func (s *RegistrationService) Back() (WizardStep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return s.step, ErrSubmissionInFlight
	}
	if s.step == StepTeamInfo {
		return s.step, fmt.Errorf("%w: already on the first step", ErrInvalidInput)
	}
	s.step--

	return s.step, nil
}

// Reset clears every piece of draft state and returns to team info.
func (s *RegistrationService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrSubmissionInFlight
	}
	s.resetLocked(s.variant)

	return nil
}

// Submit re-checks the roster gate, holds the wizard busy for the simulated
// submission window, then commits the draft atomically. Success clears the
// draft back to team info; failure leaves the wizard on review.
func (s *RegistrationService) Submit(ctx context.Context) (roster.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.Submit")
	defer span.End()

	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return roster.Team{}, ErrSubmissionInFlight
	}
	if s.step != StepReview {
		s.mu.Unlock()
		return roster.Team{}, fmt.Errorf("%w: submit is only valid on the review step", ErrInvalidInput)
	}
	if err := s.checkRosterGateLocked(ctx); err != nil {
		s.mu.Unlock()
		return roster.Team{}, err
	}

	s.submitting = true
	variant := s.variant
	fields := s.fields
	players := make([]roster.PlayerFields, 0, len(s.players))
	for _, p := range s.players {
		jersey := ""
		if p.JerseyNumber != nil {
			jersey = fmt.Sprintf("%d", *p.JerseyNumber)
		}
		players = append(players, roster.PlayerFields{
			Name:         p.Name,
			Position:     p.Position,
			JerseyNumber: jersey,
		})
	}
	s.mu.Unlock()

	// The busy window is uninterruptible; there is no abort path.
	s.sleep(s.submitDelay)

	team, err := s.roster.CommitRegistration(ctx, variant, fields, players)

	s.mu.Lock()
	s.submitting = false
	if err == nil {
		s.resetLocked(variant)
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.WarnContext(ctx, "registration commit failed", "variant", string(variant), "error", err)
		notifyDestructive(ctx, s.notifier, "Registration failed", "Please correct the highlighted fields and try again")
		return roster.Team{}, err
	}

	s.logger.InfoContext(ctx, "team registered",
		"variant", string(variant),
		"team_id", team.ID,
		"player_count", len(team.Players),
	)
	notifyInfo(ctx, s.notifier, "Team registered successfully!",
		fmt.Sprintf("Your team has been registered for the %s.", variant.DisplayName()))

	return team, nil
}

func (s *RegistrationService) checkRosterGateLocked(ctx context.Context) error {
	if len(s.players) >= MinRosterSize {
		return nil
	}

	description := fmt.Sprintf(
		"You need at least %d players to register a team for %s, you currently have %d",
		MinRosterSize, s.variant.DisplayName(), len(s.players),
	)
	notifyDestructive(ctx, s.notifier, "Insufficient players", description)

	return fmt.Errorf("%w: %s", ErrInvalidInput, description)
}

func (s *RegistrationService) resetLocked(variant schema.Variant) {
	defaultPosition, err := schema.DefaultPositionFor(variant)
	if err != nil {
		variant = schema.VariantSoccerLeague
		defaultPosition, _ = schema.DefaultPositionFor(variant)
	}

	s.step = StepTeamInfo
	s.variant = variant
	s.fields = roster.TeamFields{}
	s.players = nil
	s.nextDraftID = 1
	s.staged = roster.PlayerFields{Position: defaultPosition}
}
