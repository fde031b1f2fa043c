package roster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

// Status is the admin-managed lifecycle state of a committed team. Teams
// registered through the wizard commit as active.
type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusRejected:
		return true
	default:
		return false
	}
}

// Departments a team may register under.
var Departments = []string{"engineering", "medicine", "science", "arts", "commerce", "pharmacy"}

// Player belongs to exactly one team; its position and stats shape follow the
// owning team's variant at all times.
type Player struct {
	ID           int
	Name         string
	Position     schema.Position
	JerseyNumber *int
	Stats        schema.Stats
}

func (p Player) Clone() Player {
	out := p
	if p.JerseyNumber != nil {
		jersey := *p.JerseyNumber
		out.JerseyNumber = &jersey
	}

	return out
}

// Team is a committed tournament entry owning an ordered player roster.
// NextPlayerID is the monotonic per-team id counter; it never decreases, so
// player ids are not reused after deletion.
type Team struct {
	ID           int
	Variant      schema.Variant
	Name         string
	Department   string
	CaptainName  string
	CaptainEmail string
	CaptainPhone string
	Description  string
	Status       Status
	Players      []Player
	NextPlayerID int
}

func (t Team) Clone() Team {
	out := t
	out.Players = make([]Player, len(t.Players))
	for i, p := range t.Players {
		out.Players[i] = p.Clone()
	}

	return out
}

// FieldError is a single field-level violation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every violated field of an operation, not just the
// first, so callers can display all of them at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}

	return e
}

// TeamFields is the validatable field set shared by team creation, team
// update and the wizard's team-info step.
type TeamFields struct {
	Name         string `validate:"required,min=3"`
	Department   string `validate:"required,oneof=engineering medicine science arts commerce pharmacy"`
	CaptainName  string `validate:"required,min=3"`
	CaptainEmail string `validate:"required,email"`
	CaptainPhone string `validate:"required,min=10"`
	Description  string `validate:"-"`
}

var fieldValidator = validator.New()

// Validate checks every team field rule and returns a ValidationError listing
// each violation.
func (f TeamFields) Validate() error {
	err := fieldValidator.Struct(f)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate team fields: %w", err)
	}

	out := &ValidationError{}
	for _, violation := range violations {
		out.add(teamFieldName(violation.StructField()), teamFieldMessage(violation.StructField()))
	}

	return out.orNil()
}

func teamFieldName(structField string) string {
	switch structField {
	case "Name":
		return "teamName"
	case "Department":
		return "department"
	case "CaptainName":
		return "captainName"
	case "CaptainEmail":
		return "captainEmail"
	case "CaptainPhone":
		return "captainPhone"
	default:
		return structField
	}
}

func teamFieldMessage(structField string) string {
	switch structField {
	case "Name":
		return "Team name must be at least 3 characters"
	case "Department":
		return "Please select a department"
	case "CaptainName":
		return "Captain name is required"
	case "CaptainEmail":
		return "Please enter a valid email address"
	case "CaptainPhone":
		return "Please enter a valid phone number"
	default:
		return "Invalid value"
	}
}

// PlayerFields is raw player input; the jersey number arrives as form text
// and is coerced to an int or omitted.
type PlayerFields struct {
	Name         string
	Position     schema.Position
	JerseyNumber string
}

// ValidatePlayer checks the player rules against the owning team's variant.
func ValidatePlayer(variant schema.Variant, f PlayerFields) error {
	out := &ValidationError{}
	if strings.TrimSpace(f.Name) == "" {
		out.add("name", "Player name is required")
	}
	if !schema.ValidPosition(variant, f.Position) {
		out.add("position", fmt.Sprintf("Position %q is not valid for %s", f.Position, variant.DisplayName()))
	}

	return out.orNil()
}

// CoerceJersey turns raw jersey input into an optional integer; anything
// unparseable means the number was left out.
func CoerceJersey(raw string) *int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}

	return &value
}
