package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Variant selects which tournament rule-set governs a team's player schema.
type Variant string

const (
	// VariantSoccerLeague is the Ahalia Soccer League (football rules).
	VariantSoccerLeague Variant = "asl"
	// VariantPremierLeague is the Ahalia Premier League (cricket rules).
	VariantPremierLeague Variant = "apl"
)

// ErrUnknownVariant reports a variant value outside the registry. It should
// not occur for UI-driven input and is fatal to the operation that hit it.
var ErrUnknownVariant = fmt.Errorf("unknown tournament variant")

func AllVariants() []Variant {
	return []Variant{VariantSoccerLeague, VariantPremierLeague}
}

func (v Variant) Valid() bool {
	switch v {
	case VariantSoccerLeague, VariantPremierLeague:
		return true
	default:
		return false
	}
}

func (v Variant) DisplayName() string {
	switch v {
	case VariantSoccerLeague:
		return "Ahalia Soccer League"
	case VariantPremierLeague:
		return "Ahalia Premier League"
	default:
		return string(v)
	}
}

// Position is a player role label within a tournament variant.
type Position string

const (
	PositionForward    Position = "Forward"
	PositionMidfielder Position = "Midfielder"
	PositionDefender   Position = "Defender"
	PositionGoalkeeper Position = "Goalkeeper"

	PositionBatter     Position = "Batter"
	PositionBowler     Position = "Bowler"
	PositionAllRounder Position = "All Rounder"
)

var positionsByVariant = map[Variant][]Position{
	VariantSoccerLeague:  {PositionForward, PositionMidfielder, PositionDefender, PositionGoalkeeper},
	VariantPremierLeague: {PositionBatter, PositionBowler, PositionAllRounder},
}

// PositionsFor returns the fixed ordered position set for the variant.
func PositionsFor(v Variant) ([]Position, error) {
	positions, ok := positionsByVariant[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}

	out := make([]Position, len(positions))
	copy(out, positions)

	return out, nil
}

// DefaultPositionFor returns the first position of the variant's set. The
// registration form stages new players with it preselected.
func DefaultPositionFor(v Variant) (Position, error) {
	positions, err := PositionsFor(v)
	if err != nil {
		return "", err
	}

	return positions[0], nil
}

func ValidPosition(v Variant, p Position) bool {
	positions, ok := positionsByVariant[v]
	if !ok {
		return false
	}
	for _, candidate := range positions {
		if candidate == p {
			return true
		}
	}

	return false
}

// SoccerStats tracks per-player numbers for the soccer league.
type SoccerStats struct {
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
}

// CricketStats tracks per-player numbers for the cricket league.
type CricketStats struct {
	Runs    int
	Wickets int
	Matches int
	Average float64
}

// Stats is a tagged union keyed by Variant: exactly one branch is active,
// resolved once per team and propagated to every player operation.
type Stats struct {
	Variant Variant
	Soccer  SoccerStats
	Cricket CricketStats
}

// EmptyStats returns the variant's stats record with every field zeroed,
// the state every player starts in.
func EmptyStats(v Variant) (Stats, error) {
	if !v.Valid() {
		return Stats{}, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}

	return Stats{Variant: v}, nil
}

// StatFieldsFor lists the variant's stat field names in display order.
func StatFieldsFor(v Variant) ([]string, error) {
	switch v {
	case VariantSoccerLeague:
		return []string{"goals", "assists", "yellowCards", "redCards"}, nil
	case VariantPremierLeague:
		return []string{"runs", "wickets", "matches", "average"}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
}

// StatsPatch carries raw stat edits keyed by field name. Values arrive as
// form input, so they are strings and are coerced leniently on merge.
type StatsPatch map[string]string

// Merge applies the patch per-field under the lenient-numeric policy:
// unparseable input becomes 0, never an error. Fields that do not belong to
// the active variant are ignored.
func (s Stats) Merge(patch StatsPatch) Stats {
	for field, raw := range patch {
		switch s.Variant {
		case VariantSoccerLeague:
			switch field {
			case "goals":
				s.Soccer.Goals = lenientInt(raw)
			case "assists":
				s.Soccer.Assists = lenientInt(raw)
			case "yellowCards":
				s.Soccer.YellowCards = lenientInt(raw)
			case "redCards":
				s.Soccer.RedCards = lenientInt(raw)
			}
		case VariantPremierLeague:
			switch field {
			case "runs":
				s.Cricket.Runs = lenientInt(raw)
			case "wickets":
				s.Cricket.Wickets = lenientInt(raw)
			case "matches":
				s.Cricket.Matches = lenientInt(raw)
			case "average":
				s.Cricket.Average = lenientFloat(raw)
			}
		}
	}

	return s
}

// Fields flattens the active branch into name/value pairs for display.
func (s Stats) Fields() map[string]float64 {
	switch s.Variant {
	case VariantSoccerLeague:
		return map[string]float64{
			"goals":       float64(s.Soccer.Goals),
			"assists":     float64(s.Soccer.Assists),
			"yellowCards": float64(s.Soccer.YellowCards),
			"redCards":    float64(s.Soccer.RedCards),
		}
	case VariantPremierLeague:
		return map[string]float64{
			"runs":    float64(s.Cricket.Runs),
			"wickets": float64(s.Cricket.Wickets),
			"matches": float64(s.Cricket.Matches),
			"average": s.Cricket.Average,
		}
	default:
		return nil
	}
}

func lenientInt(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}

	return value
}

func lenientFloat(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}

	return value
}
