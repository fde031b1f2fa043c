package httpapi

import (
	"context"

	"github.com/ahaliasports/tournament-ops/internal/domain/gallery"
	"github.com/ahaliasports/tournament-ops/internal/domain/roster"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
	"github.com/ahaliasports/tournament-ops/internal/usecase"
)

type tournamentDTO struct {
	Variant     string   `json:"variant"`
	DisplayName string   `json:"displayName"`
	Positions   []string `json:"positions"`
	StatFields  []string `json:"statFields"`
}

type playerDTO struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	Position     string             `json:"position"`
	JerseyNumber *int               `json:"jerseyNumber,omitempty"`
	Stats        map[string]float64 `json:"stats"`
}

type teamDTO struct {
	ID           int         `json:"id"`
	Tournament   string      `json:"tournament"`
	Name         string      `json:"name"`
	Department   string      `json:"department"`
	CaptainName  string      `json:"captainName"`
	CaptainEmail string      `json:"captainEmail"`
	CaptainPhone string      `json:"captainPhone"`
	Description  string      `json:"description,omitempty"`
	Status       string      `json:"status"`
	Players      []playerDTO `json:"players"`
}

// rosterPlayerDTO is a player flattened out of its team for the public
// per-tournament player listing.
type rosterPlayerDTO struct {
	playerDTO
	TeamID   int    `json:"teamId"`
	TeamName string `json:"teamName"`
}

type galleryImageDTO struct {
	ID      int    `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Date    string `json:"date"`
}

type teamInfoDTO struct {
	TeamName     string `json:"teamName"`
	Department   string `json:"department"`
	CaptainName  string `json:"captainName"`
	CaptainEmail string `json:"captainEmail"`
	CaptainPhone string `json:"captainPhone"`
	Description  string `json:"description,omitempty"`
}

type stagedPlayerDTO struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	JerseyNumber string `json:"jerseyNumber,omitempty"`
}

type wizardStateDTO struct {
	Step         string          `json:"step"`
	Tournament   string          `json:"tournament"`
	TeamInfo     teamInfoDTO     `json:"teamInfo"`
	Players      []playerDTO     `json:"players"`
	StagedPlayer stagedPlayerDTO `json:"stagedPlayer"`
	Submitting   bool            `json:"submitting"`
}

func playerToDTO(ctx context.Context, v roster.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:           v.ID,
		Name:         v.Name,
		Position:     string(v.Position),
		JerseyNumber: v.JerseyNumber,
		Stats:        v.Stats.Fields(),
	}
}

func teamToDTO(ctx context.Context, v roster.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	players := make([]playerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, playerToDTO(ctx, p))
	}

	return teamDTO{
		ID:           v.ID,
		Tournament:   string(v.Variant),
		Name:         v.Name,
		Department:   v.Department,
		CaptainName:  v.CaptainName,
		CaptainEmail: v.CaptainEmail,
		CaptainPhone: v.CaptainPhone,
		Description:  v.Description,
		Status:       string(v.Status),
		Players:      players,
	}
}

func galleryImageToDTO(ctx context.Context, v gallery.Image) galleryImageDTO {
	ctx, span := startSpan(ctx, "httpapi.galleryImageToDTO")
	defer span.End()

	return galleryImageDTO{
		ID:      v.ID,
		URL:     v.URL,
		Caption: v.Caption,
		Date:    v.Date,
	}
}

func tournamentToDTO(ctx context.Context, v schema.Variant) tournamentDTO {
	ctx, span := startSpan(ctx, "httpapi.tournamentToDTO")
	defer span.End()

	positions, _ := schema.PositionsFor(v)
	names := make([]string, 0, len(positions))
	for _, p := range positions {
		names = append(names, string(p))
	}
	statFields, _ := schema.StatFieldsFor(v)

	return tournamentDTO{
		Variant:     string(v),
		DisplayName: v.DisplayName(),
		Positions:   names,
		StatFields:  statFields,
	}
}

func wizardStateToDTO(ctx context.Context, v usecase.WizardState) wizardStateDTO {
	ctx, span := startSpan(ctx, "httpapi.wizardStateToDTO")
	defer span.End()

	players := make([]playerDTO, 0, len(v.Players))
	for _, p := range v.Players {
		players = append(players, playerToDTO(ctx, p))
	}

	return wizardStateDTO{
		Step:       v.Step.String(),
		Tournament: string(v.Variant),
		TeamInfo: teamInfoDTO{
			TeamName:     v.Fields.Name,
			Department:   v.Fields.Department,
			CaptainName:  v.Fields.CaptainName,
			CaptainEmail: v.Fields.CaptainEmail,
			CaptainPhone: v.Fields.CaptainPhone,
			Description:  v.Fields.Description,
		},
		Players: players,
		StagedPlayer: stagedPlayerDTO{
			Name:         v.Staged.Name,
			Position:     string(v.Staged.Position),
			JerseyNumber: v.Staged.JerseyNumber,
		},
		Submitting: v.Submitting,
	}
}
