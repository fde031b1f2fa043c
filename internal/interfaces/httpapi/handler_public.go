package httpapi

import (
	"net/http"

	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	variants := schema.AllVariants()
	items := make([]tournamentDTO, 0, len(variants))
	for _, v := range variants {
		items = append(items, tournamentToDTO(ctx, v))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	variant, err := pathVariant(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	positions, err := schema.PositionsFor(variant)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	names := make([]string, 0, len(positions))
	for _, p := range positions {
		names = append(names, string(p))
	}

	writeSuccess(ctx, w, http.StatusOK, names)
}

func (h *Handler) ListStatFields(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStatFields")
	defer span.End()

	variant, err := pathVariant(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fields, err := schema.StatFieldsFor(variant)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fields)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	variant, err := pathVariant(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.rosterService.ListTeams(ctx, variant)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "tournament", string(variant), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// ListPlayers flattens every team's roster for the tournament into a single
// list, tagged with the owning team.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	variant, err := pathVariant(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.rosterService.ListTeams(ctx, variant)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "tournament", string(variant), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterPlayerDTO, 0)
	for _, t := range teams {
		for _, p := range t.Players {
			items = append(items, rosterPlayerDTO{
				playerDTO: playerToDTO(ctx, p),
				TeamID:    t.ID,
				TeamName:  t.Name,
			})
		}
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	variant, err := pathVariant(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	team, err := h.rosterService.GetTeam(ctx, variant, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "tournament", string(variant), "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(ctx, team))
}

func (h *Handler) ListGalleryImages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGalleryImages")
	defer span.End()

	variant, err := pathVariant(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	images, err := h.galleryService.List(ctx, variant)
	if err != nil {
		h.logger.WarnContext(ctx, "list gallery failed", "tournament", string(variant), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]galleryImageDTO, 0, len(images))
	for _, img := range images {
		items = append(items, galleryImageToDTO(ctx, img))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
