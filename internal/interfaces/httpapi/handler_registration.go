package httpapi

import (
	"net/http"

	"github.com/ahaliasports/tournament-ops/internal/domain/roster"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

type selectTournamentRequest struct {
	Tournament string `json:"tournament" validate:"required"`
}

type teamInfoRequest struct {
	TeamName     string `json:"teamName"`
	Department   string `json:"department"`
	CaptainName  string `json:"captainName"`
	CaptainEmail string `json:"captainEmail"`
	CaptainPhone string `json:"captainPhone"`
	Description  string `json:"description"`
}

func (r teamInfoRequest) toFields() roster.TeamFields {
	return roster.TeamFields{
		Name:         r.TeamName,
		Department:   r.Department,
		CaptainName:  r.CaptainName,
		CaptainEmail: r.CaptainEmail,
		CaptainPhone: r.CaptainPhone,
		Description:  r.Description,
	}
}

type playerFieldsRequest struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	JerseyNumber string `json:"jerseyNumber"`
}

func (r playerFieldsRequest) toFields() roster.PlayerFields {
	return roster.PlayerFields{
		Name:         r.Name,
		Position:     schema.Position(r.Position),
		JerseyNumber: r.JerseyNumber,
	}
}

type wizardStepResponse struct {
	Step string `json:"step"`
}

func (h *Handler) GetRegistrationState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRegistrationState")
	defer span.End()

	state := h.registrationService.State()
	writeSuccess(ctx, w, http.StatusOK, wizardStateToDTO(ctx, state))
}

func (h *Handler) SelectRegistrationTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectRegistrationTournament")
	defer span.End()

	var req selectTournamentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.registrationService.SelectVariant(schema.Variant(req.Tournament)); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wizardStateToDTO(ctx, h.registrationService.State()))
}

// SetRegistrationTeamInfo stores the draft fields as typed; the required-field
// rules are enforced by the step gate, not here.
func (h *Handler) SetRegistrationTeamInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetRegistrationTeamInfo")
	defer span.End()

	var req teamInfoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.registrationService.SetTeamInfo(req.toFields()); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wizardStateToDTO(ctx, h.registrationService.State()))
}

func (h *Handler) StageRegistrationPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StageRegistrationPlayer")
	defer span.End()

	var req playerFieldsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.registrationService.StagePlayer(req.toFields()); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wizardStateToDTO(ctx, h.registrationService.State()))
}

func (h *Handler) AddRegistrationPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddRegistrationPlayer")
	defer span.End()

	var req playerFieldsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	player, err := h.registrationService.AddDraftPlayer(ctx, req.toFields())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(ctx, player))
}

func (h *Handler) RemoveRegistrationPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveRegistrationPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.registrationService.RemoveDraftPlayer(playerID); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wizardStateToDTO(ctx, h.registrationService.State()))
}

func (h *Handler) RegistrationNext(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegistrationNext")
	defer span.End()

	step, err := h.registrationService.Next(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wizardStepResponse{Step: step.String()})
}

func (h *Handler) RegistrationBack(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegistrationBack")
	defer span.End()

	step, err := h.registrationService.Back()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wizardStepResponse{Step: step.String()})
}

func (h *Handler) RegistrationSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegistrationSubmit")
	defer span.End()

	team, err := h.registrationService.Submit(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "registration submit failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(ctx, team))
}

func (h *Handler) RegistrationReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegistrationReset")
	defer span.End()

	if err := h.registrationService.Reset(); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, wizardStateToDTO(ctx, h.registrationService.State()))
}
