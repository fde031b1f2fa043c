package httpapi

import (
	"net/http"
)

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signInResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SignIn")
	defer span.End()

	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	token, err := h.sessions.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "sign in failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, signInResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}

// SignOut revokes the presented token. Revoking an already-invalid token
// still succeeds, so the client can always clear its state.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SignOut")
	defer span.End()

	token, err := bearerToken(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.sessions.SignOut(ctx, token)
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "signed_out"})
}
