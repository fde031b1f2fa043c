package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
	"github.com/ahaliasports/tournament-ops/internal/usecase"
)

// SessionService issues and revokes admin session tokens.
type SessionService interface {
	SignIn(ctx context.Context, username, password string) (string, error)
	SignOut(ctx context.Context, token string)
}

type Handler struct {
	rosterService       *usecase.RosterService
	registrationService *usecase.RegistrationService
	adminService        *usecase.AdminService
	galleryService      *usecase.GalleryService
	reportService       *usecase.ReportService
	sessions            SessionService
	logger              *slog.Logger
	validator           *validator.Validate
}

func NewHandler(
	rosterService *usecase.RosterService,
	registrationService *usecase.RegistrationService,
	adminService *usecase.AdminService,
	galleryService *usecase.GalleryService,
	reportService *usecase.ReportService,
	sessions SessionService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		rosterService:       rosterService,
		registrationService: registrationService,
		adminService:        adminService,
		galleryService:      galleryService,
		reportService:       reportService,
		sessions:            sessions,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathVariant(r *http.Request) (schema.Variant, error) {
	variant := schema.Variant(strings.TrimSpace(r.PathValue("variant")))
	if !variant.Valid() {
		return "", fmt.Errorf("%w: %q", schema.ErrUnknownVariant, variant)
	}

	return variant, nil
}

func pathID(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}

	return id, nil
}
