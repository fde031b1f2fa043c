package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ahaliasports/tournament-ops/internal/config"
	"github.com/ahaliasports/tournament-ops/internal/domain/roster"
	"github.com/ahaliasports/tournament-ops/internal/infrastructure/account/session"
	"github.com/ahaliasports/tournament-ops/internal/infrastructure/notify"
	cacherepo "github.com/ahaliasports/tournament-ops/internal/infrastructure/repository/cache"
	"github.com/ahaliasports/tournament-ops/internal/infrastructure/repository/memory"
	"github.com/ahaliasports/tournament-ops/internal/interfaces/httpapi"
	"github.com/ahaliasports/tournament-ops/internal/platform/cache"
	idgen "github.com/ahaliasports/tournament-ops/internal/platform/id"
	"github.com/ahaliasports/tournament-ops/internal/platform/logging"
	"github.com/ahaliasports/tournament-ops/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger, eventLogger *logging.Logger) (*http.Server, error) {
	var teamRepo roster.Repository = memory.NewTeamRepository(memory.SeedTeams())
	galleryRepo := memory.NewGalleryRepository(memory.SeedGalleryImages())

	notifier := notify.NewLoggerNotifier(eventLogger)

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, cacheStore)
	}

	rosterSvc := usecase.NewRosterService(teamRepo, notifier, logger)
	registrationSvc := usecase.NewRegistrationService(rosterSvc, notifier, logger, cfg.SubmitDelay)
	adminSvc := usecase.NewAdminService(rosterSvc, logger)
	gallerySvc := usecase.NewGalleryService(galleryRepo, cacheStore, notifier, logger)
	reportSvc := usecase.NewReportService(rosterSvc, cfg.ReportWorkers, logger)

	sessions := session.NewManager(cfg.AdminUsername, cfg.AdminPassword, cfg.SessionTTL, idgen.NewRandomGenerator())

	handler := httpapi.NewHandler(
		rosterSvc,
		registrationSvc,
		adminSvc,
		gallerySvc,
		reportSvc,
		sessions,
		logger,
	)
	router := httpapi.NewRouter(handler, sessions, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
