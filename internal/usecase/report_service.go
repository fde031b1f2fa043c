package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ahaliasports/tournament-ops/internal/domain/roster"
	"github.com/ahaliasports/tournament-ops/internal/domain/schema"
)

// VariantReport is the roster summary for one tournament.
type VariantReport struct {
	Variant       schema.Variant `json:"variant"`
	DisplayName   string         `json:"displayName"`
	TeamCount     int            `json:"teamCount"`
	PlayerCount   int            `json:"playerCount"`
	ActiveCount   int            `json:"activeCount"`
	PendingCount  int            `json:"pendingCount"`
	RejectedCount int            `json:"rejectedCount"`
}

// RosterReport aggregates both tournaments.
type RosterReport struct {
	Variants     []VariantReport `json:"variants"`
	TotalTeams   int             `json:"totalTeams"`
	TotalPlayers int             `json:"totalPlayers"`
}

// ReportService builds the cross-variant roster summary. The fan-out is
// read-only, so it does not contend with the single editing session.
type ReportService struct {
	roster  *RosterService
	workers int
	logger  *slog.Logger
}

func NewReportService(rosterService *RosterService, workers int, logger *slog.Logger) *ReportService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReportService{
		roster:  rosterService,
		workers: workers,
		logger:  logger,
	}
}

func (s *ReportService) BuildReport(ctx context.Context) (RosterReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.BuildReport")
	defer span.End()

	variants := schema.AllVariants()
	rows := make([]VariantReport, len(variants))
	errs := make([]error, len(variants))

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return RosterReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for idx, variant := range variants {
		idx, variant := idx, variant
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			teams, listErr := s.roster.ListTeams(ctx, variant)
			if listErr != nil {
				errs[idx] = listErr
				return
			}
			rows[idx] = summarize(variant, teams)
		}); err != nil {
			workers.Done()
			return RosterReport{}, fmt.Errorf("submit report task: %w", err)
		}
	}
	workers.Wait()

	for _, taskErr := range errs {
		if taskErr != nil {
			return RosterReport{}, taskErr
		}
	}

	report := RosterReport{Variants: rows}
	for _, row := range rows {
		report.TotalTeams += row.TeamCount
		report.TotalPlayers += row.PlayerCount
	}

	return report, nil
}

func summarize(variant schema.Variant, teams []roster.Team) VariantReport {
	row := VariantReport{
		Variant:     variant,
		DisplayName: variant.DisplayName(),
		TeamCount:   len(teams),
	}
	for _, team := range teams {
		row.PlayerCount += len(team.Players)
		switch team.Status {
		case roster.StatusActive:
			row.ActiveCount++
		case roster.StatusPending:
			row.PendingCount++
		case roster.StatusRejected:
			row.RejectedCount++
		}
	}

	return row
}
