package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ahaliasports/tournament-ops/internal/infrastructure/account/session"
	"github.com/ahaliasports/tournament-ops/internal/infrastructure/notify"
	"github.com/ahaliasports/tournament-ops/internal/infrastructure/repository/memory"
	"github.com/ahaliasports/tournament-ops/internal/platform/logging"
	"github.com/ahaliasports/tournament-ops/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := notify.NewLoggerNotifier(logging.NewNop())

	rosterService := usecase.NewRosterService(memory.NewTeamRepository(memory.SeedTeams()), notifier, logger)
	registrationService := usecase.NewRegistrationService(rosterService, notifier, logger, 0)
	adminService := usecase.NewAdminService(rosterService, logger)
	galleryService := usecase.NewGalleryService(memory.NewGalleryRepository(memory.SeedGalleryImages()), nil, notifier, logger)
	reportService := usecase.NewReportService(rosterService, 2, logger)

	sessions := session.NewManager("admin", "secret", time.Hour, nil)
	handler := NewHandler(rosterService, registrationService, adminService, galleryService, reportService, sessions, logger)

	return NewRouter(handler, sessions, logger, nil)
}

func doJSON(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req = req.WithContext(t.Context())
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()

	var envelope struct {
		APIVersion string          `json:"apiVersion"`
		Data       json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.APIVersion != "2.0" {
		t.Fatalf("unexpected apiVersion: %q", envelope.APIVersion)
	}
	if dst != nil {
		if err := json.Unmarshal(envelope.Data, dst); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
}

func signIn(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/sign-in", "", `{"username":"admin","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("sign-in failed: %d %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		AccessToken string `json:"accessToken"`
		TokenType   string `json:"tokenType"`
	}
	decodeData(t, rec, &resp)
	if resp.AccessToken == "" || resp.TokenType != "Bearer" {
		t.Fatalf("unexpected sign-in response: %+v", resp)
	}
	return resp.AccessToken
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var data map[string]string
	decodeData(t, rec, &data)
	if data["status"] != "ok" {
		t.Fatalf("unexpected payload: %v", data)
	}
}

func TestRouter_SignIn_WrongCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/sign-in", "", `{"username":"admin","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_SignOut_RevokesToken(t *testing.T) {
	router := newTestRouter(t)
	token := signIn(t, router)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/sign-out", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/admin/teams", token, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after sign-out, got %d", rec.Code)
	}
}

func TestRouter_AdminRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/admin/teams"},
		{http.MethodGet, "/v1/admin/report"},
		{http.MethodPost, "/v1/admin/tournaments/asl/gallery"},
	}
	for _, tc := range paths {
		rec := doJSON(t, router, tc.method, tc.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestRouter_ListTournaments(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/tournaments", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var tournaments []struct {
		Variant     string `json:"variant"`
		DisplayName string `json:"displayName"`
	}
	decodeData(t, rec, &tournaments)
	if len(tournaments) != 2 {
		t.Fatalf("expected 2 tournaments, got %d", len(tournaments))
	}
	if tournaments[0].Variant != "asl" || tournaments[0].DisplayName != "Ahalia Soccer League" {
		t.Fatalf("unexpected first tournament: %+v", tournaments[0])
	}
}

func TestRouter_ListTeams_UnknownVariant(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/tournaments/nba/teams", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unknownTournament") {
		t.Fatalf("expected unknownTournament reason, got %s", rec.Body.String())
	}
}

func TestRouter_GetTeam(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/tournaments/asl/teams/1", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var team struct {
		Name    string `json:"name"`
		Players []struct {
			Name string `json:"name"`
		} `json:"players"`
	}
	decodeData(t, rec, &team)
	if team.Name != "Engineering Tigers" || len(team.Players) != 3 {
		t.Fatalf("unexpected team: %+v", team)
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/tournaments/asl/teams/404", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_ListPlayers_FlattensRosters(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/tournaments/asl/players", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var players []struct {
		Name     string `json:"name"`
		TeamName string `json:"teamName"`
	}
	decodeData(t, rec, &players)
	if len(players) != 5 {
		t.Fatalf("expected 5 seeded soccer players, got %d", len(players))
	}
	if players[0].Name != "John Davis" || players[0].TeamName != "Engineering Tigers" {
		t.Fatalf("unexpected first player: %+v", players[0])
	}
	if players[3].TeamName != "Medicine United" {
		t.Fatalf("unexpected fourth player team: %+v", players[3])
	}
}

func TestRouter_DecodeRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/v1/registration/team-info", "", `{"teamName":"X","bogus":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_RegistrationFlow(t *testing.T) {
	router := newTestRouter(t)

	teamInfo := `{"teamName":"Tigers FC","department":"engineering","captainName":"Alex Lee","captainEmail":"a@x.com","captainPhone":"1234567890"}`
	rec := doJSON(t, router, http.MethodPut, "/v1/registration/team-info", "", teamInfo)
	if rec.Code != http.StatusOK {
		t.Fatalf("set team info: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/registration/next", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("advance to players: %d %s", rec.Code, rec.Body.String())
	}
	var step struct {
		Step string `json:"step"`
	}
	decodeData(t, rec, &step)
	if step.Step != "players" {
		t.Fatalf("expected players step, got %q", step.Step)
	}

	for i := 1; i <= 11; i++ {
		body := fmt.Sprintf(`{"name":"P%d","position":"Forward"}`, i)
		rec = doJSON(t, router, http.MethodPost, "/v1/registration/players", "", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("add player %d: %d %s", i, rec.Code, rec.Body.String())
		}
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/registration/next", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("advance to review: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/registration/submit", "", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body.String())
	}
	var team struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	decodeData(t, rec, &team)
	if team.Name != "Tigers FC" || team.Status != "active" {
		t.Fatalf("unexpected committed team: %+v", team)
	}

	// The wizard is back on the first step after a successful submit.
	rec = doJSON(t, router, http.MethodGet, "/v1/registration", "", "")
	var state struct {
		Step string `json:"step"`
	}
	decodeData(t, rec, &state)
	if state.Step != "team_info" {
		t.Fatalf("expected team_info after submit, got %q", state.Step)
	}
}

func TestRouter_RegistrationNext_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/registration/next", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"locationType":"field"`) {
		t.Fatalf("expected per-field error items, got %s", rec.Body.String())
	}
}

func TestRouter_AdminTeamCRUD(t *testing.T) {
	router := newTestRouter(t)
	token := signIn(t, router)

	rec := doJSON(t, router, http.MethodGet, "/v1/admin/teams", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list teams: %d %s", rec.Code, rec.Body.String())
	}
	var teams []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	decodeData(t, rec, &teams)
	if len(teams) != 2 {
		t.Fatalf("expected 2 seeded teams, got %d", len(teams))
	}

	body := `{"teamName":"Commerce Kings","department":"commerce","captainName":"Priya Nair","captainEmail":"priya@example.com","captainPhone":"9846100300"}`
	rec = doJSON(t, router, http.MethodPost, "/v1/admin/teams", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add team: %d %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	decodeData(t, rec, &created)
	if created.ID != 3 || created.Status != "active" {
		t.Fatalf("unexpected created team: %+v", created)
	}

	rec = doJSON(t, router, http.MethodDelete, "/v1/admin/teams/3", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete team: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/admin/teams", token, "")
	decodeData(t, rec, &teams)
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams after delete, got %d", len(teams))
	}
}

func TestRouter_AdminGallery(t *testing.T) {
	router := newTestRouter(t)
	token := signIn(t, router)

	rec := doJSON(t, router, http.MethodPost, "/v1/admin/tournaments/asl/gallery", token, `{"url":"","caption":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty upload, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/admin/tournaments/asl/gallery", token, `{"url":"https://example.com/semi.jpg","caption":"Semi Final","date":"2026-08-30"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add image: %d %s", rec.Code, rec.Body.String())
	}
	var image struct {
		ID      int    `json:"id"`
		Caption string `json:"caption"`
	}
	decodeData(t, rec, &image)
	if image.ID != 9 || image.Caption != "Semi Final" {
		t.Fatalf("unexpected image: %+v", image)
	}

	rec = doJSON(t, router, http.MethodDelete, "/v1/admin/tournaments/asl/gallery/9", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete image: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/tournaments/asl/gallery", "", "")
	var images []struct {
		ID int `json:"id"`
	}
	decodeData(t, rec, &images)
	if len(images) != 4 {
		t.Fatalf("expected 4 images, got %d", len(images))
	}
}

func TestRouter_AdminReport(t *testing.T) {
	router := newTestRouter(t)
	token := signIn(t, router)

	rec := doJSON(t, router, http.MethodGet, "/v1/admin/report", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("report: %d %s", rec.Code, rec.Body.String())
	}

	var report struct {
		TotalTeams   int `json:"totalTeams"`
		TotalPlayers int `json:"totalPlayers"`
	}
	decodeData(t, rec, &report)
	if report.TotalTeams != 4 || report.TotalPlayers != 10 {
		t.Fatalf("unexpected report: %+v", report)
	}
}
