package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{variant}/positions", handler.ListPositions)
	mux.HandleFunc("GET /v1/tournaments/{variant}/stat-fields", handler.ListStatFields)
	mux.HandleFunc("GET /v1/tournaments/{variant}/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/tournaments/{variant}/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/tournaments/{variant}/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/tournaments/{variant}/gallery", handler.ListGalleryImages)

	mux.HandleFunc("POST /v1/auth/sign-in", handler.SignIn)
	mux.HandleFunc("POST /v1/auth/sign-out", handler.SignOut)
}

// The registration wizard is the public entry point: teams self-register
// without an account, so none of its routes require auth.
func registerRegistrationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/registration", handler.GetRegistrationState)
	mux.HandleFunc("PUT /v1/registration/tournament", handler.SelectRegistrationTournament)
	mux.HandleFunc("PUT /v1/registration/team-info", handler.SetRegistrationTeamInfo)
	mux.HandleFunc("PUT /v1/registration/staged-player", handler.StageRegistrationPlayer)
	mux.HandleFunc("POST /v1/registration/players", handler.AddRegistrationPlayer)
	mux.HandleFunc("DELETE /v1/registration/players/{playerID}", handler.RemoveRegistrationPlayer)
	mux.HandleFunc("POST /v1/registration/next", handler.RegistrationNext)
	mux.HandleFunc("POST /v1/registration/back", handler.RegistrationBack)
	mux.HandleFunc("POST /v1/registration/submit", handler.RegistrationSubmit)
	mux.HandleFunc("POST /v1/registration/reset", handler.RegistrationReset)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedAdminRoutes(mux, handler, verifier)
	registerAuthorizedGalleryRoutes(mux, handler, verifier)
}

func registerAuthorizedAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("PUT /v1/admin/tournament", RequireAuth(verifier, http.HandlerFunc(handler.SelectAdminTournament)))
	mux.Handle("GET /v1/admin/teams", RequireAuth(verifier, http.HandlerFunc(handler.AdminListTeams)))
	mux.Handle("POST /v1/admin/teams", RequireAuth(verifier, http.HandlerFunc(handler.AdminAddTeam)))
	mux.Handle("DELETE /v1/admin/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.AdminDeleteTeam)))
	mux.Handle("POST /v1/admin/teams/{teamID}/edit", RequireAuth(verifier, http.HandlerFunc(handler.AdminStartEdit)))
	mux.Handle("PUT /v1/admin/edit", RequireAuth(verifier, http.HandlerFunc(handler.AdminUpdateEdit)))
	mux.Handle("POST /v1/admin/edit/save", RequireAuth(verifier, http.HandlerFunc(handler.AdminSaveEdit)))
	mux.Handle("POST /v1/admin/edit/cancel", RequireAuth(verifier, http.HandlerFunc(handler.AdminCancelEdit)))
	mux.Handle("POST /v1/admin/teams/{teamID}/roster", RequireAuth(verifier, http.HandlerFunc(handler.AdminOpenRoster)))
	mux.Handle("POST /v1/admin/roster/close", RequireAuth(verifier, http.HandlerFunc(handler.AdminCloseRoster)))
	mux.Handle("POST /v1/admin/roster/players", RequireAuth(verifier, http.HandlerFunc(handler.AdminAddPlayer)))
	mux.Handle("POST /v1/admin/roster/players/{playerID}/select", RequireAuth(verifier, http.HandlerFunc(handler.AdminSelectPlayer)))
	mux.Handle("PUT /v1/admin/roster/player", RequireAuth(verifier, http.HandlerFunc(handler.AdminSavePlayer)))
	mux.Handle("POST /v1/admin/roster/back", RequireAuth(verifier, http.HandlerFunc(handler.AdminRosterBack)))
	mux.Handle("DELETE /v1/admin/roster/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.AdminRemovePlayer)))
	mux.Handle("GET /v1/admin/stat-fields", RequireAuth(verifier, http.HandlerFunc(handler.AdminListStatFields)))
	mux.Handle("GET /v1/admin/report", RequireAuth(verifier, http.HandlerFunc(handler.AdminGetReport)))
}

func registerAuthorizedGalleryRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/admin/tournaments/{variant}/gallery", RequireAuth(verifier, http.HandlerFunc(handler.AdminAddGalleryImage)))
	mux.Handle("DELETE /v1/admin/tournaments/{variant}/gallery/{imageID}", RequireAuth(verifier, http.HandlerFunc(handler.AdminRemoveGalleryImage)))
}
