package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/login", handler.Login)
	mux.HandleFunc("GET /v1/countries", handler.ListCountries)
	mux.HandleFunc("GET /v1/countries/{countryID}", handler.GetCountry)
	mux.HandleFunc("GET /v1/countries/{countryID}/profile", handler.GetCountryProfile)
	mux.HandleFunc("GET /v1/countries/{countryID}/matches", handler.ListCountryMatches)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/scorers/{playerID}", handler.GetScorerProfile)
	mux.HandleFunc("GET /v1/years/{year}", handler.GetYearlyStats)
	mux.HandleFunc("GET /v1/stats/global", handler.GetGlobalStats)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/internal/ingestion/run", RequireAuth(verifier, http.HandlerFunc(handler.RunIngestionJob)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/etl/run", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunIngestionJob)))
}
