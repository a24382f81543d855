package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Route interfaces keep the router decoupled from concrete handlers, so tests
// can register stubs.
type AuthRoutes interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
}

type SearchRoutes interface {
	QuickSearch(w http.ResponseWriter, r *http.Request)
	AdvancedSearch(w http.ResponseWriter, r *http.Request)
}

type ProfileRoutes interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	GetSelectedProfiles(w http.ResponseWriter, r *http.Request)
	RecordViewedProfile(w http.ResponseWriter, r *http.Request)
}

type DashboardRoutes interface {
	GetDashboardStats(w http.ResponseWriter, r *http.Request)
	GetDashboardChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	authHandler      AuthRoutes
	searchHandler    SearchRoutes
	profileHandler   ProfileRoutes
	dashboardHandler DashboardRoutes
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	authHandler AuthRoutes,
	searchHandler SearchRoutes,
	profileHandler ProfileRoutes,
	dashboardHandler DashboardRoutes,
	router *mux.Router) *Router {
	return &Router{
		authHandler:      authHandler,
		searchHandler:    searchHandler,
		profileHandler:   profileHandler,
		dashboardHandler: dashboardHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/auth/login", r.authHandler.Login).Methods("POST")
	r.router.HandleFunc("/v1/auth/logout", r.authHandler.Logout).Methods("POST")
	r.router.HandleFunc("/v1/auth/register", r.authHandler.Register).Methods("POST")

	r.router.HandleFunc("/v1/search/quick", r.searchHandler.QuickSearch).Methods("POST")
	r.router.HandleFunc("/v1/search/advanced", r.searchHandler.AdvancedSearch).Methods("POST")

	// expects ?profile_id={id}; without it the session's own profile is served
	r.router.HandleFunc("/v1/profile", r.profileHandler.GetProfile).Methods("GET")
	r.router.HandleFunc("/v1/profiles/selected", r.profileHandler.GetSelectedProfiles).Methods("GET")
	r.router.HandleFunc("/v1/profiles/viewed", r.profileHandler.RecordViewedProfile).Methods("POST")

	r.router.HandleFunc("/v1/dashboard", r.dashboardHandler.GetDashboardStats).Methods("GET")
	r.router.HandleFunc("/v1/dashboard/chart", r.dashboardHandler.GetDashboardChart).Methods("GET")

	r.router.HandleFunc("/ping", r.dashboardHandler.Ping).Methods("GET")
}
