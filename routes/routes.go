package routes

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/becandrade6/wedding-gift-list/controllers"
	"github.com/becandrade6/wedding-gift-list/middleware"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func optionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "wedding-gift-list",
	})
}

func InitRouter() *mux.Router {
	r := mux.NewRouter()

	// Health check at root level for container health checks
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// CORS - origins from CORS_ALLOWED_ORIGINS (comma-separated) or defaults
	origins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	if originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS"); originsEnv != "" {
		for _, p := range strings.Split(originsEnv, ",") {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"}),
			handlers.AllowCredentials(),
		)(next)
	})

	api := r.PathPrefix("/v1").Subrouter()

	// Catch-all OPTIONS handler for CORS preflight
	api.PathPrefix("/").HandlerFunc(optionsHandler).Methods(http.MethodOptions)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Public catalog and reservation flow. Writes get a generous per-IP
	// limit so one stuck guest cannot hammer the registry.
	writeLimiter := middleware.NewIPRateLimiter(30, time.Minute)

	api.Handle("/gifts", http.HandlerFunc(controllers.ListGiftsHandler)).Methods(http.MethodGet)
	api.Handle("/gifts/{id:[0-9]+}/purchase", writeLimiter.Middleware(http.HandlerFunc(controllers.PurchaseGiftHandler))).Methods(http.MethodPost)

	// RSVP flow
	api.Handle("/rsvps", writeLimiter.Middleware(http.HandlerFunc(controllers.CreateRSVPHandler))).Methods(http.MethodPost)

	// Purchase notification relay used by the purchase dialog
	api.Handle("/notifications/purchase", writeLimiter.Middleware(http.HandlerFunc(controllers.SendNotificationHandler))).Methods(http.MethodPost)

	// Admin area
	SetAdminRoutes(api)

	return r
}
