package routes

import (
	"net/http"
	"time"

	"github.com/becandrade6/wedding-gift-list/controllers/admins"
	"github.com/becandrade6/wedding-gift-list/middleware"

	"github.com/gorilla/mux"
)

func SetAdminRoutes(api *mux.Router) {
	// Rate limiter for admin login: 5 attempts per IP per minute
	adminLoginLimiter := middleware.NewIPRateLimiter(5, time.Minute)

	// Public admin routes
	api.Handle("/admin/login", adminLoginLimiter.Middleware(http.HandlerFunc(admins.Login))).Methods(http.MethodPost)

	// Protected admin routes
	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.AdminAuthMiddleware)

	// Dashboard stats
	adminRouter.Handle("/dashboard", http.HandlerFunc(admins.GetDashboardStats)).Methods(http.MethodGet)

	// Gift management
	adminRouter.Handle("/gifts", http.HandlerFunc(admins.GetGifts)).Methods(http.MethodGet)
	adminRouter.Handle("/gifts", http.HandlerFunc(admins.CreateGift)).Methods(http.MethodPost)
	adminRouter.Handle("/gifts/{id:[0-9]+}", http.HandlerFunc(admins.UpdateGift)).Methods(http.MethodPut)
	adminRouter.Handle("/gifts/{id:[0-9]+}", http.HandlerFunc(admins.DeleteGift)).Methods(http.MethodDelete)

	// Purchase management
	adminRouter.Handle("/purchases", http.HandlerFunc(admins.GetPurchases)).Methods(http.MethodGet)
	adminRouter.Handle("/purchases/{id:[0-9]+}", http.HandlerFunc(admins.DeletePurchase)).Methods(http.MethodDelete)

	// RSVP management
	adminRouter.Handle("/rsvps", http.HandlerFunc(admins.GetRSVPs)).Methods(http.MethodGet)
	adminRouter.Handle("/rsvps/{id:[0-9]+}", http.HandlerFunc(admins.UpdateRSVP)).Methods(http.MethodPut)
	adminRouter.Handle("/rsvps/{id:[0-9]+}", http.HandlerFunc(admins.DeleteRSVP)).Methods(http.MethodDelete)
}
