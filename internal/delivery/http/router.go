package http

import (
	"net/http"

	"doctor-directory-bff/internal/delivery/http/handler"
	"doctor-directory-bff/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	directoryHandler *handler.DirectoryHandler
	paymentHandler   *handler.PaymentHandler
	hospitalHandler  *handler.HospitalHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	directoryHandler *handler.DirectoryHandler,
	paymentHandler *handler.PaymentHandler,
	hospitalHandler *handler.HospitalHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		directoryHandler: directoryHandler,
		paymentHandler:   paymentHandler,
		hospitalHandler:  hospitalHandler,
		auditLogHandler:  auditLogHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory routes (bearer optional, subscribe checks for a user itself)
	directory := api.PathPrefix("/directory").Subrouter()
	directory.Use(r.authMiddleware.Identify)
	directory.HandleFunc("/views", r.directoryHandler.OpenView).Methods(http.MethodPost)
	directory.HandleFunc("/views/{id}", r.directoryHandler.GetView).Methods(http.MethodGet)
	directory.HandleFunc("/views/{id}", r.directoryHandler.CloseView).Methods(http.MethodDelete)
	directory.HandleFunc("/views/{id}/reload", r.directoryHandler.ReloadView).Methods(http.MethodPost)
	directory.HandleFunc("/views/{id}/doctors/{email}/like", r.directoryHandler.LikeDoctor).Methods(http.MethodPost)
	directory.HandleFunc("/views/{id}/doctors/{email}/subscribe", r.directoryHandler.SubscribeToDoctor).Methods(http.MethodPost)
	directory.HandleFunc("/views/{id}/doctors/{email}/slot", r.directoryHandler.SelectSlot).Methods(http.MethodPost)

	// Plans, payments and hospital booking (bearer optional)
	public := api.NewRoute().Subrouter()
	public.Use(r.authMiddleware.Identify)
	public.HandleFunc("/plans", r.paymentHandler.ListPlans).Methods(http.MethodGet)
	public.HandleFunc("/plans/{id}/buy", r.paymentHandler.BuyPlan).Methods(http.MethodPost)
	public.HandleFunc("/payments", r.paymentHandler.InitiatePayment).Methods(http.MethodPost)
	public.HandleFunc("/hospitals/availability", r.hospitalHandler.GetAvailability).Methods(http.MethodGet)
	public.HandleFunc("/hospitals/bookings", r.hospitalHandler.SelectBooking).Methods(http.MethodPost)

	// Activity (protected)
	me := api.PathPrefix("/me").Subrouter()
	me.Use(r.authMiddleware.Authenticate)
	me.HandleFunc("/activity", r.auditLogHandler.GetMyActivity).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	// Preflight requests never match a route method, so answer them here.
	r.router.MethodNotAllowedHandler = r.corsMiddleware.Handle(http.HandlerFunc(methodNotAllowed))

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

func methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}
