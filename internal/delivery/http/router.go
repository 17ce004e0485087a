package http

import (
	"net/http"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/http/handler"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	managerHandler  *handler.ManagerBookingHandler
	vendorHandler   *handler.VendorBookingHandler
	offeringHandler *handler.VendorOfferingHandler
	customerHandler *handler.CustomerBookingHandler
	adminHandler    *handler.AdminHandler
	catalogHandler  *handler.CatalogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	managerHandler *handler.ManagerBookingHandler,
	vendorHandler *handler.VendorBookingHandler,
	offeringHandler *handler.VendorOfferingHandler,
	customerHandler *handler.CustomerBookingHandler,
	adminHandler *handler.AdminHandler,
	catalogHandler *handler.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		managerHandler:  managerHandler,
		vendorHandler:   vendorHandler,
		offeringHandler: offeringHandler,
		customerHandler: customerHandler,
		adminHandler:    adminHandler,
		catalogHandler:  catalogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public catalog
	api.HandleFunc("/services", r.catalogHandler.ListServices).Methods(http.MethodGet)
	api.HandleFunc("/products", r.catalogHandler.ListProducts).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/register-vendor", r.authHandler.RegisterVendor).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Manager routes
	manager := api.PathPrefix("/manager").Subrouter()
	manager.Use(r.authMiddleware.Authenticate)
	manager.Use(middleware.RequireManager)
	manager.HandleFunc("/bookings", r.managerHandler.ListBookings).Methods(http.MethodGet)
	manager.HandleFunc("/bookings/stats", r.managerHandler.GetBookingStats).Methods(http.MethodGet)
	manager.HandleFunc("/bookings/{id}/events", r.managerHandler.GetBookingEvents).Methods(http.MethodGet)
	manager.HandleFunc("/bookings/{id}/assign-vendor", r.managerHandler.AssignVendor).Methods(http.MethodPut)
	manager.HandleFunc("/bookings/{id}/assign-employee", r.managerHandler.AssignEmployee).Methods(http.MethodPut)
	manager.HandleFunc("/employees", r.managerHandler.ListEmployees).Methods(http.MethodGet)
	manager.HandleFunc("/athome-bookings", r.managerHandler.ListAtHomeBookings).Methods(http.MethodGet)
	manager.HandleFunc("/athome-bookings/{id}/eligible-vendors", r.managerHandler.EligibleVendors).Methods(http.MethodGet)
	manager.HandleFunc("/athome-bookings/{id}/assign", r.managerHandler.AssignAtHomeVendors).Methods(http.MethodPost)

	// Vendor routes
	vendor := api.PathPrefix("/vendor").Subrouter()
	vendor.Use(r.authMiddleware.Authenticate)
	vendor.Use(middleware.RequireVendor)
	vendor.HandleFunc("/bookings", r.vendorHandler.ListBookings).Methods(http.MethodGet)
	vendor.HandleFunc("/bookings/{id}/approve", r.vendorHandler.ApproveBooking).Methods(http.MethodPut)
	vendor.HandleFunc("/bookings/{id}/reject", r.vendorHandler.RejectBooking).Methods(http.MethodPut)
	vendor.HandleFunc("/bookings/{id}/assign-beautician", r.vendorHandler.AssignBeautician).Methods(http.MethodPut)
	vendor.HandleFunc("/assignments", r.vendorHandler.ListAssignments).Methods(http.MethodGet)
	vendor.HandleFunc("/assignments/{id}/accept", r.vendorHandler.AcceptAssignment).Methods(http.MethodPut)
	vendor.HandleFunc("/assignments/{id}/reject", r.vendorHandler.RejectAssignment).Methods(http.MethodPut)
	vendor.HandleFunc("/offerings", r.offeringHandler.ListOfferings).Methods(http.MethodGet)
	vendor.HandleFunc("/offerings/services", r.offeringHandler.AddService).Methods(http.MethodPost)
	vendor.HandleFunc("/offerings/services/{id}", r.offeringHandler.RemoveService).Methods(http.MethodDelete)
	vendor.HandleFunc("/offerings/products", r.offeringHandler.AddProduct).Methods(http.MethodPost)
	vendor.HandleFunc("/offerings/products/{id}", r.offeringHandler.RemoveProduct).Methods(http.MethodDelete)

	// Customer routes
	customer := api.PathPrefix("/customer").Subrouter()
	customer.Use(r.authMiddleware.Authenticate)
	customer.Use(middleware.RequireCustomer)
	customer.HandleFunc("/bookings", r.customerHandler.CreateBooking).Methods(http.MethodPost)
	customer.HandleFunc("/bookings", r.customerHandler.GetMyBookings).Methods(http.MethodGet)
	customer.HandleFunc("/bookings/{id}/cancel", r.customerHandler.CancelBooking).Methods(http.MethodPut)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/vendors", r.adminHandler.ListVendors).Methods(http.MethodGet)
	admin.HandleFunc("/vendors/{id}/approve", r.adminHandler.ApproveVendor).Methods(http.MethodPut)
	admin.HandleFunc("/vendors/{id}/reject", r.adminHandler.RejectVendor).Methods(http.MethodPut)
	admin.HandleFunc("/services", r.adminHandler.CreateCatalogService).Methods(http.MethodPost)
	admin.HandleFunc("/products", r.adminHandler.CreateCatalogProduct).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
