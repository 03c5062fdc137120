package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"rentwheels/internal/api"
	"rentwheels/internal/auth"
	"rentwheels/internal/repository"
	"rentwheels/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	jobRepo := repository.NewJobRepository(db)

	notifier := service.NewNotifyService()
	authSvc := service.NewAuthService(userRepo, adminRepo)
	bookingSvc := service.NewBookingService(vehicleRepo, driverRepo, bookingRepo, notifier)
	fleetSvc := service.NewFleetService(vehicleRepo, driverRepo)
	jobSvc := service.NewJobService(jobRepo)

	view, err := api.NewRenderer("web/templates")
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	sessions := auth.NewSessionAuth([]byte(secret))

	pages := api.NewPageHandler(fleetSvc, bookingSvc, sessions, view)
	authHandler := api.NewAuthHandler(authSvc, sessions, view)
	bookingHandler := api.NewBookingHandler(bookingSvc, fleetSvc, view)
	adminHandler := api.NewAdminHandler(fleetSvc, bookingSvc, view, "web/static/images")

	r := mux.NewRouter()

	// Public pages
	r.HandleFunc("/", pages.Home).Methods("GET")
	r.HandleFunc("/vehicles", pages.Vehicles).Methods("GET")
	r.HandleFunc("/drivers", pages.Drivers).Methods("GET")
	r.HandleFunc("/login", pages.LoginPage).Methods("GET")
	r.HandleFunc("/adminlogin", pages.AdminLoginPage).Methods("GET")
	r.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/login/{type}", authHandler.Login).Methods("POST")
	r.HandleFunc("/logout", authHandler.Logout).Methods("GET")

	// Customer pages (user session required)
	r.Handle("/bookingpage", sessions.RequireUser(http.HandlerFunc(pages.BookingPage))).Methods("GET")
	r.Handle("/hiring", sessions.RequireUser(http.HandlerFunc(pages.HiringPage))).Methods("GET")
	r.Handle("/history", sessions.RequireUser(http.HandlerFunc(pages.History))).Methods("GET")
	r.Handle("/bookings", sessions.RequireUser(http.HandlerFunc(pages.MyBookings))).Methods("GET")
	r.Handle("/bookvehicle", sessions.RequireUser(http.HandlerFunc(bookingHandler.BookVehicle))).Methods("POST")
	r.Handle("/hiredriver", sessions.RequireUser(http.HandlerFunc(bookingHandler.HireDriver))).Methods("POST")

	// Admin pages (admin session required)
	r.Handle("/adminhome", sessions.RequireAdmin(http.HandlerFunc(adminHandler.AdminHome))).Methods("GET")
	r.Handle("/admindrivers", sessions.RequireAdmin(http.HandlerFunc(adminHandler.AdminDrivers))).Methods("GET")
	r.Handle("/adminbookings", sessions.RequireAdmin(http.HandlerFunc(adminHandler.AdminBookings))).Methods("GET")
	r.Handle("/removevehicle/{id}", sessions.RequireAdmin(http.HandlerFunc(adminHandler.RemoveVehicle))).Methods("GET")
	r.Handle("/addvehicle/{id}", sessions.RequireAdmin(http.HandlerFunc(adminHandler.RestoreVehicle))).Methods("GET")
	r.Handle("/removedriver/{id}", sessions.RequireAdmin(http.HandlerFunc(adminHandler.RemoveDriver))).Methods("GET")
	r.Handle("/adddriver/{id}", sessions.RequireAdmin(http.HandlerFunc(adminHandler.RestoreDriver))).Methods("GET")
	r.Handle("/addvehicle", sessions.RequireAdmin(http.HandlerFunc(adminHandler.AddVehicle))).Methods("POST")
	r.Handle("/adddriver", sessions.RequireAdmin(http.HandlerFunc(adminHandler.AddDriver))).Methods("POST")

	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	c := cron.New()
	if _, err := c.AddFunc("0 7 * * *", func() {
		if err := jobSvc.SendDailySummary(); err != nil {
			log.Printf("daily summary job: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule daily summary: %v", err)
	}
	c.Start()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	handler := handlers.LoggingHandler(os.Stdout, handlers.RecoveryHandler()(r))
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
