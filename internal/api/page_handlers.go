package api

import (
	"log"
	"net/http"
	"time"

	"rentwheels/internal/auth"
	"rentwheels/internal/service"
)

type PageHandler struct {
	Fleet    *service.FleetService
	Bookings *service.BookingService
	Sessions *auth.SessionAuth
	View     *Renderer
}

func NewPageHandler(fleet *service.FleetService, bookings *service.BookingService,
	sessions *auth.SessionAuth, view *Renderer) *PageHandler {
	return &PageHandler{Fleet: fleet, Bookings: bookings, Sessions: sessions, View: view}
}

func (h *PageHandler) pageData(r *http.Request) PageData {
	return PageData{LoggedIn: h.Sessions.SessionFrom(r) != nil}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.View.Render(w, "index.html", h.pageData(r))
}

// Vehicles lists available inventory. A failed read degrades to an empty
// page with an inline message instead of failing the request.
func (h *PageHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	data := VehicleListData{PageData: h.pageData(r)}
	vehicles, err := h.Fleet.AvailableVehicles()
	if err != nil {
		log.Printf("list vehicles: %v", err)
		data.Message = "Vehicles are unavailable right now, please try again."
	}
	data.Vehicles = vehicles
	h.View.Render(w, "vehicles.html", data)
}

func (h *PageHandler) Drivers(w http.ResponseWriter, r *http.Request) {
	data := DriverListData{PageData: h.pageData(r)}
	drivers, err := h.Fleet.BestDriversFirst()
	if err != nil {
		log.Printf("list drivers: %v", err)
		data.Message = "Drivers are unavailable right now, please try again."
	}
	data.Drivers = drivers
	h.View.Render(w, "drivers.html", data)
}

func (h *PageHandler) BookingPage(w http.ResponseWriter, r *http.Request) {
	data := VehicleListData{PageData: h.pageData(r)}
	vehicles, err := h.Fleet.AvailableVehicles()
	if err != nil {
		log.Printf("booking page vehicles: %v", err)
		data.Message = "Vehicles are unavailable right now, please try again."
	}
	data.Vehicles = vehicles
	h.View.Render(w, "booking-page.html", data)
}

func (h *PageHandler) HiringPage(w http.ResponseWriter, r *http.Request) {
	data := DriverListData{PageData: h.pageData(r)}
	drivers, err := h.Fleet.DriversInListingOrder()
	if err != nil {
		log.Printf("hiring page drivers: %v", err)
		data.Message = "Drivers are unavailable right now, please try again."
	}
	data.Drivers = drivers
	h.View.Render(w, "hiring.html", data)
}

func (h *PageHandler) History(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	data := HistoryData{PageData: h.pageData(r)}
	buckets, err := h.Bookings.UserHistory(sess.ID, time.Now())
	if err != nil {
		log.Printf("history for %s: %v", sess.ID, err)
		data.Message = "Your history could not be loaded, please try again."
		buckets = &service.HistoryBuckets{}
	}
	data.Buckets = buckets
	h.View.Render(w, "history.html", data)
}

func (h *PageHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	data := RentalListData{PageData: h.pageData(r)}
	bookings, err := h.Bookings.UserBookings(sess.ID)
	if err != nil {
		log.Printf("bookings for %s: %v", sess.ID, err)
		data.Message = "Your bookings could not be loaded, please try again."
	}
	hirings, err := h.Bookings.UserHirings(sess.ID)
	if err != nil {
		log.Printf("hirings for %s: %v", sess.ID, err)
		data.Message = "Your bookings could not be loaded, please try again."
	}
	data.Bookings = bookings
	data.Hirings = hirings
	h.View.Render(w, "bookings.html", data)
}

func (h *PageHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.View.Render(w, "login.html", h.pageData(r))
}

func (h *PageHandler) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	h.View.Render(w, "admin-login.html", h.pageData(r))
}
