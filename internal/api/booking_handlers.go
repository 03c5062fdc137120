package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"rentwheels/internal/apperr"
	"rentwheels/internal/auth"
	"rentwheels/internal/service"
)

const formDateLayout = "2006-01-02"

type BookingHandler struct {
	Bookings *service.BookingService
	Fleet    *service.FleetService
	View     *Renderer
}

func NewBookingHandler(bookings *service.BookingService, fleet *service.FleetService, view *Renderer) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Fleet: fleet, View: view}
}

// BookVehicle prices and stores the booking, then sends the user to their
// history page. The form posts only the vehicle ID; the rate comes from
// the store.
func (h *BookingHandler) BookVehicle(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	vehicleID, from, to, err := h.parseRentalForm(r, "vehicle_id")
	if err != nil {
		h.rerenderBookingPage(w, r, "Please pick a vehicle and a valid date range.")
		return
	}

	_, err = h.Bookings.BookVehicle(vehicleID, from, to, sess.ID, time.Now())
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidRange) {
			h.rerenderBookingPage(w, r, "The end date must not be before the start date.")
			return
		}
		log.Printf("book vehicle %d for %s: %v", vehicleID, sess.ID, err)
		http.Redirect(w, r, "/bookingpage", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

func (h *BookingHandler) HireDriver(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	driverID, from, to, err := h.parseRentalForm(r, "driver_id")
	if err != nil {
		h.rerenderHiringPage(w, r, "Please pick a driver and a valid date range.")
		return
	}

	_, err = h.Bookings.HireDriver(driverID, from, to, sess.ID, time.Now())
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidRange) {
			h.rerenderHiringPage(w, r, "The end date must not be before the start date.")
			return
		}
		log.Printf("hire driver %d for %s: %v", driverID, sess.ID, err)
		http.Redirect(w, r, "/hiring", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

func (h *BookingHandler) parseRentalForm(r *http.Request, idField string) (int, time.Time, time.Time, error) {
	if err := r.ParseForm(); err != nil {
		return 0, time.Time{}, time.Time{}, err
	}
	id, err := strconv.Atoi(r.FormValue(idField))
	if err != nil {
		return 0, time.Time{}, time.Time{}, err
	}
	from, err := time.Parse(formDateLayout, r.FormValue("from"))
	if err != nil {
		return 0, time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(formDateLayout, r.FormValue("to"))
	if err != nil {
		return 0, time.Time{}, time.Time{}, err
	}
	return id, from, to, nil
}

func (h *BookingHandler) rerenderBookingPage(w http.ResponseWriter, r *http.Request, message string) {
	data := VehicleListData{PageData: PageData{LoggedIn: true, Message: message}}
	vehicles, err := h.Fleet.AvailableVehicles()
	if err != nil {
		log.Printf("booking page vehicles: %v", err)
	}
	data.Vehicles = vehicles
	h.View.Render(w, "booking-page.html", data)
}

func (h *BookingHandler) rerenderHiringPage(w http.ResponseWriter, r *http.Request, message string) {
	data := DriverListData{PageData: PageData{LoggedIn: true, Message: message}}
	drivers, err := h.Fleet.DriversInListingOrder()
	if err != nil {
		log.Printf("hiring page drivers: %v", err)
	}
	data.Drivers = drivers
	h.View.Render(w, "hiring.html", data)
}
