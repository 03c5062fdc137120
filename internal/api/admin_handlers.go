package api

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"rentwheels/internal/db"
	"rentwheels/internal/service"
)

const maxImageSize = 10 << 20

type AdminHandler struct {
	Fleet    *service.FleetService
	Bookings *service.BookingService
	View     *Renderer
	ImageDir string
}

func NewAdminHandler(fleet *service.FleetService, bookings *service.BookingService, view *Renderer, imageDir string) *AdminHandler {
	return &AdminHandler{Fleet: fleet, Bookings: bookings, View: view, ImageDir: imageDir}
}

func (h *AdminHandler) AdminHome(w http.ResponseWriter, r *http.Request) {
	data := VehicleListData{PageData: PageData{LoggedIn: true}}
	vehicles, err := h.Fleet.AllVehicles()
	if err != nil {
		log.Printf("admin vehicles: %v", err)
		data.Message = "Vehicles could not be loaded."
	}
	data.Vehicles = vehicles
	h.View.Render(w, "admin-home.html", data)
}

func (h *AdminHandler) AdminDrivers(w http.ResponseWriter, r *http.Request) {
	data := DriverListData{PageData: PageData{LoggedIn: true}}
	drivers, err := h.Fleet.AllDrivers()
	if err != nil {
		log.Printf("admin drivers: %v", err)
		data.Message = "Drivers could not be loaded."
	}
	data.Drivers = drivers
	h.View.Render(w, "admin-drivers.html", data)
}

func (h *AdminHandler) AdminBookings(w http.ResponseWriter, r *http.Request) {
	data := RentalListData{PageData: PageData{LoggedIn: true}}
	bookings, err := h.Bookings.AllBookings()
	if err != nil {
		log.Printf("admin bookings: %v", err)
		data.Message = "Bookings could not be loaded."
	}
	hirings, err := h.Bookings.AllHirings()
	if err != nil {
		log.Printf("admin hirings: %v", err)
		data.Message = "Bookings could not be loaded."
	}
	data.Bookings = bookings
	data.Hirings = hirings
	h.View.Render(w, "admin-bookings.html", data)
}

// Availability toggles always redirect back to the originating list page,
// success or not.

func (h *AdminHandler) RemoveVehicle(w http.ResponseWriter, r *http.Request) {
	h.toggleVehicle(w, r, false)
}

func (h *AdminHandler) RestoreVehicle(w http.ResponseWriter, r *http.Request) {
	h.toggleVehicle(w, r, true)
}

func (h *AdminHandler) toggleVehicle(w http.ResponseWriter, r *http.Request, available bool) {
	if id, err := strconv.Atoi(mux.Vars(r)["id"]); err == nil {
		if err := h.Fleet.SetVehicleAvailability(id, available); err != nil {
			log.Printf("set vehicle %d availability: %v", id, err)
		}
	}
	http.Redirect(w, r, "/adminhome", http.StatusSeeOther)
}

func (h *AdminHandler) RemoveDriver(w http.ResponseWriter, r *http.Request) {
	h.toggleDriver(w, r, false)
}

func (h *AdminHandler) RestoreDriver(w http.ResponseWriter, r *http.Request) {
	h.toggleDriver(w, r, true)
}

func (h *AdminHandler) toggleDriver(w http.ResponseWriter, r *http.Request, available bool) {
	if id, err := strconv.Atoi(mux.Vars(r)["id"]); err == nil {
		if err := h.Fleet.SetDriverAvailability(id, available); err != nil {
			log.Printf("set driver %d availability: %v", id, err)
		}
	}
	http.Redirect(w, r, "/admindrivers", http.StatusSeeOther)
}

func (h *AdminHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		log.Printf("add vehicle form: %v", err)
		http.Redirect(w, r, "/adminhome", http.StatusSeeOther)
		return
	}
	imagePath, err := h.saveImage(r)
	if err != nil {
		log.Printf("add vehicle image: %v", err)
		http.Redirect(w, r, "/adminhome", http.StatusSeeOther)
		return
	}

	vehicle := &db.Vehicle{
		Model:        r.FormValue("model"),
		LaunchYear:   formInt(r, "launch_year"),
		Seats:        formInt(r, "seats"),
		Mileage:      formInt(r, "mileage"),
		PricePerDay:  formInt(r, "price_per_day"),
		Transmission: r.FormValue("transmission"),
		Type:         r.FormValue("vtype"),
		ImagePath:    imagePath,
	}
	if err := h.Fleet.AddVehicle(vehicle); err != nil {
		log.Printf("add vehicle: %v", err)
	}
	http.Redirect(w, r, "/adminhome", http.StatusSeeOther)
}

func (h *AdminHandler) AddDriver(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		log.Printf("add driver form: %v", err)
		http.Redirect(w, r, "/admindrivers", http.StatusSeeOther)
		return
	}
	imagePath, err := h.saveImage(r)
	if err != nil {
		log.Printf("add driver image: %v", err)
		http.Redirect(w, r, "/admindrivers", http.StatusSeeOther)
		return
	}

	driver := &db.Driver{
		Name:        r.FormValue("name"),
		Age:         formInt(r, "age"),
		Gender:      r.FormValue("gender"),
		Experience:  formInt(r, "experience"),
		PricePerDay: formInt(r, "price_per_day"),
		Categories:  r.FormValue("categories"),
		ImagePath:   imagePath,
	}
	if err := h.Fleet.AddDriver(driver); err != nil {
		log.Printf("add driver: %v", err)
	}
	http.Redirect(w, r, "/admindrivers", http.StatusSeeOther)
}

// saveImage stores the uploaded image field on disk and returns the path
// the templates serve it from.
func (h *AdminHandler) saveImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", err
	}
	defer file.Close()

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(h.ImageDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "/static/images/" + name, nil
}

func formInt(r *http.Request, field string) int {
	n, _ := strconv.Atoi(r.FormValue(field))
	return n
}
