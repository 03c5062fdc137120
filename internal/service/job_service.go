package service

import (
	"fmt"
	"log"
	"os"
	"time"

	"rentwheels/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// SendDailySummary mails the admin how many rentals end today. Scheduled
// from main; failures are logged by the caller and never fatal.
func (s *JobService) SendDailySummary() error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	bookings, err := s.Repo.CountBookingsEndingOn(today)
	if err != nil {
		return fmt.Errorf("daily summary: %w", err)
	}
	hirings, err := s.Repo.CountHiringsEndingOn(today)
	if err != nil {
		return fmt.Errorf("daily summary: %w", err)
	}

	log.Printf("daily summary: %d bookings and %d hirings end today", bookings, hirings)

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return nil
	}
	subject := fmt.Sprintf("RentWheels daily summary - %s", today.Format("02 Jan 2006"))
	body := fmt.Sprintf(
		"Rentals ending today (%s):\n\nVehicle bookings: %d\nDriver hirings: %d\n",
		today.Format("02 Jan 2006"), bookings, hirings,
	)
	return SendEmailWithSendGrid(adminEmail, "Admin", subject, body)
}
