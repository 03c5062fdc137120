package service

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService sends booking confirmations: an SMS to the customer's
// phone number and, when ADMIN_EMAIL is set, an email copy for the admin's
// records. Sends are best-effort; missing credentials or provider errors
// are logged and never fail a booking.
type NotifyService struct{}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

func (s *NotifyService) SendBookingConfirmation(userPhone, vehicleModel string, from, to time.Time, totalPrice int) {
	sms := fmt.Sprintf("RentWheels: %s booked %s - %s. Total %d.",
		vehicleModel, from.Format("02/01"), to.Format("02/01"), totalPrice)
	subject := fmt.Sprintf("Booking confirmed - %s", vehicleModel)
	body := fmt.Sprintf(
		"Customer: %s\nVehicle: %s\nFrom: %s\nTo: %s\nTotal: %d\n",
		userPhone, vehicleModel, from.Format("02 Jan 2006"), to.Format("02 Jan 2006"), totalPrice,
	)
	s.deliver(userPhone, subject, body, sms)
}

func (s *NotifyService) SendHiringConfirmation(userPhone, driverName string, from, to time.Time, totalPrice int) {
	sms := fmt.Sprintf("RentWheels: driver %s hired %s - %s. Total %d.",
		driverName, from.Format("02/01"), to.Format("02/01"), totalPrice)
	subject := fmt.Sprintf("Driver hiring confirmed - %s", driverName)
	body := fmt.Sprintf(
		"Customer: %s\nDriver: %s\nFrom: %s\nTo: %s\nTotal: %d\n",
		userPhone, driverName, from.Format("02 Jan 2006"), to.Format("02 Jan 2006"), totalPrice,
	)
	s.deliver(userPhone, subject, body, sms)
}

func (s *NotifyService) deliver(userPhone, subject, body, sms string) {
	if err := SendSMS(userPhone, sms); err != nil {
		log.Printf("confirmation SMS to %s failed: %v", userPhone, err)
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return
	}
	if err := SendEmailWithSendGrid(adminEmail, "Admin", subject, body); err != nil {
		log.Printf("confirmation email copy failed: %v", err)
	}
}

func SendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL not set")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "RentWheels"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, "")

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", toEmailAddress, err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Printf("email sent to %s (subject: %s), status %d", toEmailAddress, subject, response.StatusCode)
		return nil
	}
	return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
}

func SendSMS(toNumber, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")
	if accountSid == "" || authToken == "" || fromNumber == "" {
		return fmt.Errorf("twilio credentials not configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		log.Printf("destination number %q is not E.164, SMS may fail", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})
	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send to %s: %w", toNumber, err)
	}
	if resp != nil && resp.Sid != nil {
		log.Printf("SMS sent to %s, sid %s", toNumber, *resp.Sid)
	}
	return nil
}
