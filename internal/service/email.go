package service

import (
	"context"
	"fmt"
	"strings"

	"carrental-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendOvertimeReport mails a plain-text summary of rentals that are past
// their agreed end date.
func (s *emailService) SendOvertimeReport(ctx context.Context, toEmail string, rentals []domain.Rental) error {
	var b strings.Builder
	fmt.Fprintf(&b, "The following %d rental(s) are past their end date:\n\n", len(rentals))
	for _, rt := range rentals {
		fmt.Fprintf(&b, "- rental %d, car %d, customer %d, due back %s\n",
			rt.ID, rt.CarID, rt.CustomerID, rt.EndDate.Format("2006-01-02 15:04"))
	}
	b.WriteString("\nPlease follow up with the customers.\n")

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toEmail)
	subject := fmt.Sprintf("Overtime rentals report (%d open)", len(rentals))
	message := mail.NewSingleEmail(from, subject, to, b.String(), "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send overtime report: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
