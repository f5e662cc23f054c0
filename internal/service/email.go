package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"libraria-backend/internal/domain"
	"libraria-backend/internal/logger"
	"libraria-backend/internal/utils"
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

func (s *emailService) SendOverdueDigest(ctx context.Context, toEmail string, loans []domain.BorrowRecord, totalFeesCents int32) error {
	subject := fmt.Sprintf("Overdue loans digest: %d outstanding", len(loans))

	var body strings.Builder
	body.WriteString("The following loans are past their due date:\n\n")
	for _, loan := range loans {
		fmt.Fprintf(&body, "- Patron %s: %q by %s, due %s\n",
			loan.PatronID, loan.Title, loan.Author, loan.DueDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&body, "\nTotal accrued late fees: %s\n", utils.FormatCents(totalFeesCents))

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, body.String(), "")

	client := sendgrid.NewSendClient(s.apiKey)
	logger.ExternalServiceCall("sendgrid", "SendOverdueDigest", "to", toEmail, "loans", len(loans))
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "SendOverdueDigest", err)
	if err != nil {
		return fmt.Errorf("failed to send overdue digest: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
