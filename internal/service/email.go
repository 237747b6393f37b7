package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"learnhub-backend/internal/domain"
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

func (s *emailService) send(toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendPromotionUpdate(ctx context.Context, email, name string, status domain.PromotionStatus, requestedRole domain.Role, reason string) error {
	subject := fmt.Sprintf("Promotion request update: %s", status)
	body := fmt.Sprintf("Hello %s,\n\nYour promotion request towards the %s role is now: %s.", name, requestedRole, status)
	if reason != "" {
		body += fmt.Sprintf("\n\nNote: %s", reason)
	}
	body += "\n\nBest regards,\nThe LearnHub Team"
	return s.send(email, name, subject, body)
}

func (s *emailService) SendInterviewNotice(ctx context.Context, email, name string, scheduledAt time.Time, mode domain.InterviewMode, where string) error {
	subject := "Promotion interview scheduled"
	body := fmt.Sprintf("Hello %s,\n\nAn interview for your promotion request has been scheduled on %s (%s).", name, scheduledAt.Format(time.RFC1123), mode)
	if where != "" {
		body += fmt.Sprintf("\n\nWhere: %s", where)
	}
	body += "\n\nBest regards,\nThe LearnHub Team"
	return s.send(email, name, subject, body)
}

func (s *emailService) SendDemotionNotice(ctx context.Context, email, name string, newRole domain.Role, reason string) error {
	subject := "Role change requires your review"
	body := fmt.Sprintf("Hello %s,\n\nA change of your role to %s has been proposed.\n\nReason: %s\n\nPlease log in to accept or dispute it.\n\nBest regards,\nThe LearnHub Team", name, newRole, reason)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendDemotionOutcome(ctx context.Context, email, name string, status domain.RoleChangeStatus, newRole domain.Role) error {
	subject := fmt.Sprintf("Role change update: %s", status)
	var body string
	if status == domain.RoleChangeStatusFinalized {
		body = fmt.Sprintf("Hello %s,\n\nYour role has been changed to %s.", name, newRole)
	} else {
		body = fmt.Sprintf("Hello %s,\n\nThe proposed change of your role to %s was withdrawn.", name, newRole)
	}
	body += "\n\nBest regards,\nThe LearnHub Team"
	return s.send(email, name, subject, body)
}
