package services

//go:generate mockgen -source=notification.go -destination=notification_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/paperplane-redeem/internal/logger"
)

var (
	// ErrTemplate reports a template that is missing or failed to render.
	ErrTemplate = errors.New("template error")
	// ErrDelivery reports that the mail transport rejected the message.
	ErrDelivery = errors.New("delivery error")
)

// TemplateRenderer renders a named template to HTML.
type TemplateRenderer interface {
	Render(name string, data map[string]any) (string, error)
}

// MailSender dispatches one HTML message.
type MailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// NotificationService renders templated emails and hands them to the mail transport.
type NotificationService struct {
	renderer TemplateRenderer
	sender   MailSender
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(renderer TemplateRenderer, sender MailSender) *NotificationService {
	return &NotificationService{
		renderer: renderer,
		sender:   sender,
	}
}

// Send renders templateName with data and mails the result to recipient.
// Delivery is attempted once.
func (s *NotificationService) Send(ctx context.Context, recipient, subject, templateName string, data map[string]any) error {
	html, err := s.renderer.Render(templateName, data)
	if err != nil {
		logger.Log.Errorw("failed to render email template", "template", templateName, "error", err)
		return fmt.Errorf("%w: %w", ErrTemplate, err)
	}

	if err := s.sender.Send(ctx, recipient, subject, html); err != nil {
		logger.Log.Errorw("failed to send email", "to", recipient, "template", templateName, "error", err)
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	logger.Log.Infow("email sent", "to", recipient, "template", templateName)
	return nil
}
