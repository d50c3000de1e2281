package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
	"github.com/seu-repo/solartech/pkg/config"
)

// Provider defines the interface for email providers
type Provider interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}

// Service implements ports.EmailService on top of a pluggable provider.
type Service struct {
	provider  Provider
	templates map[string]*template.Template
	log       *zap.Logger
}

func NewService(cfg config.EmailConfig, log *zap.Logger) (ports.EmailService, error) {
	s := &Service{
		templates: make(map[string]*template.Template),
		log:       log,
	}

	switch cfg.Provider {
	case "sendgrid":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("SendGrid API key is required")
		}
		s.provider = NewSendGridProvider(cfg.APIKey, cfg.From, cfg.FromName)
	case "smtp":
		s.provider = NewSMTPProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.From, cfg.FromName)
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.Provider)
	}

	s.loadTemplates()

	return s, nil
}

// NewServiceWithProvider wires an explicit provider; used by tests.
func NewServiceWithProvider(provider Provider, log *zap.Logger) ports.EmailService {
	s := &Service{
		provider:  provider,
		templates: make(map[string]*template.Template),
		log:       log,
	}
	s.loadTemplates()
	return s
}

func (s *Service) loadTemplates() {
	s.templates["welcome"] = template.Must(template.New("welcome").Parse(welcomeTemplate))
	s.templates["alert_notification"] = template.Must(template.New("alert_notification").Parse(alertNotificationTemplate))
	s.templates["project_approved"] = template.Must(template.New("project_approved").Parse(projectApprovedTemplate))
}

func (s *Service) Send(ctx context.Context, to, subject, body string) error {
	s.log.Info("Sending email",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	if err := s.provider.Send(ctx, to, subject, body, false); err != nil {
		s.log.Error("Failed to send email", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *Service) SendHTML(ctx context.Context, to, subject, htmlBody string) error {
	s.log.Info("Sending HTML email",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	if err := s.provider.Send(ctx, to, subject, htmlBody, true); err != nil {
		s.log.Error("Failed to send HTML email", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("failed to send HTML email: %w", err)
	}
	return nil
}

func (s *Service) SendTemplate(ctx context.Context, to, templateName string, data map[string]interface{}) error {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return fmt.Errorf("template not found: %s", templateName)
	}

	if data == nil {
		data = make(map[string]interface{})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject, ok := data["Subject"].(string)
	if !ok {
		subject = "Notification from SolarTech"
	}

	return s.SendHTML(ctx, to, subject, buf.String())
}

func (s *Service) SendWelcome(ctx context.Context, user *domain.User) error {
	data := map[string]interface{}{
		"Subject":  "Welcome to SolarTech!",
		"UserName": user.Name,
		"Email":    user.Email,
	}
	return s.SendTemplate(ctx, user.Email, "welcome", data)
}

func (s *Service) SendAlertNotification(ctx context.Context, to string, alert *domain.AlertView) error {
	data := map[string]interface{}{
		"Subject":      fmt.Sprintf("[%s] Alert on %s", alert.Severity, alert.ProjectTitle),
		"ProjectTitle": alert.ProjectTitle,
		"ClientName":   alert.ClientName,
		"AlertType":    string(alert.Type),
		"Severity":     string(alert.Severity),
		"Message":      alert.Message,
		"CreatedAt":    alert.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	return s.SendTemplate(ctx, to, "alert_notification", data)
}
