package ports

import (
	"context"
	"time"

	"github.com/seu-repo/solartech/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, error) // token, refresh, err
	DemoLogin(ctx context.Context, role domain.UserRole, name string) (string, *domain.User, error)
	Register(ctx context.Context, user *domain.User) error
	RefreshToken(ctx context.Context, token string) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

type ClientService interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id string, client *domain.Client) (*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}

type ProjectService interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, project *domain.Project) (*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

// PipelineService owns the project status field. Transitions are
// validation plus in-place mutation; consumers deriving stage counts must
// refresh themselves after a successful transition.
type PipelineService interface {
	RequestTransition(ctx context.Context, projectID string, newStatus domain.PipelineStatus) (*domain.Project, error)
	Board(ctx context.Context) ([]domain.BoardColumn, error)
}

type AnalyticsService interface {
	// Summarize aggregates production records over the trailing window.
	// An empty projectID covers the whole record set.
	Summarize(ctx context.Context, projectID string, windowDays int) (*domain.ProductionSummary, error)
}

type AlertService interface {
	Resolve(ctx context.Context, id string) (*domain.Alert, error)
	Filter(ctx context.Context, mode domain.AlertFilter) ([]domain.AlertView, error)
	Summary(ctx context.Context) (*domain.AlertSummary, error)
	EvaluateProduction(ctx context.Context, record *domain.ProductionRecord) (*domain.Alert, error)
}

type ProductionService interface {
	Record(ctx context.Context, record *domain.ProductionRecord) (*domain.ProductionRecord, error)
	History(ctx context.Context, projectID string) ([]domain.ProductionRecord, error)
}

type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	Invalidate(ctx context.Context) error
}

// EmailService handles outbound notifications.
type EmailService interface {
	Send(ctx context.Context, to, subject, body string) error
	SendHTML(ctx context.Context, to, subject, htmlBody string) error
	SendTemplate(ctx context.Context, to, templateName string, data map[string]interface{}) error
	SendWelcome(ctx context.Context, user *domain.User) error
	SendAlertNotification(ctx context.Context, to string, alert *domain.AlertView) error
}

// PaymentGateway abstracts the payment provider used for deposit billing.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount float64, currency string, customerID string) (*domain.PaymentIntent, error)
	ConfirmPayment(ctx context.Context, paymentID string) error
	RefundPayment(ctx context.Context, paymentID string) error
}

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
