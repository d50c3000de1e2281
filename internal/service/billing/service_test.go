package billing

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/mocks"
	"github.com/seu-repo/solartech/pkg/config"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

type fakeGateway struct {
	amounts []float64
	err     error
}

func (g *fakeGateway) CreatePaymentIntent(ctx context.Context, amount float64, currency string, customerID string) (*domain.PaymentIntent, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.amounts = append(g.amounts, amount)
	return &domain.PaymentIntent{ID: "pi_test", Amount: amount, Currency: currency, Status: "requires_payment_method"}, nil
}

func (g *fakeGateway) ConfirmPayment(ctx context.Context, paymentID string) error { return nil }

func (g *fakeGateway) RefundPayment(ctx context.Context, paymentID string) error { return nil }

func publishTransition(t *testing.T, mq *mocks.MockMessageQueue, event domain.ProjectTransitionedEvent) {
	t.Helper()
	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	if err := mq.Publish(domain.SubjectProjectTransitioned, data); err != nil {
		t.Fatalf("publish event: %v", err)
	}
}

func TestBilling_ChargesDepositOnApproval(t *testing.T) {
	// Arrange
	gateway := &fakeGateway{}
	mq := mocks.NewMockMessageQueue()
	service := NewService(gateway, mq, config.BillingConfig{DepositPercent: 0.30, Currency: "brl"}, newTestLogger())
	if err := service.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Act
	publishTransition(t, mq, domain.ProjectTransitionedEvent{
		ProjectID:    "p1",
		ProjectValue: 50000,
		From:         domain.StatusNegotiation,
		To:           domain.StatusApproved,
		At:           time.Now(),
	})

	// Assert
	if len(gateway.amounts) != 1 {
		t.Fatalf("expected 1 payment intent, got %d", len(gateway.amounts))
	}
	if gateway.amounts[0] != 15000 {
		t.Errorf("expected deposit 15000, got %v", gateway.amounts[0])
	}
}

func TestBilling_IgnoresOtherTransitions(t *testing.T) {
	gateway := &fakeGateway{}
	mq := mocks.NewMockMessageQueue()
	service := NewService(gateway, mq, config.BillingConfig{DepositPercent: 0.30, Currency: "brl"}, newTestLogger())
	if err := service.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	publishTransition(t, mq, domain.ProjectTransitionedEvent{
		ProjectID:    "p1",
		ProjectValue: 50000,
		From:         domain.StatusLead,
		To:           domain.StatusProposal,
	})

	if len(gateway.amounts) != 0 {
		t.Errorf("expected no payment intent, got %d", len(gateway.amounts))
	}
}

func TestBilling_SkipsZeroValueProjects(t *testing.T) {
	gateway := &fakeGateway{}
	mq := mocks.NewMockMessageQueue()
	service := NewService(gateway, mq, config.BillingConfig{DepositPercent: 0.30, Currency: "brl"}, newTestLogger())
	if err := service.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	publishTransition(t, mq, domain.ProjectTransitionedEvent{
		ProjectID: "p1",
		To:        domain.StatusApproved,
	})

	if len(gateway.amounts) != 0 {
		t.Errorf("expected no payment intent for zero value, got %d", len(gateway.amounts))
	}
}
