package billing

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/adapter/queue"
	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/ports"
	"github.com/seu-repo/solartech/pkg/config"
)

// Service creates a deposit payment intent when a project is approved. It
// reacts to pipeline events asynchronously; billing failures are logged
// and never block the transition that triggered them.
type Service struct {
	gateway        ports.PaymentGateway
	mq             queue.MessageQueue
	depositPercent float64
	currency       string
	log            *zap.Logger
}

func NewService(gateway ports.PaymentGateway, mq queue.MessageQueue, cfg config.BillingConfig, log *zap.Logger) *Service {
	return &Service{
		gateway:        gateway,
		mq:             mq,
		depositPercent: cfg.DepositPercent,
		currency:       cfg.Currency,
		log:            log,
	}
}

// Start subscribes to pipeline transitions.
func (s *Service) Start() error {
	return s.mq.Subscribe(domain.SubjectProjectTransitioned, s.handleTransition)
}

func (s *Service) handleTransition(data []byte) error {
	var event domain.ProjectTransitionedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		s.log.Error("Failed to decode transition event", zap.Error(err))
		return err
	}

	if event.To != domain.StatusApproved {
		return nil
	}

	deposit := event.ProjectValue * s.depositPercent
	if deposit <= 0 {
		s.log.Warn("Skipping deposit billing for zero-value project",
			zap.String("project_id", event.ProjectID),
		)
		return nil
	}

	intent, err := s.gateway.CreatePaymentIntent(context.Background(), deposit, s.currency, "")
	if err != nil {
		s.log.Error("Failed to create deposit payment intent",
			zap.String("project_id", event.ProjectID),
			zap.Float64("deposit", deposit),
			zap.Error(err),
		)
		return err
	}

	s.log.Info("Deposit payment intent created",
		zap.String("project_id", event.ProjectID),
		zap.String("payment_intent_id", intent.ID),
		zap.Float64("deposit", intent.Amount),
	)
	return nil
}
