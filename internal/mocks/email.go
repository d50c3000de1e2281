package mocks

import (
	"context"
	"sync"

	"github.com/seu-repo/solartech/internal/domain"
)

// SentEmail is one captured outbound message.
type SentEmail struct {
	To       string
	Subject  string
	Body     string
	Template string
	Data     map[string]interface{}
}

// MockEmailService captures sent mail instead of delivering it.
type MockEmailService struct {
	mu       sync.Mutex
	Sent     []SentEmail
	SendFunc func(ctx context.Context, to, subject, body string) error
}

func (m *MockEmailService) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
	m.record(SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *MockEmailService) SendHTML(ctx context.Context, to, subject, htmlBody string) error {
	m.record(SentEmail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *MockEmailService) SendTemplate(ctx context.Context, to, templateName string, data map[string]interface{}) error {
	m.record(SentEmail{To: to, Template: templateName, Data: data})
	return nil
}

func (m *MockEmailService) SendWelcome(ctx context.Context, user *domain.User) error {
	m.record(SentEmail{To: user.Email, Template: "welcome"})
	return nil
}

func (m *MockEmailService) SendAlertNotification(ctx context.Context, to string, alert *domain.AlertView) error {
	m.record(SentEmail{To: to, Subject: alert.ProjectTitle, Body: alert.Message, Template: "alert_notification"})
	return nil
}

func (m *MockEmailService) record(e SentEmail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, e)
}

// SentCount returns how many messages were captured.
func (m *MockEmailService) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
