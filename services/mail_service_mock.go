package services

import (
	"sync"

	"github.com/intellij1704/mobile-display-sub002/models"
)

// SentMail records one message captured by the mock mailer
type SentMail struct {
	To      string
	Kind    string // "order_status", "return_status" or "contact"
	OrderID string
}

// MockMailService is an in-memory MailService for tests
type MockMailService struct {
	mu   sync.Mutex
	Sent []SentMail
	Err  error // when set, every send fails with this error
}

// NewMockMailService creates a new mock mailer
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// SetAsMockForTesting sets this mock as the global mail service instance
func (m *MockMailService) SetAsMockForTesting() {
	SetMailService(m)
}

func (m *MockMailService) record(mail SentMail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, mail)
	return nil
}

// SendOrderStatus records an order-status notification
func (m *MockMailService) SendOrderStatus(to string, order *models.Order) error {
	return m.record(SentMail{To: to, Kind: "order_status", OrderID: order.ID})
}

// SendReturnStatus records a return-status notification
func (m *MockMailService) SendReturnStatus(to string, request *models.ReturnRequest) error {
	return m.record(SentMail{To: to, Kind: "return_status", OrderID: request.OrderID})
}

// SendContact records a contact-form relay
func (m *MockMailService) SendContact(message *models.ContactMessage) error {
	return m.record(SentMail{To: message.Email, Kind: "contact"})
}
