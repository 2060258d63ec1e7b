package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/models"
)

// MailService sends the transactional mail the storefront produces: order
// status changes, return/replacement updates and contact-form relays.
type MailService interface {
	SendOrderStatus(to string, order *models.Order) error
	SendReturnStatus(to string, request *models.ReturnRequest) error
	SendContact(message *models.ContactMessage) error
}

// SMTPMailService implements MailService over plain SMTP
type SMTPMailService struct {
	dialer *gomail.Dialer
	from   string
	inbox  string // where contact-form relays land
}

var mailServiceInstance MailService

var mailLog = componentLogger("mail")

// InitMailService initializes the SMTP mailer. It fails loudly when the
// mail configuration is incomplete instead of silently dropping mail later.
func InitMailService(cfg *config.Config) (MailService, error) {
	if err := cfg.ValidateSMTP(); err != nil {
		return nil, fmt.Errorf("mail service unavailable: %w", err)
	}

	mailServiceInstance = &SMTPMailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
		inbox:  cfg.ContactInbox,
	}
	return mailServiceInstance, nil
}

// GetMailService returns the initialized mail service instance
func GetMailService() MailService {
	return mailServiceInstance
}

// SetMailService sets the mail service instance (primarily for testing)
func SetMailService(service MailService) {
	mailServiceInstance = service
}

func (s *SMTPMailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// SendOrderStatus notifies a customer that their order changed status
func (s *SMTPMailService) SendOrderStatus(to string, order *models.Order) error {
	subject := fmt.Sprintf("Your order %s is %s", order.ID, order.Status)
	body := fmt.Sprintf(
		"Hi,\n\nYour order %s is now %s.\n\nAmount paid: %.2f\nAmount due on delivery: %.2f\n\nMobile Display",
		order.ID, order.Status, order.AmountPaid, order.AmountDue,
	)
	return s.send(to, subject, body)
}

// SendReturnStatus notifies a customer about their return/replacement request
func (s *SMTPMailService) SendReturnStatus(to string, request *models.ReturnRequest) error {
	subject := fmt.Sprintf("Your %s request for order %s is %s", request.Type, request.OrderID, request.Status)
	body := fmt.Sprintf(
		"Hi,\n\nYour %s request for %q (order %s) is now %s.\n\nMobile Display",
		request.Type, request.ProductTitle, request.OrderID, request.Status,
	)
	return s.send(to, subject, body)
}

// SendContact relays a contact-form submission to the shop inbox
func (s *SMTPMailService) SendContact(message *models.ContactMessage) error {
	if s.inbox == "" {
		return fmt.Errorf("CONTACT_INBOX is not configured")
	}
	subject := fmt.Sprintf("Contact form: %s", message.Name)
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\n\n%s",
		message.Name, message.Email, message.Phone, message.Message,
	)
	return s.send(s.inbox, subject, body)
}
