package smtp

import (
	"fmt"
	"net/smtp"

	"caremind-service/internal/app/contracts"
	"caremind-service/internal/app/drivers/mailer"
	"caremind-service/internal/pkg/exceptions"
)

type smtpService struct {
	Client *mailer.SMTPClient
}

func NewSmtpService(client *mailer.SMTPClient) contracts.SMTPService {
	return &smtpService{
		Client: client,
	}
}

func (svc *smtpService) SendEmail(to, subject, body string) error {
	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s\r\n", to, subject, body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}
