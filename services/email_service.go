package services

import (
	"crypto/tls"

	"ems-http-service/config"

	"gopkg.in/gomail.v2"
)

// InterfaceEmailService 定义邮件服务接口
type InterfaceEmailService interface {
	Enabled() bool
	SendAlertMail(to, subject, body string) error
}

// EmailService 通过SMTP发送提醒邮件
type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService 创建邮件服务；未配置MAIL_HOST时返回禁用状态的服务
func NewEmailService(cfg *config.Config) *EmailService {
	if cfg.MailHost == "" {
		return &EmailService{}
	}

	d := gomail.NewDialer(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return &EmailService{
		dialer: d,
		from:   cfg.MailFrom,
	}
}

// Enabled 返回邮件服务是否可用
func (s *EmailService) Enabled() bool {
	return s.dialer != nil
}

// SendAlertMail 发送一封提醒邮件
func (s *EmailService) SendAlertMail(to, subject, body string) error {
	if s.dialer == nil {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
