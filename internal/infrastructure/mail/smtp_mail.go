package mail

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPConfig SMTP 설정 구조체
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	SenderName string
}

// dialer gomail.Dialer에서 사용하는 부분만
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPClient 메일마다 연결하고 보낸 뒤 끊는다.
type SMTPClient struct {
	config SMTPConfig
	dialer dialer
	logger *zap.Logger
}

// NewSMTPClient SMTP 클라이언트 생성
func NewSMTPClient(cfg SMTPConfig, logger *zap.Logger) *SMTPClient {
	return &SMTPClient{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger,
	}
}

// SendMail HTML 메일 발송
func (m *SMTPClient) SendMail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.config.From, m.config.SenderName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("이메일 발송 실패",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return fmt.Errorf("이메일 발송 실패: %w", err)
	}

	m.logger.Info("이메일 발송 성공",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
