package usecase

import (
	"bytes"
	"context"
	"html/template"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Welcome, {{.Name}}</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f7f9fc;">
  <table align="center" width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;">
    <tr><td style="padding:30px;background-color:#5271ff;color:#ffffff;border-radius:8px 8px 0 0;">
      <h1 style="margin:0;font-size:26px;">Welcome aboard!</h1>
    </td></tr>
    <tr><td style="padding:30px;color:#333333;font-size:16px;line-height:1.6;">
      <p>Hi <strong>{{.Name}}</strong>,</p>
      <p>Your account is ready. Create your first project by hand, or describe it in a sentence and let the planner draft the tasks for you.</p>
      {{if .AppURL}}<p><a href="{{.AppURL}}" style="color:#5271ff;">Open the planner</a></p>{{end}}
    </td></tr>
  </table>
</body>
</html>`))

// Notifier 가입 환영 메일과 도메인 이벤트를 보낸다. 모든 실패는 로그만 남긴다.
type Notifier struct {
	mail   repository.MailRepository
	events repository.EventPublisher
	appURL string
	logger *zap.Logger
}

// NewNotifier mail, events는 nil이어도 된다.
func NewNotifier(mail repository.MailRepository, events repository.EventPublisher, appURL string, logger *zap.Logger) *Notifier {
	return &Notifier{mail: mail, events: events, appURL: appURL, logger: logger}
}

// Welcome 가입 환영 메일
func (n *Notifier) Welcome(ctx context.Context, user *entity.User) {
	if n == nil || n.mail == nil {
		return
	}

	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, struct{ Name, AppURL string }{user.Name, n.appURL}); err != nil {
		n.logger.Error("Failed to render welcome mail", zap.Error(err))
		return
	}

	if err := n.mail.SendMail(ctx, user.Email, "Welcome to Project Planner", body.String()); err != nil {
		n.logger.Warn("Failed to send welcome mail",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}
}

// Emit 이벤트 발행
func (n *Notifier) Emit(ctx context.Context, event entity.Event) {
	if n == nil || n.events == nil {
		return
	}
	if err := n.events.Publish(ctx, event); err != nil {
		n.logger.Warn("Failed to publish event",
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}
