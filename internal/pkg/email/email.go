package email

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	defaultHost = "https://api.sendgrid.com"
	endpoint    = "/v3/mail/send"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendWelcomeEmail(ctx context.Context, toEmail, toName string) error
}

// Config holds the sender identity and the SendGrid credentials
type Config struct {
	APIKey    string
	FromName  string
	FromEmail string
	BaseURL   string // public URL of the application, linked from emails
	Host      string // SendGrid API host, defaults to the public API
}

// NewEmailService returns a SendGrid backed service, or a service that only
// logs messages when no API key is configured.
func NewEmailService(cfg Config, logger zerolog.Logger) EmailService {
	if cfg.APIKey == "" {
		logger.Warn().Msg("SendGrid API key not configured, emails will only be logged")
		return &LogEmailService{logger: logger}
	}
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	return &SendgridEmailService{
		config: cfg,
		from:   sgmail.NewEmail(cfg.FromName, cfg.FromEmail),
		logger: logger,
	}
}

// SendgridEmailService sends mail through the SendGrid v3 API
type SendgridEmailService struct {
	config Config
	from   *sgmail.Email
	logger zerolog.Logger
}

// SendWelcomeEmail greets a user the first time they sign up
func (s *SendgridEmailService) SendWelcomeEmail(ctx context.Context, toEmail, toName string) error {
	subject, text, body := welcomeContent(s.config.FromName, toName, s.config.BaseURL)
	return s.send(ctx, toEmail, toName, subject, text, body)
}

func (s *SendgridEmailService) prepare(toEmail, toName, subject, text, body string) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = subject
	p.AddTos(sgmail.NewEmail(toName, toEmail))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(
		sgmail.NewContent("text/plain", text),
		sgmail.NewContent("text/html", body),
	)
	return m
}

func (s *SendgridEmailService) send(ctx context.Context, toEmail, toName, subject, text, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := sendgrid.GetRequest(s.config.APIKey, endpoint, s.config.Host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(toEmail, toName, subject, text, body))

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sending email: sendgrid returned status %d: %s", res.StatusCode, res.Body)
	}

	s.logger.Info().Str("to", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}

// LogEmailService writes messages to the log instead of sending them. Used in
// development when no SendGrid key is set.
type LogEmailService struct {
	logger zerolog.Logger
}

// SendWelcomeEmail logs the welcome email
func (s *LogEmailService) SendWelcomeEmail(_ context.Context, toEmail, toName string) error {
	subject, text, _ := welcomeContent("CourseCraft", toName, "")
	s.logger.Info().
		Str("to", toEmail).
		Str("subject", subject).
		Str("body", text).
		Msg("Email not sent (no provider configured)")
	return nil
}

func welcomeContent(appName, toName, baseURL string) (subject, text, body string) {
	if appName == "" {
		appName = "CourseCraft"
	}
	name := strings.TrimSpace(toName)
	if name == "" {
		name = "there"
	}

	subject = fmt.Sprintf("Welcome to %s", appName)
	text = fmt.Sprintf("Hello %s,\n\nYour %s account is ready. You can start creating your first course right away.\n", name, appName)
	if baseURL != "" {
		text += "\n" + strings.TrimRight(baseURL, "/") + "/dashboard/teacher/courses\n"
	}

	body = fmt.Sprintf(`<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #333;">Welcome to %s!</h2>
		<p>Hello %s,</p>
		<p>Your account is ready. You can start creating your first course right away.</p>
	</div>
</body>
</html>`, html.EscapeString(appName), html.EscapeString(name))
	return subject, text, body
}
