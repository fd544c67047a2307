package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/glowpoint/salon-backend-go/internal/config"
	"github.com/glowpoint/salon-backend-go/internal/domain/bonus"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendDiscrepancyAlert(ctx context.Context, to string, report *bonus.DiscrepancyReport) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type discrepancyEntryData struct {
	EmployeeName      string
	RegisteredRevenue string
	ActualRevenue     string
	RevenueDiff       string
	RegisteredBonus   string
	ExpectedBonus     string
	BonusDiff         string
}

type discrepancyEmailData struct {
	BranchName      string
	Period          string
	WeekRange       string
	RegisteredTotal string
	ExpectedTotal   string
	Entries         []discrepancyEntryData
	CheckedAt       string
}

// SendDiscrepancyAlert mails a bonus discrepancy report to head office.
func (s *emailServiceImpl) SendDiscrepancyAlert(_ context.Context, to string, report *bonus.DiscrepancyReport) error {
	data := discrepancyEmailData{
		BranchName:      report.BranchName,
		Period:          fmt.Sprintf("%04d-%02d week %d", report.Year, report.Month, report.WeekNumber),
		WeekRange:       fmt.Sprintf("%s to %s", report.WeekStart.Format("2006-01-02"), report.WeekEnd.Format("2006-01-02")),
		RegisteredTotal: report.RegisteredTotal.StringFixed(2),
		ExpectedTotal:   report.ExpectedTotal.StringFixed(2),
		CheckedAt:       report.CheckedAt.Format(time.RFC3339),
	}
	for _, e := range report.Discrepancies {
		data.Entries = append(data.Entries, discrepancyEntryData{
			EmployeeName:      e.EmployeeName,
			RegisteredRevenue: e.RegisteredRevenue.StringFixed(2),
			ActualRevenue:     e.ActualRevenue.StringFixed(2),
			RevenueDiff:       e.RevenueDiff.StringFixed(2),
			RegisteredBonus:   e.RegisteredBonus.StringFixed(2),
			ExpectedBonus:     e.ExpectedBonus.StringFixed(2),
			BonusDiff:         e.BonusDiff.StringFixed(2),
		})
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "bonus_discrepancy.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Bonus discrepancy: %s, %s", report.BranchName, data.Period)
	return s.sendHTML(to, subject, body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
