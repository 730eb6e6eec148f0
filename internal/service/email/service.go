package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/resend/resend-go/v3"

	"jobportal/internal/config"
	"jobportal/internal/pkg/i18n"
)

type Service interface {
	SendWelcomeEmail(ctx context.Context, toEmail, name string) error
	SendEmailVerification(ctx context.Context, toEmail, name, verificationToken string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, name, resetToken string) error
	SendJobApprovedEmail(ctx context.Context, toEmail, name, jobTitle, jobSlug string) error
	SendJobDeclinedEmail(ctx context.Context, toEmail, name, jobTitle, reason string) error
	SendApplicationReceivedEmail(ctx context.Context, toEmail, name, jobTitle, applicantName string) error
	SendApplicationStatusEmail(ctx context.Context, toEmail, name, jobTitle, status string) error
}

type service struct {
	client       *resend.Client
	config       *config.Config
	templatePath string
	locale       string
}

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	templatePath := "internal/service/templates/email"
	return &service{
		client:       client,
		config:       cfg,
		templatePath: templatePath,
		locale:       cfg.DefaultLocale,
	}
}

func (s *service) t(key string) string {
	return i18n.T(s.locale, key)
}

func (s *service) sendEmail(toEmail, subject, templateName string, data interface{}) error {
	tmpl, err := template.ParseFiles(
		filepath.Join(s.templatePath, "layout.html"),
		filepath.Join(s.templatePath, templateName),
	)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Job Portal <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: s.t("email.welcome.title"),
		Name:  name,
		Link:  fmt.Sprintf("https://%s/login", s.config.Domain),
	}
	return s.sendEmail(toEmail, s.t("email.welcome.subject"), "welcome.html", data)
}

func (s *service) SendEmailVerification(ctx context.Context, toEmail, name, verificationToken string) error {
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: s.t("email.verify.title"),
		Name:  name,
		Link:  fmt.Sprintf("https://%s/verify-email?token=%s", s.config.Domain, verificationToken),
	}
	return s.sendEmail(toEmail, s.t("email.verify.subject"), "verification.html", data)
}

func (s *service) SendPasswordResetEmail(ctx context.Context, toEmail, name, resetToken string) error {
	data := struct {
		Title string
		Name  string
		Link  string
	}{
		Title: s.t("email.reset.title"),
		Name:  name,
		Link:  fmt.Sprintf("https://%s/reset-password?token=%s", s.config.Domain, resetToken),
	}
	return s.sendEmail(toEmail, s.t("email.reset.subject"), "reset_password.html", data)
}

func (s *service) SendJobApprovedEmail(ctx context.Context, toEmail, name, jobTitle, jobSlug string) error {
	data := struct {
		Title    string
		Name     string
		JobTitle string
		Link     string
	}{
		Title:    s.t("email.job_approved.title"),
		Name:     name,
		JobTitle: jobTitle,
		Link:     fmt.Sprintf("https://%s/jobs/%s", s.config.Domain, jobSlug),
	}
	return s.sendEmail(toEmail, fmt.Sprintf(s.t("email.job_approved.subject"), jobTitle), "job_approved.html", data)
}

func (s *service) SendJobDeclinedEmail(ctx context.Context, toEmail, name, jobTitle, reason string) error {
	data := struct {
		Title    string
		Name     string
		JobTitle string
		Reason   string
	}{
		Title:    s.t("email.job_declined.title"),
		Name:     name,
		JobTitle: jobTitle,
		Reason:   reason,
	}
	return s.sendEmail(toEmail, fmt.Sprintf(s.t("email.job_declined.subject"), jobTitle), "job_declined.html", data)
}

func (s *service) SendApplicationReceivedEmail(ctx context.Context, toEmail, name, jobTitle, applicantName string) error {
	data := struct {
		Title         string
		Name          string
		JobTitle      string
		ApplicantName string
		Link          string
	}{
		Title:         s.t("email.application_received.title"),
		Name:          name,
		JobTitle:      jobTitle,
		ApplicantName: applicantName,
		Link:          fmt.Sprintf("https://%s/employer/applications", s.config.Domain),
	}
	return s.sendEmail(toEmail, fmt.Sprintf(s.t("email.application_received.subject"), jobTitle), "application_received.html", data)
}

func (s *service) SendApplicationStatusEmail(ctx context.Context, toEmail, name, jobTitle, status string) error {
	color := "#10b981"
	if status == "rejected" {
		color = "#ef4444"
	}

	data := struct {
		Title    string
		Name     string
		JobTitle string
		Status   string
		Color    string
	}{
		Title:    s.t("email.application_status.title"),
		Name:     name,
		JobTitle: jobTitle,
		Status:   status,
		Color:    color,
	}
	return s.sendEmail(toEmail, fmt.Sprintf(s.t("email.application_status.subject"), jobTitle), "application_status.html", data)
}
