package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, name string) error {
	args := m.Called(ctx, toEmail, name)
	return args.Error(0)
}

func (m *EmailService) SendEmailVerification(ctx context.Context, toEmail, name, verificationToken string) error {
	args := m.Called(ctx, toEmail, name, verificationToken)
	return args.Error(0)
}

func (m *EmailService) SendPasswordResetEmail(ctx context.Context, toEmail, name, resetToken string) error {
	args := m.Called(ctx, toEmail, name, resetToken)
	return args.Error(0)
}

func (m *EmailService) SendJobApprovedEmail(ctx context.Context, toEmail, name, jobTitle, jobSlug string) error {
	args := m.Called(ctx, toEmail, name, jobTitle, jobSlug)
	return args.Error(0)
}

func (m *EmailService) SendJobDeclinedEmail(ctx context.Context, toEmail, name, jobTitle, reason string) error {
	args := m.Called(ctx, toEmail, name, jobTitle, reason)
	return args.Error(0)
}

func (m *EmailService) SendApplicationReceivedEmail(ctx context.Context, toEmail, name, jobTitle, applicantName string) error {
	args := m.Called(ctx, toEmail, name, jobTitle, applicantName)
	return args.Error(0)
}

func (m *EmailService) SendApplicationStatusEmail(ctx context.Context, toEmail, name, jobTitle, status string) error {
	args := m.Called(ctx, toEmail, name, jobTitle, status)
	return args.Error(0)
}
