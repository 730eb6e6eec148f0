package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"jobportal/internal/domain"
	"jobportal/internal/repository"
	"jobportal/internal/service/email"
)

type Service interface {
	// Dispatch stores the event as a notification and fans it out to
	// email where the event type warrants one. Lifecycle code emits
	// events; it never talks to the notification store directly.
	Dispatch(ctx context.Context, event domain.Event) error

	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  email.Service
}

func NewService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc email.Service) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

func (s *service) Dispatch(ctx context.Context, event domain.Event) error {
	var raw []byte
	if event.Data != nil {
		raw, _ = json.Marshal(event.Data)
	}

	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  event.Recipient,
		Type:    event.Type,
		Title:   event.Title,
		Message: event.Message,
		Data:    event.Data,
		DataRaw: raw,
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}

	// Email failures never fail the originating operation.
	go s.sendEmail(event)

	return nil
}

func (s *service) sendEmail(event domain.Event) {
	ctx := context.Background()

	user, err := s.userRepo.GetByID(ctx, event.Recipient)
	if err != nil || user == nil {
		return
	}

	str := func(key string) string {
		v, _ := event.Data[key].(string)
		return v
	}

	switch event.Type {
	case domain.NotificationWelcome:
		err = s.emailSvc.SendWelcomeEmail(ctx, user.Email, user.Name)
	case domain.NotificationJobApproved:
		err = s.emailSvc.SendJobApprovedEmail(ctx, user.Email, user.Name, str("job_title"), str("job_slug"))
	case domain.NotificationJobDeclined:
		err = s.emailSvc.SendJobDeclinedEmail(ctx, user.Email, user.Name, str("job_title"), str("reason"))
	case domain.NotificationApplicationReceived:
		err = s.emailSvc.SendApplicationReceivedEmail(ctx, user.Email, user.Name, str("job_title"), str("applicant_name"))
	case domain.NotificationApplicationStatus:
		err = s.emailSvc.SendApplicationStatusEmail(ctx, user.Email, user.Name, str("job_title"), str("status"))
	default:
		return
	}
	if err != nil {
		log.Printf("Failed to send %s email to %s: %v", event.Type, user.Email, err)
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, perPage int) (domain.PaginatedResponse[domain.Notification], error) {
	page, perPage = domain.NormalizePagination(page, perPage)

	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, page, perPage)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	for i := range notifications {
		if len(notifications[i].DataRaw) > 0 {
			_ = json.Unmarshal(notifications[i].DataRaw, &notifications[i].Data)
		}
	}

	return domain.NewPaginatedResponse(notifications, page, perPage, total), nil
}

func (s *service) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	notif, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notif == nil {
		return domain.ErrNotFound
	}
	if notif.UserID != userID {
		return domain.ErrForbidden
	}
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}
