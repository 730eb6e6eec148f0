package handler

import "jobportal/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	Job          *JobHandler
	Application  *ApplicationHandler
	Profile      *ProfileHandler
	Company      *CompanyHandler
	Admin        *AdminHandler
	Notification *NotificationHandler
	Dashboard    *DashboardHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Job:          NewJobHandler(services.Job),
		Application:  NewApplicationHandler(services.Application),
		Profile:      NewProfileHandler(services.Profile),
		Company:      NewCompanyHandler(services.Company),
		Admin:        NewAdminHandler(services.Job, services.User),
		Notification: NewNotificationHandler(services.Notification),
		Dashboard:    NewDashboardHandler(services.Dashboard),
	}
}
