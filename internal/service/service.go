package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"jobportal/internal/config"
	"jobportal/internal/repository"
	"jobportal/internal/service/application"
	"jobportal/internal/service/auth"
	"jobportal/internal/service/company"
	"jobportal/internal/service/dashboard"
	"jobportal/internal/service/email"
	"jobportal/internal/service/job"
	"jobportal/internal/service/notification"
	"jobportal/internal/service/profile"
	"jobportal/internal/service/storage"
	"jobportal/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Profile      profile.Service
	Company      company.Service
	Job          job.Service
	Application  application.Service
	Notification notification.Service
	Dashboard    dashboard.Service
	Email        email.Service
	Storage      storage.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	storageService := storage.NewService(minioClient, cfg)
	notificationService := notification.NewService(repos.Notification, repos.User, emailService)

	authService := auth.NewService(repos.User, repos.Company, repos.Session, emailService, notificationService, cfg)
	profileService := profile.NewService(repos.User, storageService)
	companyService := company.NewService(repos.Company, storageService)
	jobService := job.NewService(repos.Job, repos.Company, repos.User, repos.Application, notificationService, cfg)
	applicationService := application.NewService(repos.Application, repos.Job, repos.Company, repos.User, notificationService, storageService)
	dashboardService := dashboard.NewService(repos.User, repos.Company, repos.Job, repos.Application, repos.Notification, redisClient)
	userService := user.NewService(repos.User)

	return &Services{
		Auth:         authService,
		User:         userService,
		Profile:      profileService,
		Company:      companyService,
		Job:          jobService,
		Application:  applicationService,
		Notification: notificationService,
		Dashboard:    dashboardService,
		Email:        emailService,
		Storage:      storageService,
	}
}
