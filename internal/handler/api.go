package handler

import (
	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/cv"
	"github.com/devfolio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	projects    *service.ProjectService
	skills      *service.SkillService
	experiences *service.ExperienceService
	educations  *service.EducationService
	cvProjects  *service.CVProjectService
	profiles    *service.ProfileService
	analytics   *service.AnalyticsService
	contact     *service.ContactService
	composer    *cv.Composer
	uploadDir   string
	uploadURL   string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig) *API {
	return &API{
		db:          gdb,
		projects:    service.NewProjectService(gdb),
		skills:      service.NewSkillService(gdb),
		experiences: service.NewExperienceService(gdb),
		educations:  service.NewEducationService(gdb),
		cvProjects:  service.NewCVProjectService(gdb),
		profiles:    service.NewProfileService(gdb),
		analytics:   service.NewAnalyticsService(gdb),
		contact:     service.NewContactService(cfg.ResendAPIKey, cfg.ContactFrom, cfg.ContactTo),
		composer:    cv.NewComposer(),
		uploadDir:   cfg.UploadDir,
		uploadURL:   cfg.UploadURLPath,
	}
}

// DB exposes the underlying gorm instance for bootstrap paths.
func (a *API) DB() *gorm.DB {
	return a.db
}
