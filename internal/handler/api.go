package handler

import (
	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	cfg          config.AppConfig
	posts        *service.PostService
	projects     *service.ProjectService
	experiences  *service.ExperienceService
	achievements *service.AchievementService
	quotes       *service.QuoteService
	settings     *service.SettingService
	chat         *service.ChatService
	media        *service.MediaService
	visitors     *service.VisitorService
}

// NewAPI constructs a handler set with shared services. The media backend
// and cache are injected so tests can swap them.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig, uploader service.MediaUploader, cache service.Cache) *API {
	settings := service.NewSettingService(gdb)
	experiences := service.NewExperienceService(gdb)
	projects := service.NewProjectService(gdb)

	return &API{
		db:           gdb,
		cfg:          cfg,
		posts:        service.NewPostService(gdb),
		projects:     projects,
		experiences:  experiences,
		achievements: service.NewAchievementService(gdb),
		quotes:       service.NewQuoteService(gdb),
		settings:     settings,
		chat:         service.NewChatService(settings, experiences, projects, cfg.OpenAIModel, cfg.OpenAIAPIKey),
		media:        service.NewMediaService(uploader),
		visitors:     service.NewVisitorService(cache, cfg.UmamiWebsiteID, cfg.UmamiAPIKey),
	}
}

// Chat exposes the chat service for endpoint overrides in tests.
func (a *API) Chat() *service.ChatService {
	return a.chat
}

// Visitors exposes the visitor service for endpoint overrides in tests.
func (a *API) Visitors() *service.VisitorService {
	return a.visitors
}
