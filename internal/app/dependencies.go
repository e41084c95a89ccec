package app

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/threestrands/threestrands/internal/auth"
	"github.com/threestrands/threestrands/internal/config"
	"github.com/threestrands/threestrands/internal/utils"
	"github.com/threestrands/threestrands/pkg/calendar"
	"github.com/threestrands/threestrands/pkg/catalog"
	"github.com/threestrands/threestrands/pkg/contact"
	"github.com/threestrands/threestrands/pkg/event"
	"github.com/threestrands/threestrands/pkg/newsletter"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Clock utils.Clock

	AdminSessions *auth.Sessions
	AuthHandler   *auth.Handler

	EventRepo       event.Repository
	EventService    *event.Service
	EventHandler    *event.Handler
	CalendarHandler *calendar.Handler

	CatalogClient  catalog.Client
	CatalogCache   *catalog.Cache
	CatalogService *catalog.Service
	CatalogHandler *catalog.Handler

	NewsletterClient  newsletter.Client
	NewsletterHandler *newsletter.Handler

	ContactMailer  contact.Mailer
	ContactHandler *contact.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.AdminSessions = auth.NewSessions(
		cfg.Admin.Username,
		cfg.Admin.Password,
		cfg.Admin.TokenSecret,
		time.Duration(cfg.Admin.SessionHours)*time.Hour,
		deps.Clock,
	)
	deps.AuthHandler = auth.NewHandler(deps.AdminSessions)

	deps.EventRepo = event.NewFileRepository(cfg.Events.FilePath)
	deps.EventService = event.NewService(deps.EventRepo)
	deps.EventHandler = event.NewHandler(deps.EventService)
	deps.CalendarHandler = calendar.NewHandler(deps.EventService, deps.Clock)

	cacheTTL, err := time.ParseDuration(cfg.Square.CacheTTL)
	if err != nil {
		log.Warnf("invalid square.cachettl %q, using 5m", cfg.Square.CacheTTL)
		cacheTTL = 5 * time.Minute
	}
	deps.CatalogClient = catalog.NewClient(cfg.Square.AccessToken, cfg.Square.Environment, cfg.Square.BaseURL)
	deps.CatalogCache = catalog.NewCache(cacheTTL, deps.Clock)
	deps.CatalogService = catalog.NewService(deps.CatalogClient, deps.CatalogCache, deps.Clock)
	deps.CatalogHandler = catalog.NewHandler(deps.CatalogService)

	deps.NewsletterClient = newsletter.NewMailchimpClient(
		cfg.Newsletter.APIKey,
		cfg.Newsletter.ServerPrefix,
		cfg.Newsletter.ListID,
		cfg.Newsletter.BaseURL,
	)
	deps.NewsletterHandler = newsletter.NewHandler(deps.NewsletterClient)

	deps.ContactMailer = contact.NewMailer(contact.MailerConfig{
		Provider:    cfg.Contact.Provider,
		FromAddress: cfg.Contact.FromAddress,
		FromName:    cfg.Contact.FromName,
		SES: contact.SESConfig{
			Region:          cfg.Contact.SES.Region,
			AccessKeyID:     cfg.Contact.SES.AccessKeyID,
			SecretAccessKey: cfg.Contact.SES.SecretAccessKey,
		},
	})
	deps.ContactHandler = contact.NewHandler(
		deps.ContactMailer,
		cfg.Contact.ToAddress,
		time.Duration(cfg.Contact.TimeoutSecs)*time.Second,
	)

	return deps
}
