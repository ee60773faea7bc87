package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Developer-Sahil/portfolio-system/config"
	httpapi "github.com/Developer-Sahil/portfolio-system/internal/api/http"
	"github.com/Developer-Sahil/portfolio-system/internal/api/http/routes"
	"github.com/Developer-Sahil/portfolio-system/internal/auth"
	authservice "github.com/Developer-Sahil/portfolio-system/internal/auth/service"
	contenthttp "github.com/Developer-Sahil/portfolio-system/internal/content/http"
	"github.com/Developer-Sahil/portfolio-system/internal/content/repository"
	contentservice "github.com/Developer-Sahil/portfolio-system/internal/content/service"
	"github.com/Developer-Sahil/portfolio-system/internal/explain"
	inboxrepo "github.com/Developer-Sahil/portfolio-system/internal/inbox/repository"
	inboxservice "github.com/Developer-Sahil/portfolio-system/internal/inbox/service"
	"github.com/Developer-Sahil/portfolio-system/internal/ratelimit"
)

const ServiceName = "portfolio-api"

// App holds every long-lived dependency of the API process.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Store   repository.Store
	Content *contentservice.Services
	Inbox   *inboxservice.InboxService
	Gate    *authservice.Gate
	Explain *explain.Gateway

	messageLimiter ratelimit.Limiter
	explainLimiter ratelimit.Limiter
	redis          httpapi.Pinger
	closers        []func()
}

// NewApp connects the configured backends and assembles the services.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}
	if err := a.init(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) init(ctx context.Context) error {
	cfg := a.Config

	var inboxRepository inboxrepo.Repository
	switch cfg.Database.Backend {
	case config.BackendPostgres:
		opts := DBOptions{DSN: cfg.Database.DSN, MaxConns: cfg.Database.MaxConns}
		pool, err := OpenDB(ctx, opts)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, pool.Close)
		a.Store = repository.NewPostgres(pool)

		sqlDB, err := OpenSQL(ctx, opts)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() { _ = sqlDB.Close() })
		inboxRepository = inboxrepo.NewMessageRepository(sqlDB)
	default:
		a.Logger.Warn("using in-memory store; content is lost on restart")
		a.Store = repository.NewMemory()
		inboxRepository = inboxrepo.NewMemory()
	}

	a.Content = contentservice.New(a.Store)
	a.Inbox = inboxservice.NewInboxService(inboxRepository, inboxservice.NewNotifier(inboxservice.SMTPConfig{
		Server:   cfg.Mail.Server,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		To:       cfg.Mail.To,
	}))

	if err := a.initLimiters(ctx); err != nil {
		return err
	}

	gateOpts := authservice.Options{
		AdminEmail:   cfg.Auth.AdminEmail,
		PasswordHash: cfg.Auth.AdminPasswordHash,
		Secret:       cfg.Auth.JWTSecret,
		TTL:          cfg.Auth.TokenTTL,
	}
	if cfg.Auth.FirebaseCredentialsPath != "" {
		client, err := auth.InitializeFirebase(ctx, cfg.Auth.FirebaseCredentialsPath)
		if err != nil {
			return err
		}
		gateOpts.External = authservice.NewFirebaseVerifier(client, cfg.Auth.AdminEmail)
	}
	a.Gate = authservice.NewGate(gateOpts)

	provider, err := explain.NewProvider(ctx, explain.ProviderConfig{
		Name:    cfg.LLM.Provider,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		BaseURL: cfg.LLM.BaseURL,
	})
	if err != nil {
		return err
	}
	if cfg.LLM.APIKey == "" {
		a.Logger.Warn("no LLM API key configured; explanations will use the fallback message")
	}
	a.Explain = explain.NewGateway(a.Content.Projects, provider, cfg.LLM.Timeout)

	return nil
}

func (a *App) initLimiters(ctx context.Context) error {
	rl := a.Config.RateLimit
	if a.Config.Redis.Addr == "" {
		a.messageLimiter = ratelimit.NewLocal(rl.MessagesPerMinute, time.Minute)
		a.explainLimiter = ratelimit.NewLocal(rl.ExplainPerMinute, time.Minute)
		return nil
	}

	client, err := OpenRedis(ctx, RedisOptions{
		Addr:     a.Config.Redis.Addr,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	a.closers = append(a.closers, func() { _ = client.Close() })
	a.redis = redisPinger{client: client}
	a.messageLimiter = ratelimit.NewRedis(client, "messages", rl.MessagesPerMinute, time.Minute)
	a.explainLimiter = ratelimit.NewRedis(client, "explain", rl.ExplainPerMinute, time.Minute)
	return nil
}

// Router builds the HTTP handler tree.
func (a *App) Router() *gin.Engine {
	return BuildRouter(RouterDeps{
		ServiceName: ServiceName,
		Version:     a.Config.App.Version,
		CORSOrigins: a.Config.App.CORSOrigins,
		Logger:      a.Logger,
		Store:       a.Store,
		Redis:       a.redis,
		V1: routes.V1Deps{
			Gate:    a.Gate,
			Content: a.Content,
			Site: contenthttp.Site{
				URL:         a.Config.App.PublicSiteURL,
				Title:       a.Config.App.SiteTitle,
				Description: a.Config.App.SiteDescription,
				Author:      a.Config.App.SiteAuthor,
			},
			Explainer:      a.Explain,
			Inbox:          a.Inbox,
			MessageLimiter: a.messageLimiter,
			ExplainLimiter: a.explainLimiter,
		},
	})
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
