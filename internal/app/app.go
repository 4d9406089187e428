package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/loandesk/internal/config"
	"github.com/polkiloo/loandesk/internal/server/http/handlers"
	"github.com/polkiloo/loandesk/internal/server/http/middleware"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewFacade,
		func(f *Facade) handlers.DeskFacade { return f },
		func(f *Facade) middleware.ActorResolver { return f },
		newHTTPServer,
	),
	fx.Invoke(bootstrapAdmin),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type bootstrapParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Facade *Facade
	Logger *slog.Logger
}

// bootstrapAdmin seeds the admin account configured via ADMIN_LOGIN/ADMIN_PASSWORD.
func bootstrapAdmin(p bootstrapParams) error {
	if p.Config.AdminLogin == "" {
		return nil
	}
	if err := p.Facade.EnsureAdmin(p.Ctx, p.Config.AdminLogin, p.Config.AdminPassword); err != nil {
		return err
	}
	p.Logger.Info("admin account ensured", slog.String("login", p.Config.AdminLogin))
	return nil
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting loandesk", slog.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("loandesk stopped")
			return nil
		},
	})
}
