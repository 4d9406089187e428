package di

import (
	"github.com/polkiloo/loandesk/internal/app"
	"github.com/polkiloo/loandesk/internal/config"
	"github.com/polkiloo/loandesk/internal/logger"
	"github.com/polkiloo/loandesk/internal/pkg/auth"
	"github.com/polkiloo/loandesk/internal/server/http/router"
	"github.com/polkiloo/loandesk/internal/storage/postgres"
	"github.com/polkiloo/loandesk/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
