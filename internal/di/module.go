package di

import (
	"go.uber.org/fx"

	"github.com/coursedesk/coursedesk/internal/adapter/courseapi"
	"github.com/coursedesk/coursedesk/internal/app"
	"github.com/coursedesk/coursedesk/internal/config"
	"github.com/coursedesk/coursedesk/internal/logger"
	"github.com/coursedesk/coursedesk/internal/usecase"
)

// Module composes the application graph. Additional options may replace any
// provided component, which tests use to swap in stubs.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		courseapi.Module,
		usecase.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
