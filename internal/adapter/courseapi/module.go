package courseapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/coursedesk/coursedesk/internal/config"
	"github.com/coursedesk/coursedesk/internal/domain/repository"
)

// Module exposes the API client to the fx graph as both catalog and orders
// repositories.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(func(c *Client) repository.Catalog { return c }),
	fx.Provide(func(c *Client) repository.Orders { return c }),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (*Client, error) {
	return New(p.Config.BaseURL, p.Config.APIKey, p.Config.HTTPTimeout, p.Logger)
}
