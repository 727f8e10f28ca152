package gate_fx

import (
	"go.uber.org/fx"

	"lifesync/internal/config"
	"lifesync/internal/services"
	mem "lifesync/pkg/memcache"
)

var Module = fx.Provide(provideGateService)

func provideGateService(cfg config.Config, attempts mem.AttemptLimiter) services.GateService {
	return services.NewGateService(cfg.SitePassword, attempts)
}
