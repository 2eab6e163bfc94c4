package setup

import (
	"context"
	"time"

	"github.com/itchan-dev/threadline/backend/internal/handler"
	"github.com/itchan-dev/threadline/backend/internal/middleware/ratelimiter"
	"github.com/itchan-dev/threadline/backend/internal/render"
	"github.com/itchan-dev/threadline/backend/internal/service"
	"github.com/itchan-dev/threadline/shared/config"
	"github.com/itchan-dev/threadline/shared/domain"
)

const limiterIdle = 10 * time.Minute

// Dependencies holds everything the HTTP API needs.
type Dependencies struct {
	Config  *config.Config
	Handler *handler.Handler
	Limiter *ratelimiter.ClientLimiter // nil when rate limiting is off
}

// SetupDependencies wires the read API over one finished run. archive may be nil.
func SetupDependencies(ctx context.Context, cfg *config.Config, engineCfg domain.EngineConfig, res *domain.Result, archive handler.Archive) *Dependencies {
	renderer := render.NewRenderer(render.NewTextProcessor(), engineCfg.Location)
	h := handler.New(service.NewResults(res), renderer, archive)

	deps := &Dependencies{Config: cfg, Handler: h}
	if rl := cfg.Public.Api.RateLimit; rl.Rps > 0 {
		burst := max(rl.Burst, 1)
		deps.Limiter = ratelimiter.New(rl.Rps, burst, limiterIdle)
		go deps.Limiter.Run(ctx, limiterIdle)
	}
	return deps
}
