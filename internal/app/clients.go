package app

import (
	"context"

	"github.com/okaycreative/studioops/internal/platform/logger"
	"github.com/okaycreative/studioops/internal/realtime"
	"github.com/okaycreative/studioops/internal/realtime/bus"
)

// wireBus connects the redis notification bus when configured and forwards
// inbound messages to the local hub. Returns nil when redis is not
// configured; the app then runs single-process with the in-memory hub only.
func wireBus(ctx context.Context, log *logger.Logger, cfg Config, hub *realtime.SSEHub) bus.Bus {
	if !cfg.RedisEnabled {
		log.Info("REDIS_ADDR not set, running without notification bus")
		return nil
	}
	b, err := bus.NewRedisBus(log)
	if err != nil {
		log.Warn("redis bus init failed, continuing without it", "error", err)
		return nil
	}
	if err := b.StartForwarder(ctx, func(m realtime.SSEMessage) {
		hub.Broadcast(m)
	}); err != nil {
		log.Warn("redis bus forwarder failed, continuing without it", "error", err)
		_ = b.Close()
		return nil
	}
	return b
}
