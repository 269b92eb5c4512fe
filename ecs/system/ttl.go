package system

import (
	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
)

// TTLSystem counts TTL components down and queues their entities for removal
// when they run out.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Seconds = common.TickDown(ttl.Seconds, ctx.Dt)
		if ttl.Seconds <= 0 {
			ecs.QueueDestroy(w, e)
		}
	})
}
