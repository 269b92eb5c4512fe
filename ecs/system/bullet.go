package system

import (
	"github.com/milk9111/wavesurvivor/common"
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
)

// BulletSystem moves bullets in two half steps per tick so fast rounds do not
// tunnel through small bodies, resolves the first hit, and expires them.
type BulletSystem struct{}

func NewBulletSystem() *BulletSystem { return &BulletSystem{} }

func (s *BulletSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	ecs.ForEach2(w, component.BulletComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Bullet, tr *component.Transform) {
		if ecs.IsQueued(w, e) {
			return
		}
		half := ctx.Dt / 2
		for i := 0; i < 2; i++ {
			if s.step(w, ctx, e, b, tr, half) {
				break
			}
		}
		b.Life = common.TickDown(b.Life, ctx.Dt)
		if b.Life <= 0 {
			ecs.QueueDestroy(w, e)
		}
	})
}

// step advances one half step and reports whether the bullet hit something.
func (s *BulletSystem) step(w *ecs.World, ctx *Context, e ecs.Entity, b *component.Bullet, tr *component.Transform, dt float64) bool {
	contacts := MoveAndCollide(w, e, b.Direction.Scale(b.Speed*dt))
	if len(contacts) == 0 {
		return false
	}

	hit := contacts[0].Other
	if target, ok := DamageableOf(w, hit); ok {
		target.TakeDamage(w, ctx, b.Damage, b.Source)
	}
	if target, ok := KnockbackableOf(w, hit); ok {
		target.Knockback(w, b.Damage, tr.Position)
	}
	ecs.QueueDestroy(w, e)
	if ctx.Factory != nil {
		ctx.Factory.BuildHitEffect(w, tr.Position)
	}
	return true
}
