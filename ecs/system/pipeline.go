package system

import "github.com/milk9111/wavesurvivor/ecs"

// NewPipeline returns the per-tick system order.
func NewPipeline(spawner *Spawner) *ecs.Scheduler[*Context] {
	sched := ecs.NewScheduler[*Context]()
	sched.Add(NewAreaSystem())
	sched.Add(NewPlayerControllerSystem())
	sched.Add(NewEnemySystem())
	sched.Add(NewCooldownSystem())
	sched.Add(NewBulletSystem())
	sched.Add(NewPickupSystem())
	sched.Add(NewTTLSystem())
	sched.Add(NewDirectorSystem(spawner))
	sched.Add(NewCameraSystem())
	return sched
}
