package ecs

// System updates a world once per tick with a caller-supplied context.
type System[C any] interface {
	Update(w *World, ctx C)
}

// Scheduler runs systems in registration order, then sweeps queued entities.
type Scheduler[C any] struct {
	systems []System[C]
}

func NewScheduler[C any](systems ...System[C]) *Scheduler[C] {
	s := &Scheduler[C]{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler[C]) Add(system System[C]) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler[C]) Update(w *World, ctx C) {
	if s == nil || w == nil {
		return
	}
	w.events.flush()
	for _, system := range s.systems {
		system.Update(w, ctx)
	}
	Sweep(w)
}

func (s *Scheduler[C]) Systems() []System[C] {
	systems := make([]System[C], 0, len(s.systems))
	return append(systems, s.systems...)
}
