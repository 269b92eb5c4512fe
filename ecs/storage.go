package ecs

// entityStore tracks slot generations and recycled ids. Ids start at 1 so the
// zero Entity stays invalid.
type entityStore struct {
	gen   []generation
	alive []bool
	free  []entityID
	live  []Entity
	index map[Entity]int
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gen))
	}
	s.alive[id-1] = true
	e := makeEntity(id, s.gen[id-1])
	if s.index == nil {
		s.index = make(map[Entity]int)
	}
	s.index[e] = len(s.live)
	s.live = append(s.live, e)
	return e
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.alive[idx] = false
	s.gen[idx]++
	s.free = append(s.free, e.id())

	// keep creation order for deterministic iteration
	pos := s.index[e]
	copy(s.live[pos:], s.live[pos+1:])
	s.live = s.live[:len(s.live)-1]
	delete(s.index, e)
	for i := pos; i < len(s.live); i++ {
		s.index[s.live[i]] = i
	}
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.alive[id-1] && s.gen[id-1] == e.generation()
}
