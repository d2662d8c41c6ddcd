package ecs

// entityStore tracks entity generations and free slot ids.
type entityStore struct {
	nextID entityID
	gens   []generation
	free   []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
		s.gens = append(s.gens, 0)
	}
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gens[e.id()-1]++
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.gens[id-1] == e.generation()
}

func (s *entityStore) alive() []Entity {
	out := make([]Entity, 0, int(s.nextID)-len(s.free))
	for i, gen := range s.gens {
		id := entityID(i + 1)
		e := makeEntity(id, gen)
		if s.isAlive(e) && !s.isFree(id) {
			out = append(out, e)
		}
	}
	return out
}

func (s *entityStore) isFree(id entityID) bool {
	for _, f := range s.free {
		if f == id {
			return true
		}
	}
	return false
}
