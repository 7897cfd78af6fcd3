package intset

// Insert adds value to the set. Inserting a value that is already present
// leaves the set unchanged.
func (s *Set) Insert(value int32) {
	update := make([]*node, s.cfg.maxLevel)
	pred := s.descend(value, update)

	if next := pred.forward[0]; next != nil && next.value == value {
		return
	}

	level := s.randomLevel()
	if level > s.level {
		// The new tower rises above every existing one, so the head is the
		// predecessor on each of the fresh levels.
		for i := s.level + 1; i <= level; i++ {
			update[i] = s.head
		}
		s.level = level
	}

	n := newNode(value, level)
	for i := 0; i <= level; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}

	s.length++
}
