package intset

// descend walks toward value from the head, moving right along each level
// while the next node is still smaller and dropping one level when it is
// not. It returns the level-0 predecessor of value, the rightmost node whose
// value is strictly less than value.
//
// When update is non-nil it must have capacity for maxLevel entries; descend
// records the last node visited on each active level so Insert can splice a
// new tower behind those nodes. Levels above the current list height are
// left untouched.
func (s *Set) descend(value int32, update []*node) *node {
	x := s.head
	for i := s.level; i >= 0; i-- {
		for x.forward[i] != nil && x.forward[i].value < value {
			x = x.forward[i]
		}
		if update != nil {
			update[i] = x
		}
	}
	return x
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value int32) bool {
	pred := s.descend(value, nil)
	next := pred.forward[0]
	return next != nil && next.value == value
}
