package intset

// node holds a value and per-level forward pointers. forward[i] is the
// node's successor on level i; the slice length is the node's assigned
// level plus one, so towers only pay for the levels they occupy.
type node struct {
	value   int32
	forward []*node
}

func newNode(value int32, level int) *node {
	return &node{
		value:   value,
		forward: make([]*node, level+1),
	}
}

// newSentinel returns a head node spanning every permitted level. Its value
// field is never compared against stored values; traversal starts from its
// forward pointers alone.
func newSentinel(maxLevel int) *node {
	return &node{forward: make([]*node, maxLevel)}
}
