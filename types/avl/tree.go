package avl

import (
	"sync"

	"gopkg.in/typ.v4"
)

// Tree is an ordered key/value collection implemented as an AVL tree
// (a self-balancing binary search tree), giving O(log t) insertion,
// lookup and deletion while keeping O(1) access to the smallest key.
// NOTE: Not thread-safe.
type Tree[K, V any] struct {
	compare   func(a, b K) int
	pool      *sync.Pool
	root      *Node[K, V]
	mostLeft  *Node[K, V]
	mostRight *Node[K, V]
	size      int
}

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[K typ.Ordered, V any]() Tree[K, V] {
	return NewTree[K, V](typ.Compare[K])
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, a negative value if a < b, and a
// positive value if a > b.
func NewTree[K, V any](compare func(a, b K) int) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
	}
}

// NewTreePooled creates a new AVL tree which takes its nodes from the given
// pool and returns them there on removal.
func NewTreePooled[K, V any](compare func(a, b K) int, pool *sync.Pool) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
		pool:    pool,
	}
}

// Size returns the amount of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Find finds the node with given key or returns nil.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.find(key, t.compare)
}

// Add inserts a node with given key and value to the tree.
// Duplicate keys are not allowed so error will be returned on duplicate.
func (t *Tree[K, V]) Add(key K, value V) (node *Node[K, V], err error) {
	// Create tree node
	if t.pool != nil {
		node = t.pool.Get().(*Node[K, V])
		node.key = key
		node.value = value
	} else {
		node = &Node[K, V]{
			key:   key,
			value: value,
		}
	}
	// Add the node to the tree
	if t.root == nil {
		t.root = node
	} else {
		newRoot, err := t.root.add(node, t.compare)
		if err != nil {
			if t.pool != nil {
				*node = Node[K, V]{}
				t.pool.Put(node)
			}
			return nil, err
		}
		t.root = newRoot
	}
	t.size++
	// Update most left/right nodes
	if t.mostLeft == nil || t.compare(node.key, t.mostLeft.key) < 0 {
		t.mostLeft = node
	}
	if t.mostRight == nil || t.compare(node.key, t.mostRight.key) > 0 {
		t.mostRight = node
	}
	return
}

// Remove removes the node with given key from the tree and returns its value.
func (t *Tree[K, V]) Remove(key K) (value V, err error) {
	if t.root == nil {
		err = ErrorTreeNodeNotFound
		return
	}
	var node, newRoot *Node[K, V]
	node, newRoot, err = t.root.remove(key, t.compare)
	if err != nil {
		return
	}
	t.root = newRoot
	value = node.value
	// Release tree node if pool is used
	if t.pool != nil {
		*node = Node[K, V]{}
		t.pool.Put(node)
	}
	t.size--
	// Update most left/right nodes
	if t.mostLeft == node {
		if t.root != nil {
			t.mostLeft = t.root.MostLeft()
		} else {
			t.mostLeft = nil
		}
	}
	if t.mostRight == node {
		if t.root != nil {
			t.mostRight = t.root.MostRight()
		} else {
			t.mostRight = nil
		}
	}
	return
}

// MostLeft returns the node with the smallest key or nil for an empty tree.
func (t *Tree[K, V]) MostLeft() *Node[K, V] {
	return t.mostLeft
}

// MostRight returns the node with the greatest key or nil for an empty tree.
func (t *Tree[K, V]) MostRight() *Node[K, V] {
	return t.mostRight
}

// Clear will reset this tree to an empty tree.
func (t *Tree[K, V]) Clear() {
	if t.root != nil {
		t.root.iteratePostOrder(func(node *Node[K, V]) bool {
			if t.pool != nil {
				*node = Node[K, V]{}
				t.pool.Put(node)
			}
			return false
		})
	}
	t.root = nil
	t.mostLeft = nil
	t.mostRight = nil
	t.size = 0
}

// IterateInOrder will visit all values of this tree in sorted key order.
// Iteration stops early when f returns true.
func (t *Tree[K, V]) IterateInOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iterateInOrder(func(v *Node[K, V]) bool {
		return f(v.value)
	})
}
