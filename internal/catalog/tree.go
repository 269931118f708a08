package catalog

import (
	"strings"
)

// node is a tree vertex. It owns its record and both child subtrees.
// There is no parent link: paths are rebuilt through recursion, with every
// mutating call returning the new owner of the subtree it was given.
type node struct {
	rec   Record
	left  *node
	right *node
}

// Tree is an unbalanced binary search tree of artwork records ordered by
// Compare. Duplicate records are rejected.
//
// Tree performs no internal locking. Callers sharing a Tree must serialise
// Insert and Remove against every other operation.
type Tree struct {
	root *node
	size int
}

// New creates an empty catalog tree.
func New() *Tree {
	return &Tree{}
}

// IsEmpty reports whether the tree holds no records.
func (t *Tree) IsEmpty() bool {
	return t.size == 0
}

// Size returns the number of records stored in the tree.
//
// Complexity: O(1)
func (t *Tree) Size() int {
	return t.size
}

// Insert adds rec to the tree.
// Returns false without modifying the tree if an equal record is already
// stored. Returns ErrInvalidArgument if rec is nil.
//
// Complexity: O(height)
func (t *Tree) Insert(rec *Record) (bool, error) {
	if rec == nil {
		return false, ErrInvalidArgument
	}

	if t.root == nil {
		t.root = &node{rec: *rec}
		t.size++
		return true, nil
	}

	if !insertNode(t.root, *rec) {
		return false, nil
	}
	t.size++
	return true, nil
}

// insertNode attaches rec as a new leaf below current. Returns false if an
// equal record is found on the way down.
func insertNode(current *node, rec Record) bool {
	c := Compare(rec, current.rec)
	switch {
	case c == 0:
		return false
	case c > 0:
		if current.right == nil {
			current.right = &node{rec: rec}
			return true
		}
		return insertNode(current.right, rec)
	default:
		if current.left == nil {
			current.left = &node{rec: rec}
			return true
		}
		return insertNode(current.left, rec)
	}
}

// Lookup reports whether a record with exactly this name, year and cost is
// stored in the tree.
//
// Complexity: O(height)
func (t *Tree) Lookup(name string, year int, cost float64) bool {
	return lookupNode(t.root, NewRecord(name, year, cost))
}

func lookupNode(current *node, target Record) bool {
	if current == nil {
		return false
	}
	c := Compare(current.rec, target)
	switch {
	case c == 0:
		return true
	case c > 0:
		return lookupNode(current.left, target)
	default:
		return lookupNode(current.right, target)
	}
}

// LookupAll returns every record created in year whose cost does not exceed
// costCeiling.
//
// The match predicate does not follow the tree ordering (cost is only a
// secondary key), so every node is visited. Results come out in pre-order:
// a node's own match, then its left subtree's matches, then its right
// subtree's. The slice is therefore not sorted. It is empty, never nil, when
// nothing matches.
//
// Complexity: O(n)
func (t *Tree) LookupAll(year int, costCeiling float64) []Record {
	matches := make([]Record, 0)
	return lookupAllNode(t.root, year, costCeiling, matches)
}

func lookupAllNode(current *node, year int, costCeiling float64, acc []Record) []Record {
	if current == nil {
		return acc
	}
	if current.rec.Year == year && current.rec.Cost <= costCeiling {
		acc = append(acc, current.rec)
	}
	acc = lookupAllNode(current.left, year, costCeiling, acc)
	return lookupAllNode(current.right, year, costCeiling, acc)
}

// Best returns the largest record in the tree (most recent, then most
// expensive). The second return value is false if the tree is empty.
//
// Complexity: O(height)
func (t *Tree) Best() (Record, bool) {
	if t.root == nil {
		return Record{}, false
	}
	current := t.root
	for current.right != nil {
		current = current.right
	}
	return current.rec, true
}

// Min returns the smallest record in the tree.
// The second return value is false if the tree is empty.
//
// Complexity: O(height)
func (t *Tree) Min() (Record, bool) {
	if t.root == nil {
		return Record{}, false
	}
	return leftmost(t.root).rec, true
}

func leftmost(current *node) *node {
	for current.left != nil {
		current = current.left
	}
	return current
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0 and a single node has height 1.
//
// Complexity: O(n)
func (t *Tree) Height() int {
	return height(t.root)
}

func height(current *node) int {
	if current == nil {
		return 0
	}
	return 1 + max(height(current.left), height(current.right))
}

// Remove deletes the record with exactly this name, year and cost.
// Returns a *NotFoundError (matching ErrNotFound) if no such record exists,
// in which case the tree is left unchanged.
//
// Complexity: O(height)
func (t *Tree) Remove(name string, year int, cost float64) error {
	root, err := removeNode(t.root, NewRecord(name, year, cost))
	if err != nil {
		return err
	}
	t.root = root
	t.size--
	return nil
}

// removeNode deletes target from the subtree rooted at current and returns
// the new root of that subtree. On error, current is returned untouched.
func removeNode(current *node, target Record) (*node, error) {
	if current == nil {
		return nil, &NotFoundError{Target: target}
	}

	c := Compare(target, current.rec)
	if c > 0 {
		right, err := removeNode(current.right, target)
		if err != nil {
			return current, err
		}
		current.right = right
		return current, nil
	}
	if c < 0 {
		left, err := removeNode(current.left, target)
		if err != nil {
			return current, err
		}
		current.left = left
		return current, nil
	}

	switch {
	case current.left == nil && current.right == nil:
		return nil, nil
	case current.left == nil:
		return current.right, nil
	case current.right == nil:
		return current.left, nil
	}

	// Two children: promote the in-order successor into a fresh node that
	// keeps current's links, then drop the successor from the right subtree.
	successor := leftmost(current.right).rec
	replacement := &node{rec: successor, left: current.left}
	right, err := removeNode(current.right, successor)
	if err != nil {
		return current, err
	}
	replacement.right = right
	return replacement, nil
}

// String returns the in-order dump of the catalog, one record per line,
// each line terminated by "\n". An empty tree yields "".
//
// Complexity: O(n)
func (t *Tree) String() string {
	var sb strings.Builder
	inOrder(t.root, func(r Record) {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	})
	return sb.String()
}

// OrderedText is an alias of String.
func (t *Tree) OrderedText() string {
	return t.String()
}

// Records returns the stored records in ascending order.
//
// Complexity: O(n)
func (t *Tree) Records() []Record {
	records := make([]Record, 0, t.size)
	inOrder(t.root, func(r Record) {
		records = append(records, r)
	})
	return records
}

func inOrder(current *node, fn func(Record)) {
	if current == nil {
		return
	}
	inOrder(current.left, fn)
	fn(current.rec)
	inOrder(current.right, fn)
}
