// Package list implements a singly linked list whose nodes live inside a
// pool arena.
//
// The list is a pure allocator client: it only calls Alloc, Free and Bytes
// on the pool and owns no allocator internals. Each node is a 6-byte
// arena-resident record holding the next-node ref and a uint16 value; node
// windows stay valid because the pool never moves an allocation behind the
// caller's back.
package list

import (
	"fmt"
	"strings"

	"github.com/joshuapare/poolkit/internal/format"
	"github.com/joshuapare/poolkit/pool"
)

// List is a singly linked list of uint16 values backed by a pool.
//
// NOT thread-safe; it inherits the pool's single-owner model.
type List struct {
	p    *pool.Pool
	head pool.Ref
}

// New creates an empty list over p. The caller keeps ownership of the pool.
func New(p *pool.Pool) *List {
	return &List{p: p, head: pool.NilRef}
}

// Head returns the ref of the first node, or pool.NilRef when empty.
func (l *List) Head() pool.Ref { return l.head }

// newNode allocates and encodes one node.
func (l *List) newNode(v uint16, next pool.Ref) (pool.Ref, error) {
	ref, buf, err := l.p.Alloc(format.NodeSize)
	if err != nil {
		return pool.NilRef, fmt.Errorf("list: node allocation failed: %w", err)
	}
	format.PutI32(buf, format.NodeNextOffset, int32(next))
	format.PutU16(buf, format.NodeValueOffset, v)
	return ref, nil
}

func (l *List) node(ref pool.Ref) ([]byte, error) {
	buf, err := l.p.Bytes(ref)
	if err != nil {
		return nil, fmt.Errorf("list: resolve node %d: %w", ref, err)
	}
	return buf, nil
}

func (l *List) next(ref pool.Ref) (pool.Ref, error) {
	buf, err := l.node(ref)
	if err != nil {
		return pool.NilRef, err
	}
	return pool.Ref(format.ReadI32(buf, format.NodeNextOffset)), nil
}

func (l *List) setNext(ref, next pool.Ref) error {
	buf, err := l.node(ref)
	if err != nil {
		return err
	}
	format.PutI32(buf, format.NodeNextOffset, int32(next))
	return nil
}

// Value returns the value stored at ref.
func (l *List) Value(ref pool.Ref) (uint16, error) {
	buf, err := l.node(ref)
	if err != nil {
		return 0, err
	}
	return format.ReadU16(buf, format.NodeValueOffset), nil
}

// Push appends v at the end of the list.
func (l *List) Push(v uint16) error {
	ref, err := l.newNode(v, pool.NilRef)
	if err != nil {
		return err
	}
	if l.head == pool.NilRef {
		l.head = ref
		return nil
	}
	tail := l.head
	for {
		nxt, err := l.next(tail)
		if err != nil {
			return err
		}
		if nxt == pool.NilRef {
			break
		}
		tail = nxt
	}
	return l.setNext(tail, ref)
}

// InsertAfter inserts v immediately after the node at.
func (l *List) InsertAfter(at pool.Ref, v uint16) error {
	nxt, err := l.next(at)
	if err != nil {
		return err
	}
	ref, err := l.newNode(v, nxt)
	if err != nil {
		return err
	}
	return l.setNext(at, ref)
}

// InsertBefore inserts v immediately before the node at.
func (l *List) InsertBefore(at pool.Ref, v uint16) error {
	if at == l.head {
		ref, err := l.newNode(v, l.head)
		if err != nil {
			return err
		}
		l.head = ref
		return nil
	}

	prev, err := l.prevOf(at)
	if err != nil {
		return err
	}
	ref, err := l.newNode(v, at)
	if err != nil {
		return err
	}
	return l.setNext(prev, ref)
}

// prevOf walks from the head to the node linking to at.
func (l *List) prevOf(at pool.Ref) (pool.Ref, error) {
	cur := l.head
	for cur != pool.NilRef {
		nxt, err := l.next(cur)
		if err != nil {
			return pool.NilRef, err
		}
		if nxt == at {
			return cur, nil
		}
		cur = nxt
	}
	return pool.NilRef, fmt.Errorf("list: node %d not in list", at)
}

// Find returns the ref of the first node holding v.
func (l *List) Find(v uint16) (pool.Ref, bool) {
	cur := l.head
	for cur != pool.NilRef {
		val, err := l.Value(cur)
		if err != nil {
			return pool.NilRef, false
		}
		if val == v {
			return cur, true
		}
		cur, err = l.next(cur)
		if err != nil {
			return pool.NilRef, false
		}
	}
	return pool.NilRef, false
}

// Remove unlinks and frees the first node holding v.
func (l *List) Remove(v uint16) error {
	var prev pool.Ref = pool.NilRef
	cur := l.head
	for cur != pool.NilRef {
		val, err := l.Value(cur)
		if err != nil {
			return err
		}
		nxt, err := l.next(cur)
		if err != nil {
			return err
		}
		if val == v {
			if prev == pool.NilRef {
				l.head = nxt
			} else if err := l.setNext(prev, nxt); err != nil {
				return err
			}
			return l.p.Free(cur)
		}
		prev, cur = cur, nxt
	}
	return fmt.Errorf("list: value %d not found", v)
}

// Len returns the number of nodes.
func (l *List) Len() int {
	n := 0
	cur := l.head
	for cur != pool.NilRef {
		nxt, err := l.next(cur)
		if err != nil {
			return n
		}
		n++
		cur = nxt
	}
	return n
}

// Values returns every value in list order.
func (l *List) Values() ([]uint16, error) {
	return l.Range(pool.NilRef, pool.NilRef)
}

// Range returns the values between the nodes from and to, inclusive.
// pool.NilRef for from means the head; pool.NilRef for to means the tail.
func (l *List) Range(from, to pool.Ref) ([]uint16, error) {
	cur := from
	if cur == pool.NilRef {
		cur = l.head
	}
	var out []uint16
	for cur != pool.NilRef {
		v, err := l.Value(cur)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if cur == to {
			return out, nil
		}
		cur, err = l.next(cur)
		if err != nil {
			return nil, err
		}
	}
	if to != pool.NilRef {
		return nil, fmt.Errorf("list: node %d not reachable from range start", to)
	}
	return out, nil
}

// String renders the list as "10 -> 20 -> 30".
func (l *List) String() string {
	vals, err := l.Values()
	if err != nil {
		return "<broken list>"
	}
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}

// Cleanup frees every node and empties the list. The pool itself stays open.
func (l *List) Cleanup() error {
	cur := l.head
	for cur != pool.NilRef {
		nxt, err := l.next(cur)
		if err != nil {
			return err
		}
		if err := l.p.Free(cur); err != nil {
			return err
		}
		cur = nxt
	}
	l.head = pool.NilRef
	return nil
}
