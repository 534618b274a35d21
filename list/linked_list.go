package list

import (
	"fmt"
	"strings"

	"github.com/qjpcpu/linkedlist/assert"
	"github.com/qjpcpu/linkedlist/json"
)

type node[T comparable] struct {
	val  T
	next *node[T]
}

// LinkedList is a singly linked list owning its chain from head.
// The zero value is an empty list ready to use. It is not safe for concurrent use.
// Delete compares with ==, so when T is an interface type, meeting a stored value of the
// same uncomparable dynamic type (slice, map, func) as the searched one panics at runtime.
type LinkedList[T comparable] struct {
	head *node[T]
}

// New empty list
func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Insert value at zero-based index. index <= 0 inserts at head,
// index >= Len() appends at tail.
func (l *LinkedList[T]) Insert(value T, index int) {
	assert.ShouldBeTrue(l != nil, "insert into nil list")
	n := &node[T]{val: value}
	if l.head == nil || index <= 0 {
		n.next = l.head
		l.head = n
		return
	}
	prev := l.head
	for i := 0; prev.next != nil && i < index-1; i++ {
		prev = prev.next
	}
	n.next = prev.next
	prev.next = n
}

// Delete first node equal to value, return false if nothing matched
func (l *LinkedList[T]) Delete(value T) bool {
	assert.ShouldBeTrue(l != nil, "delete from nil list")
	var prev *node[T]
	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if cur.val != value {
			continue
		}
		if prev == nil {
			l.head = cur.next
		} else {
			prev.next = cur.next
		}
		cur.next = nil
		return true
	}
	return false
}

// Clear drop all nodes
func (l *LinkedList[T]) Clear() {
	assert.ShouldBeTrue(l != nil, "clear nil list")
	l.head = nil
}

// Len count nodes by traversal
func (l *LinkedList[T]) Len() (size int) {
	l.Each(func(int, T) bool {
		size++
		return true
	})
	return
}

// IsEmpty list
func (l *LinkedList[T]) IsEmpty() bool {
	return l == nil || l.head == nil
}

// Each visit values from head to tail, stop when fn return false
func (l *LinkedList[T]) Each(fn func(index int, value T) bool) {
	if l == nil {
		return
	}
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if !fn(i, cur.val) {
			return
		}
		i++
	}
}

// Values copy out values in chain order
func (l *LinkedList[T]) Values() []T {
	var out []T
	l.Each(func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// String render values head to tail like LinkedList(["a", "b"]), each value formatted by %#v
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("LinkedList([")
	l.Each(func(i int, v T) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%#v", v)
		return true
	})
	sb.WriteString("])")
	return sb.String()
}

// MarshalJSON encode as array in chain order
func (l *LinkedList[T]) MarshalJSON() ([]byte, error) {
	values := l.Values()
	if values == nil {
		values = []T{}
	}
	return json.Marshal(values)
}

// UnmarshalJSON replace the chain with values of a json array, keeping array order
func (l *LinkedList[T]) UnmarshalJSON(data []byte) error {
	assert.ShouldBeTrue(l != nil, "unmarshal into nil list")
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	var head, tail *node[T]
	for _, v := range values {
		n := &node[T]{val: v}
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	l.head = head
	return nil
}
