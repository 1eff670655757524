package datastruct

import "iter"

// LinkedList is a doubly linked list that can be used as a SequenceReader.
// Lookup walks from whichever end is closer to the index.
type LinkedList[T any] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

type llElem[T any] struct {
	data T
	prev *llElem[T]
	next *llElem[T]
}

var (
	_ SequenceReader[int]  = (*LinkedList[int])(nil)
	_ Iterable[int]        = (*LinkedList[int])(nil)
	_ ReverseIterable[int] = (*LinkedList[int])(nil)
)

func (ll *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.tail; current != nil; current = current.prev {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &llElem[T]{data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		ll.tail = newNode
		ll.tail.prev = prevTail
	}
	ll.length++
}

// Prepend adds an element to the beginning of the list.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		ll.prepend(vs[i])
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	var (
		prevHead = ll.head
		newHead  = &llElem[T]{
			data: v,
			next: prevHead,
		}
	)
	if prevHead != nil {
		prevHead.prev = newHead
	}
	ll.head = newHead
	if ll.tail == nil {
		ll.tail = newHead
	}
	ll.length++
}

// Len returns the number of elements in the list
func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	first := ll.head
	ll.head = first.next
	if ll.head != nil {
		ll.head.prev = nil
	}
	if ll.head == nil {
		ll.tail = nil
	}
	ll.length--
	return first.data, true
}

func (ll *LinkedList[T]) Pop() (T, bool) {
	var last = ll.tail
	if last == nil {
		var zero T
		return zero, false
	}
	var prev = ll.tail.prev
	if prev != nil {
		prev.next = nil
	}
	if prev == nil {
		ll.head = nil
	}
	ll.tail = prev
	ll.length--
	return last.data, true
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.Len() <= index {
		var zero T
		return zero, false
	}
	if index < ll.length/2 {
		current := ll.head
		for i := 0; i < index; i++ {
			current = current.next
		}
		return current.data, true
	}
	current := ll.tail
	for i := ll.length - 1; index < i; i-- {
		current = current.prev
	}
	return current.data, true
}
