package arena

import "iter"

type links struct {
	next, prev ID
}

// List is a doubly linked list over a fixed id space. Links are stored
// per slot rather than in heap nodes, so several independent lists can
// order the same arena. All mutations are O(1); the list never grows.
// Constructed by [NewList].
type List struct {
	links []links
	head  ID
	tail  ID
}

// NewList creates a list able to link ids in [0, capacity).
func NewList(capacity int) List {
	l := List{
		links: make([]links, capacity),
		head:  None,
		tail:  None,
	}
	for i := range l.links {
		l.links[i] = links{next: None, prev: None}
	}
	return l
}

// Capacity returns the size of the id space.
func (l *List) Capacity() int { return len(l.links) }

// IsEmpty reports whether the list holds no ids.
func (l *List) IsEmpty() bool { return l.head == None }

// Len counts the linked ids. It executes in time proportional to the
// number of elements.
func (l *List) Len() int {
	n := 0
	for id := l.head; id != None; id = l.links[id].next {
		n++
	}
	return n
}

// Head returns the first id, or [None] when the list is empty.
func (l *List) Head() ID { return l.head }

// Tail returns the last id, or [None] when the list is empty.
func (l *List) Tail() ID { return l.tail }

// Next returns the id following id, or [None] at the end.
func (l *List) Next(id ID) ID { return l.links[id].next }

// Prev returns the id preceding id, or [None] at the front.
func (l *List) Prev(id ID) ID { return l.links[id].prev }

// PushFront links id as the new head. The id must be inside the id
// space and must not be linked in this or any sibling list sharing the
// arena; callers remove before re-inserting.
func (l *List) PushFront(id ID) {
	if debugging {
		assert(l.links[id].next == None && l.links[id].prev == None && l.head != id,
			"pushed an id that is still linked")
	}
	oldHead := l.head
	l.head = id
	if l.tail == None {
		l.tail = id
	}
	l.links[id] = links{next: oldHead, prev: None}
	if oldHead != None {
		l.links[oldHead].prev = id
	}
}

// Remove unlinks id from wherever it sits and clears its links.
// Ids outside the id space and ids that are not currently linked are
// ignored, so Remove is idempotent.
func (l *List) Remove(id ID) {
	if id >= ID(len(l.links)) {
		return
	}
	link := l.links[id]
	if link.next == None && link.prev == None && l.head != id {
		return // not linked
	}

	if link.prev != None {
		l.links[link.prev].next = link.next
	} else {
		l.head = link.next
	}

	if link.next != None {
		l.links[link.next].prev = link.prev
	} else {
		l.tail = link.prev
	}

	l.links[id] = links{next: None, prev: None}
}

// PopFront removes and returns the head id, or [None] when empty.
func (l *List) PopFront() ID {
	head := l.head
	if head != None {
		l.Remove(head)
	}
	return head
}

// PopBack removes and returns the tail id, or [None] when empty.
func (l *List) PopBack() ID {
	tail := l.tail
	if tail != None {
		l.Remove(tail)
	}
	return tail
}

// All returns an iterator over the linked ids from head to tail.
// The behavior is undefined if the list is mutated during iteration.
func (l *List) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for id := l.head; id != None; id = l.links[id].next {
			if !yield(id) {
				return
			}
		}
	}
}

// Backward returns an iterator over the linked ids from tail to head.
func (l *List) Backward() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for id := l.tail; id != None; id = l.links[id].prev {
			if !yield(id) {
				return
			}
		}
	}
}
