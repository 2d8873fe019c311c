package stores

// subscribers is guarded by the owning store's mutex.
type subscribers[S any] struct {
	next int
	fns  map[int]func(S)
}

func (b *subscribers[S]) add(fn func(S)) int {
	if b.fns == nil {
		b.fns = make(map[int]func(S))
	}
	b.next++
	b.fns[b.next] = fn
	return b.next
}

func (b *subscribers[S]) remove(id int) {
	delete(b.fns, id)
}

func (b *subscribers[S]) publish(snapshot S) {
	for _, fn := range b.fns {
		fn(snapshot)
	}
}
