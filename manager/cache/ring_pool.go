package cache

import "context"

// RingPool hands out a fixed set of reusable values. Get blocks until a
// value is returned, so the pool also bounds how many holders run at once.
type RingPool[T any] struct {
	items []T
	free  chan int
}

func NewRingPool[T any](n int, newItem func() T) *RingPool[T] {

	n = max(n, 1)

	items := make([]T, n)
	free := make(chan int, n)

	for i := range n {
		if newItem != nil {
			items[i] = newItem()
		}
		free <- i
	}

	return &RingPool[T]{
		items: items,
		free:  free,
	}
}

func (p *RingPool[T]) Get(ctx context.Context) (*T, int, error) {
	select {
	case id := <-p.free:
		return &p.items[id], id, nil
	case <-ctx.Done():
		return nil, -1, ctx.Err()
	}
}

func (p *RingPool[T]) Put(id int) {
	p.free <- id
}

func (p *RingPool[T]) Size() int {
	return len(p.items)
}

// Available is the number of values not handed out
func (p *RingPool[T]) Available() int {
	return len(p.free)
}
