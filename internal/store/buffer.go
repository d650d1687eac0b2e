package store

import "context"

// buffer collects writes over a base store until commit. Reads see the
// buffered writes first.
type buffer struct {
	base    Store
	writes  map[string][]byte
	deletes map[string]struct{}
	order   []string
}

func newBuffer(base Store) *buffer {
	return &buffer{
		base:    base,
		writes:  make(map[string][]byte),
		deletes: make(map[string]struct{}),
	}
}

func (b *buffer) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if _, gone := b.deletes[key]; gone {
		return nil, false, nil
	}
	if v, ok := b.writes[key]; ok {
		return append([]byte(nil), v...), true, nil
	}
	return b.base.Load(ctx, key)
}

func (b *buffer) Save(_ context.Context, key string, value []byte) error {
	delete(b.deletes, key)
	if _, seen := b.writes[key]; !seen {
		b.order = append(b.order, key)
	}
	b.writes[key] = append([]byte(nil), value...)
	return nil
}

func (b *buffer) Delete(_ context.Context, key string) error {
	if _, seen := b.writes[key]; seen {
		delete(b.writes, key)
	}
	b.deletes[key] = struct{}{}
	return nil
}

// Atomic on a buffer nests into the same pending set.
func (b *buffer) Atomic(_ context.Context, fn func(tx Store) error) error {
	return fn(b)
}

// pendingWrites returns buffered writes in first-write order.
func (b *buffer) pendingWrites() []string {
	out := make([]string, 0, len(b.order))
	for _, k := range b.order {
		if _, ok := b.writes[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
