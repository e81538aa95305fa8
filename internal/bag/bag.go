package bag

import (
	"math/rand/v2"
	"time"

	"riktris/internal/piece"
)

// Bag dispenses shapes in shuffled batches of the full set, so every kind
// shows up exactly once per seven draws.
type Bag struct {
	src       *rand.PCG
	rng       *rand.Rand
	remaining []piece.Shape // next shape is at the end
}

// New creates a bag seeded with seed. A zero seed uses the current time.
func New(seed uint64) *Bag {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Bag{
		src: src,
		rng: rand.New(src),
	}
}

func refill(rng *rand.Rand) []piece.Shape {
	batch := make([]piece.Shape, 0, piece.NumShapes)
	batch = append(batch, piece.Shapes[:]...)
	rng.Shuffle(len(batch), func(i, j int) {
		batch[i], batch[j] = batch[j], batch[i]
	})
	return batch
}

// Next pops the next shape, refilling the batch first if it is empty.
func (b *Bag) Next() piece.Shape {
	if len(b.remaining) == 0 {
		b.remaining = refill(b.rng)
	}
	last := len(b.remaining) - 1
	s := b.remaining[last]
	b.remaining = b.remaining[:last]
	return s
}

// Preview returns the next n shapes without consuming them. Refills are
// simulated on a copy of the random source, so the preview matches what Next
// will actually return.
func (b *Bag) Preview(n int) []piece.Shape {
	if n <= 0 {
		return nil
	}

	src := *b.src
	rng := rand.New(&src)
	pending := append([]piece.Shape(nil), b.remaining...)

	out := make([]piece.Shape, 0, n)
	for len(out) < n {
		if len(pending) == 0 {
			pending = refill(rng)
		}
		last := len(pending) - 1
		out = append(out, pending[last])
		pending = pending[:last]
	}
	return out
}

// Remaining returns how many shapes are left in the current batch.
func (b *Bag) Remaining() int {
	return len(b.remaining)
}
