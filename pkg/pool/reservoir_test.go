package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](r *reservoir[T]) []T {
	var out []T
	for {
		v, ok := r.take()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestReservoir_Order(t *testing.T) {
	tests := []struct {
		order Order
		want  []int
	}{
		{order: FIFO, want: []int{1, 2, 3, 4, 5}},
		{order: LIFO, want: []int{5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			r := newReservoir[int](tt.order, 2)
			for i := 1; i <= 5; i++ {
				r.put(i)
			}
			require.Equal(t, 5, r.Len())
			assert.Equal(t, tt.want, drain(r))
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestReservoir_TakeEmpty(t *testing.T) {
	r := newReservoir[*int](FIFO, 0)
	v, ok := r.take()
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestReservoir_InterleavedKeepsFIFO(t *testing.T) {
	r := newReservoir[int](FIFO, 4)
	next := 0
	var got []int
	for round := 0; round < 10; round++ {
		for i := 0; i < 3; i++ {
			r.put(next)
			next++
		}
		for i := 0; i < 2; i++ {
			v, ok := r.take()
			require.True(t, ok)
			got = append(got, v)
		}
	}
	got = append(got, drain(r)...)

	require.Len(t, got, next)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestReservoir_Clear(t *testing.T) {
	r := newReservoir[int](FIFO, 0)
	for i := 0; i < 10; i++ {
		r.put(i)
	}

	r.Clear()
	assert.Equal(t, 0, r.Len())

	r.put(99)
	v, ok := r.take()
	require.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestCapacityHint(t *testing.T) {
	assert.Equal(t, 0, capacityHint(Config{}))
	assert.Equal(t, 12, capacityHint(Config{PrecacheCount: 12}))
	assert.Equal(t, 32, capacityHint(Config{PrecacheCount: 4, MaxAlive: Bounded(32)}))
	assert.Equal(t, 10, capacityHint(Config{PrecacheCount: 10, MaxAlive: Bounded(5)}))
	assert.Equal(t, DefaultCapacityHint, capacityHint(Config{MaxAlive: Bounded(1 << 20)}))
	assert.Equal(t, DefaultCapacityHint, capacityHint(Config{PrecacheCount: 5000}))
}
