// Package pool provides example usage of the object pool.
package pool_test

import (
	"fmt"

	"github.com/ajitpratap0/objectpool/pkg/pool"
)

// Buffer resets itself when it comes back to the pool.
type Buffer struct {
	data []byte
}

func (b *Buffer) PreGetFromPool() error {
	return nil
}

func (b *Buffer) PreReturnToPool() error {
	b.data = b.data[:0]
	return nil
}

// Example demonstrates precaching and recycling with a bounded pool.
func Example() {
	buffers := pool.MustNew[*Buffer](
		pool.StaticConfig[*Buffer]{PrecacheCount: 2, MaxAlive: pool.Bounded(2)},
		func() *Buffer { return &Buffer{data: make([]byte, 0, 1024)} },
	)
	fmt.Printf("Idle after construction: %d\n", buffers.Len())
	fmt.Printf("Dispatch: %s\n", buffers.Dispatch())

	buf, _ := buffers.Get()
	buf.data = append(buf.data, "Hello, pool!"...)
	fmt.Printf("Buffer contains: %s\n", buf.data)

	_ = buffers.Return(buf)
	fmt.Printf("Idle after return: %d\n", buffers.Len())

	// Output:
	// Idle after construction: 2
	// Dispatch: capability
	// Buffer contains: Hello, pool!
	// Idle after return: 2
}

// ExampleWithPreReturn shows hooks supplied by the caller for a type that
// declares none itself.
func ExampleWithPreReturn() {
	type point struct{ x, y int }

	points := pool.MustNew[*point](
		pool.StaticConfig[*point]{MaxAlive: pool.Unbounded()},
		nil,
		pool.WithPreReturn(func(p *point) error {
			*p = point{}
			return nil
		}),
	)

	p, _ := points.Get()
	p.x, p.y = 3, 4
	_ = points.Return(p)

	again, _ := points.Get()
	fmt.Println(again == p, again.x, again.y)

	// Output:
	// true 0 0
}

// ExampleCapacityFromCount shows how integer config values map to capacities.
func ExampleCapacityFromCount() {
	for _, n := range []int{128, 0, -1} {
		fmt.Println(pool.CapacityFromCount(n))
	}

	// Output:
	// 128
	// unbounded
	// unbounded
}
