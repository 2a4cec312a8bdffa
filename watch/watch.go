/*
Package watch broadcasts the rebalancing activity of an AVL tree.

A Monitor is attached to a tree and publishes every rotation the tree
performs. Any number of clients may subscribe and will receive the
rotations on a channel of their own:

	m, _ := watch.Attach(ctx, tree)
	defer m.Close()
	rotations, _ := m.Subscribe(ctx, 16)
	go func() {
	    for r := range rotations {
	        log.Printf("%s rotation at %v", r.Direction, r.Pivot)
	    }
	}()

Publishing is synchronous with the tree operation causing the rotation. A
subscriber which does not drain its channel will therefore stall operations
on the tree as soon as its buffer is full, until the subscriber's context is
cancelled.

A monitor follows its tree only. Trees resulting from a split do not inherit
the rotation hook.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package watch

import (
	"context"
	"errors"

	"github.com/guiguan/caster"
	"github.com/npillmayer/avl"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrClosed is returned when subscribing to a monitor which has been closed.
var ErrClosed = errors.New("watch: monitor is closed")

// Monitor publishes the rotations of a single tree.
type Monitor[K, V any] struct {
	tree *avl.Tree[K, V]
	prev func(avl.Rotation[K]) // hook installed before attaching
	cast *caster.Caster        // broadcaster for rotation events
}

// Attach installs a monitor on tree. A rotation hook present on tree is kept
// and called before publishing. The monitor stops broadcasting when ctx is
// done or Close is called.
func Attach[K, V any](ctx context.Context, tree *avl.Tree[K, V]) (*Monitor[K, V], error) {
	if tree == nil {
		return nil, avl.ErrIllegalArguments
	}
	m := &Monitor[K, V]{
		tree: tree,
		prev: tree.Config().OnRotate,
		cast: caster.New(ctx),
	}
	tree.OnRotate(m.publish)
	T().Debugf("watch: attached monitor to tree of size %d", tree.Size())
	return m, nil
}

func (m *Monitor[K, V]) publish(r avl.Rotation[K]) {
	if m.prev != nil {
		m.prev(r)
	}
	if !m.cast.Pub(r) {
		T().Debugf("watch: dropped %s rotation, broadcaster is closed", r.Direction)
	}
}

// Subscribe returns a channel on which the rotations of the monitored tree
// are delivered. capacity is the buffer size of the channel. The channel is
// closed when ctx is done or the monitor is closed. Subscribing to a closed
// monitor returns ErrClosed.
//
// Cancelling ctx releases a tree stalled by this subscriber.
func (m *Monitor[K, V]) Subscribe(ctx context.Context, capacity uint) (<-chan avl.Rotation[K], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-m.cast.Done():
		return nil, ErrClosed
	default:
	}
	sub, ok := m.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	out := make(chan avl.Rotation[K], capacity)
	go func() {
		forward[K](ctx, sub, out)
		close(out)
		// the broadcaster may be blocked delivering to sub; it drops the
		// subscription on its next message once ctx is done
		for range sub {
		}
	}()
	return out, nil
}

// forward copies rotations from sub to out until sub is closed or ctx is done.
func forward[K any](ctx context.Context, sub <-chan interface{}, out chan<- avl.Rotation[K]) {
	for {
		select {
		case msg, ok := <-sub:
			if !ok {
				return
			}
			r, ok := msg.(avl.Rotation[K])
			if !ok {
				continue
			}
			select {
			case out <- r:
			case <-ctx.Done():
				T().Debugf("watch: subscriber gone, dropping %s rotation", r.Direction)
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Done returns a channel which is closed as soon as the monitor stops
// broadcasting.
func (m *Monitor[K, V]) Done() <-chan struct{} {
	return m.cast.Done()
}

// Close detaches the monitor from its tree and closes all subscriptions.
// The tree's previous rotation hook is restored. Close returns false if the
// monitor has already been closed.
func (m *Monitor[K, V]) Close() bool {
	m.tree.OnRotate(m.prev)
	return m.cast.Close()
}
