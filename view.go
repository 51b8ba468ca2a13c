package livedom

import (
	"context"
	"fmt"
	"slices"

	"github.com/pthm/livedom/lib/dom"
)

// View renders the list into container and keeps it in step with every
// change. render is called once per item as it appears; the result may
// be any value Push accepts. The view stops and unregisters when the
// container is disposed.
//
// The container should hold nothing but the view's items.
func (v *StateVec[T]) View(container *Tag, render func(T) any) *Tag {
	q, items := v.subscribe()
	parent := container.node

	shadow := make([]*Node, 0, len(items))
	for i, x := range items {
		shadow = insertItem(parent, shadow, i, render(x))
	}

	parent.OnDispose(func() { v.unsubscribe(q) })
	parent.Go(func(ctx context.Context) {
		for {
			c, err := q.Receive(ctx)
			if err != nil {
				return
			}
			scheduler.Run(func() {
				if ctx.Err() == nil {
					shadow = replay(parent, shadow, c, render)
				}
			})
		}
	})
	return container
}

// replay applies c to the shadow list and the document. The shadow list
// mirrors the list exactly, so an index outside it means the view has
// lost track of the document; that is unrecoverable.
func replay[T any](parent *Node, shadow []*Node, c Change[T], render func(T) any) []*Node {
	switch c.Kind {
	case ChangePush, ChangeInsert:
		if c.Index < 0 || c.Index > len(shadow) {
			panic(fmt.Sprintf("livedom: view desync: %s at %d with %d rendered items", c.Kind, c.Index, len(shadow)))
		}
		return insertItem(parent, shadow, c.Index, render(c.Item))
	case ChangeRemove, ChangePop:
		if c.Index < 0 || c.Index >= len(shadow) {
			panic(fmt.Sprintf("livedom: view desync: %s at %d with %d rendered items", c.Kind, c.Index, len(shadow)))
		}
		n := shadow[c.Index]
		if err := parent.dom.RemoveChild(n.dom); err != nil {
			panic(fmt.Sprintf("livedom: view remove %d: %v", c.Index, err))
		}
		parent.Release(n)
		n.Dispose()
		return slices.Delete(shadow, c.Index, c.Index+1)
	default:
		panic(fmt.Sprintf("livedom: unknown change kind %d", c.Kind))
	}
}

func insertItem(parent *Node, shadow []*Node, i int, rendered any) []*Node {
	n := toNode(rendered)
	if n == nil {
		panic("livedom: view render returned nil")
	}
	var ref dom.Node
	if i < len(shadow) {
		ref = shadow[i].dom
	}
	if err := parent.dom.InsertBefore(n.dom, ref); err != nil {
		panic(fmt.Sprintf("livedom: view insert %d: %v", i, err))
	}
	parent.Adopt(n)
	return slices.Insert(shadow, i, n)
}
