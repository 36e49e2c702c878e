// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package viewport provides scoped scroll and resize subscriptions.
// Listeners are owned by the component that registers them and must be
// released when that component is torn down.
package viewport

import (
	"sync"
)

// Viewport is the visible area of the page in CSS pixels.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ScrollEvent reports the vertical scroll offset of the document.
type ScrollEvent struct {
	Offset float64
}

// ResizeEvent reports the new viewport dimensions.
type ResizeEvent struct {
	Width  int
	Height int
}

// Viewport returns the event dimensions as a Viewport.
func (e ResizeEvent) Viewport() Viewport {
	return Viewport{Width: e.Width, Height: e.Height}
}

type eventKind int

const (
	kindScroll eventKind = iota
	kindResize
)

type listener struct {
	id       uint64
	kind     eventKind
	onScroll func(ScrollEvent)
	onResize func(ResizeEvent)
}

// Bus dispatches viewport events to registered listeners.
// It is safe for concurrent use; listeners run on the emitting goroutine.
type Bus struct {
	mu        sync.Mutex
	nextID    uint64
	listeners []listener
	size      Viewport
	offset    float64
}

// NewBus creates a bus with the given initial viewport.
func NewBus(initial Viewport) *Bus {
	return &Bus{size: initial}
}

// Subscription is a handle to a registered listener.
type Subscription struct {
	bus  *Bus
	id   uint64
	once sync.Once
}

// Release deregisters the listener. Calling Release more than once is safe.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.bus.remove(s.id)
	})
}

// OnScroll registers fn for scroll events.
func (b *Bus) OnScroll(fn func(ScrollEvent)) *Subscription {
	return b.add(listener{kind: kindScroll, onScroll: fn})
}

// OnResize registers fn for resize events.
func (b *Bus) OnResize(fn func(ResizeEvent)) *Subscription {
	return b.add(listener{kind: kindResize, onResize: fn})
}

// EmitScroll records the offset and delivers it to the scroll listeners
// registered at the time of the call, in registration order.
func (b *Bus) EmitScroll(offset float64) {
	b.mu.Lock()
	b.offset = offset
	targets := b.snapshot(kindScroll)
	b.mu.Unlock()

	ev := ScrollEvent{Offset: offset}
	for _, l := range targets {
		l.onScroll(ev)
	}
}

// EmitResize records the size and delivers it to the resize listeners
// registered at the time of the call, in registration order.
func (b *Bus) EmitResize(width, height int) {
	b.mu.Lock()
	b.size = Viewport{Width: width, Height: height}
	targets := b.snapshot(kindResize)
	b.mu.Unlock()

	ev := ResizeEvent{Width: width, Height: height}
	for _, l := range targets {
		l.onResize(ev)
	}
}

// Size returns the last known viewport.
func (b *Bus) Size() Viewport {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Offset returns the last known scroll offset.
func (b *Bus) Offset() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.offset
}

// Listeners returns the number of live subscriptions.
func (b *Bus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

func (b *Bus) add(l listener) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	l.id = b.nextID
	b.listeners = append(b.listeners, l)
	return &Subscription{bus: b, id: l.id}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, l := range b.listeners {
		if l.id == id {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// snapshot must be called with b.mu held.
func (b *Bus) snapshot(kind eventKind) []listener {
	var out []listener
	for _, l := range b.listeners {
		if l.kind == kind {
			out = append(out, l)
		}
	}
	return out
}
