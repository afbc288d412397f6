package dom

// AddEventListener implements EventTarget. Listeners run in registration
// order; a nil listener is ignored.
func (e *HTMLElement) AddEventListener(event string, fn Listener) {
	if fn == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[event] = append(e.listeners[event], fn)
}

// ListenerCount returns the number of listeners registered for event.
func (e *HTMLElement) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// Dispatch delivers ev to the element's listeners for ev.Type, then to the
// legacy handler property if one is set. Target defaults to e.
// It returns the number of callbacks invoked.
func (e *HTMLElement) Dispatch(ev *Event) int {
	if ev == nil {
		return 0
	}
	if ev.Target == nil {
		ev.Target = e
	}

	// Listeners added during dispatch run on the next event only.
	listeners := append([]Listener(nil), e.listeners[ev.Type]...)
	for _, fn := range listeners {
		fn(ev)
	}
	n := len(listeners)
	if h, ok := e.handlers[ev.Type]; ok {
		h(ev)
		n++
	}
	return n
}
