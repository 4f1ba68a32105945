package graft

// Signal is a node-scoped publish point that dispatches to its handlers
// synchronously, in connect order, on every Emit. The zero value is ready
// to use.
//
// Dispatch is reentrant: a handler may read matrices (forcing recomputes),
// emit other signals, and connect or disconnect handlers, including itself.
// Handlers connected during an Emit are not invoked by that Emit; handlers
// disconnected during an Emit are skipped if not yet reached. Signals are
// not safe for concurrent use.
type Signal struct {
	handlers []signalHandler
	nextID   uint32
	emitting int
	removed  bool
}

type signalHandler struct {
	id uint32
	fn func()
}

// Connect registers fn and returns a connection id for Disconnect.
func (s *Signal) Connect(fn func()) uint32 {
	s.nextID++
	s.handlers = append(s.handlers, signalHandler{id: s.nextID, fn: fn})
	return s.nextID
}

// Disconnect removes the handler registered under id. Unknown ids are
// ignored, so disconnecting twice is harmless.
func (s *Signal) Disconnect(id uint32) {
	for i := range s.handlers {
		if s.handlers[i].id != id {
			continue
		}
		if s.emitting > 0 {
			// Mid-dispatch: nil the slot so the running Emit skips it,
			// compact once the outermost Emit returns.
			s.handlers[i].fn = nil
			s.removed = true
		} else {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
		}
		return
	}
}

// Emit invokes every connected handler.
func (s *Signal) Emit() {
	s.emitting++
	// Handlers appended during dispatch are not part of this emit.
	n := len(s.handlers)
	for i := 0; i < n; i++ {
		if fn := s.handlers[i].fn; fn != nil {
			fn()
		}
	}
	s.emitting--
	if s.emitting == 0 && s.removed {
		s.compact()
	}
}

func (s *Signal) compact() {
	live := s.handlers[:0]
	for _, h := range s.handlers {
		if h.fn != nil {
			live = append(live, h)
		}
	}
	// Clear the tail so dropped handlers are not retained.
	for i := len(live); i < len(s.handlers); i++ {
		s.handlers[i] = signalHandler{}
	}
	s.handlers = live
	s.removed = false
}

// NumHandlers returns the number of connected handlers.
func (s *Signal) NumHandlers() int {
	if s.emitting > 0 && s.removed {
		n := 0
		for _, h := range s.handlers {
			if h.fn != nil {
				n++
			}
		}
		return n
	}
	return len(s.handlers)
}
