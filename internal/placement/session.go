package placement

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/KitchenCraft/internal/model"
)

// State is the drag session state.
type State int

const (
	Idle State = iota
	PendingDrag
	Dragging
)

func (s State) String() string {
	switch s {
	case PendingDrag:
		return "pending"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Session tracks one drag of one item: Idle -> PendingDrag -> Dragging ->
// Idle. Nothing is applied to the item until Confirm, and a press that never
// crosses the drag threshold is a click, not a move. A Session is not safe
// for concurrent use.
type Session struct {
	engine *Engine
	logger *log.Logger

	state  State
	scene  *Scene
	item   model.CabinetInstance
	startX float64
	startZ float64
	last   model.SnapResult
	moved  bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates an idle session using engine e.
func NewSession(e *Engine, opts ...Option) *Session {
	s := &Session{engine: e, logger: log.New(io.Discard)}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Item returns the item being dragged, unchanged.
func (s *Session) Item() model.CabinetInstance { return s.item }

// Begin starts a press on item at pointer position (x, z). A drag already
// in progress is discarded.
func (s *Session) Begin(scene *Scene, item model.CabinetInstance, x, z float64) {
	if s.state != Idle {
		s.logger.Debug("drag discarded by new press", "item", s.item.ID, "state", s.state)
	}
	s.scene = scene
	s.item = item
	s.startX, s.startZ = x, z
	s.last = model.SnapResult{}
	s.moved = false
	s.transition(PendingDrag)
}

// Move feeds a pointer sample. It returns a result only once the pointer
// has moved at least the drag threshold from the press; the item's centre
// follows the pointer by the same offset.
func (s *Session) Move(x, z float64) (model.SnapResult, bool) {
	switch s.state {
	case Idle:
		return model.SnapResult{}, false
	case PendingDrag:
		if math.Hypot(x-s.startX, z-s.startZ) < s.engine.cfg.DragThreshold {
			return model.SnapResult{}, false
		}
		s.transition(Dragging)
	}

	d := DragOf(s.item, s.item.Position.X+x-s.startX, s.item.Position.Z+z-s.startZ)
	s.last = s.engine.Resolve(s.scene, d)
	s.moved = true
	return s.last, true
}

// Last returns the most recent result of this drag.
func (s *Session) Last() (model.SnapResult, bool) {
	return s.last, s.moved
}

// Confirm ends the session. From Dragging it returns a copy of the item at
// the last resolved placement; a press that never became a drag returns
// false and leaves the item untouched.
func (s *Session) Confirm() (model.CabinetInstance, bool) {
	defer s.reset()
	if s.state != Dragging || !s.moved {
		s.logger.Debug("press ended without drag", "item", s.item.ID)
		return model.CabinetInstance{}, false
	}
	r := s.last
	s.logger.Debug("drag confirmed", "item", s.item.ID, "x", r.X, "z", r.Z,
		"rotation", int(r.Rotation), "snapped_to", r.SnappedTo)
	return s.item.Moved(r.X, r.Z, r.Rotation), true
}

// Cancel discards the drag.
func (s *Session) Cancel() {
	if s.state != Idle {
		s.logger.Debug("drag cancelled", "item", s.item.ID)
	}
	s.reset()
}

func (s *Session) reset() {
	s.scene = nil
	s.item = model.CabinetInstance{}
	s.last = model.SnapResult{}
	s.moved = false
	s.transition(Idle)
}

func (s *Session) transition(to State) {
	if s.state == to {
		return
	}
	s.logger.Debug("drag state", "from", s.state, "to", to)
	s.state = to
}
