// Package placement resolves a dragged cabinet's raw room-space position
// into a snapped, clamped and collision-free placement, and runs the drag
// session state machine around it.
package placement

import (
	"github.com/piwi3910/KitchenCraft/internal/model"
)

// Obstacle is a placed item the dragged item must not overlap.
type Obstacle struct {
	ID  string
	Box model.BoundingBox
}

// Scene is the read-only view of the room and the placed items for one
// drag. Obstacle boxes are computed once, not per comparison.
type Scene struct {
	width, depth float64
	obstacles    []Obstacle
	warnings     []model.Warning
}

// NewScene builds a scene from the room and the placed instances. Items
// keep their list order, which breaks snap ties.
func NewScene(room model.RoomConfig, items []model.CabinetInstance) *Scene {
	s := &Scene{width: room.Width, depth: room.Depth}
	def := model.DefaultRoom()
	if !model.ValidLength(s.width) || !model.ValidLength(s.depth) {
		s.warnings = append(s.warnings, model.NewWarning(model.CodeInvalidDimension,
			"room %vx%v is not usable, using %vx%v", room.Width, room.Depth, def.Width, def.Depth))
		s.width, s.depth = def.Width, def.Depth
	}
	if room.Shape == model.RoomLShape {
		s.warnings = append(s.warnings, model.NewWarning(model.CodeRoomShapeApproximate,
			"l-shaped room treated as its %vx%v bounding rectangle", s.width, s.depth))
	}

	s.obstacles = make([]Obstacle, 0, len(items))
	fb := model.DefaultGlobalDimensions().Base
	for _, it := range items {
		if !model.ValidLength(it.Width) || !model.ValidLength(it.Depth) {
			s.warnings = append(s.warnings, model.NewWarning(model.CodeInvalidDimension,
				"placed item %q is %vx%v, using base defaults for the bad sides", it.ID, it.Width, it.Depth))
			if !model.ValidLength(it.Width) {
				it.Width = fb.Width
			}
			if !model.ValidLength(it.Depth) {
				it.Depth = fb.Depth
			}
		}
		s.obstacles = append(s.obstacles, Obstacle{ID: it.ID, Box: it.Bounds()})
	}
	return s
}

// Width returns the room width used for snapping and clamping.
func (s *Scene) Width() float64 { return s.width }

// Depth returns the room depth used for snapping and clamping.
func (s *Scene) Depth() float64 { return s.depth }

// Obstacles returns the placed items in list order.
func (s *Scene) Obstacles() []Obstacle { return s.obstacles }
