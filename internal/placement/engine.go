package placement

import (
	"math"

	"github.com/piwi3910/KitchenCraft/internal/model"
)

// Drag is one input sample: the dragged item and its raw position.
type Drag struct {
	ItemID   string
	X, Z     float64
	Width    float64
	Depth    float64
	Rotation model.Rotation
}

// DragOf returns a drag sample for an instance moved to (x, z).
func DragOf(inst model.CabinetInstance, x, z float64) Drag {
	return Drag{
		ItemID:   inst.ID,
		X:        x,
		Z:        z,
		Width:    inst.Width,
		Depth:    inst.Depth,
		Rotation: inst.Rotation,
	}
}

// Engine resolves drag samples. It holds only its thresholds and is safe
// for concurrent use.
type Engine struct {
	cfg model.SnapSettings
}

// NewEngine creates an engine. Non-positive thresholds take their defaults.
func NewEngine(cfg model.SnapSettings) *Engine {
	return &Engine{cfg: cfg.WithDefaults()}
}

// Settings returns the effective thresholds.
func (e *Engine) Settings() model.SnapSettings { return e.cfg }

// Resolve runs the placement pipeline for one sample: wall snap, else
// cabinet snap, else grid; then clamp to the room and a single collision
// push. It is pure: identical inputs give identical results.
func (e *Engine) Resolve(s *Scene, d Drag) model.SnapResult {
	res := model.SnapResult{SnappedTo: model.SnapNone}
	res.Warnings = append(res.Warnings, s.warnings...)

	w, dp := d.Width, d.Depth
	if !model.ValidLength(w) || !model.ValidLength(dp) {
		fb := model.DefaultGlobalDimensions().Base
		res.Warnings = append(res.Warnings, model.NewWarning(model.CodeInvalidDimension,
			"dragged item %q is %vx%v, using %vx%v", d.ItemID, w, dp, fb.Width, fb.Depth))
		w, dp = fb.Width, fb.Depth
	}
	x, z := finite(d.X, s.width/2), finite(d.Z, s.depth/2)
	rot := d.Rotation
	if !rot.Valid() {
		rot = model.NormalizeRotation(float64(rot))
	}

	box := model.NewBoundingBox(x, z, w, dp, rot)

	if ws, ok := e.wallSnap(s, box, w, dp, rot); ok {
		box, rot = ws.box, ws.rotation
		res.SnappedTo, res.SnapEdge = model.SnapWall, ws.edge
	} else if cs, ok := e.cabinetSnap(s, d.ItemID, box); ok {
		box = cs.box
		res.SnappedTo, res.SnapEdge, res.SnappedItemID = model.SnapCabinet, cs.edge, cs.id
	} else {
		g := e.cfg.GridSize
		box = box.MoveTo(math.Round(box.CenterX/g)*g, math.Round(box.CenterZ/g)*g)
		res.SnappedTo = model.SnapGrid
	}

	box, out := clamp(s, box)
	if out {
		res.Warnings = append(res.Warnings, model.NewWarning(model.CodeOutOfBounds,
			"item %q (%vx%v) does not fit the %vx%v room", d.ItemID, box.Width(), box.Depth(), s.width, s.depth))
	}

	box, res.Pushed = e.push(s, d.ItemID, box)

	if id, hit := e.overlapping(s, d.ItemID, box); hit {
		res.UnresolvedCollision = true
		res.Warnings = append(res.Warnings, model.NewWarning(model.CodeUnresolvedCollision,
			"item %q still overlaps %q after push-back", d.ItemID, id))
	}

	res.X, res.Z, res.Rotation = box.CenterX, box.CenterZ, rot
	if len(res.Warnings) == 0 {
		res.Warnings = nil
	}
	return res
}

func finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// wall identifies one of the four room walls. Declaration order is the tie
// order.
type wall int

const (
	wallBack wall = iota
	wallLeft
	wallRight
	wallFront
)

// facing is the rotation an item backed against the wall takes.
func (w wall) facing() model.Rotation {
	switch w {
	case wallLeft:
		return model.Rotation90
	case wallRight:
		return model.Rotation270
	case wallFront:
		return model.Rotation180
	}
	return model.Rotation0
}

func (w wall) edge() model.Edge {
	switch w {
	case wallLeft:
		return model.EdgeLeft
	case wallRight:
		return model.EdgeRight
	case wallFront:
		return model.EdgeFront
	}
	return model.EdgeBack
}

// distance is the signed gap between the box and the wall's inner face.
// It goes negative when the box is dragged through the wall.
func (w wall) distance(s *Scene, b model.BoundingBox) float64 {
	switch w {
	case wallLeft:
		return b.Left
	case wallRight:
		return s.width - b.Right
	case wallFront:
		return s.depth - b.Front
	}
	return b.Back
}

// flush moves the box so its edge sits on the wall.
func (w wall) flush(s *Scene, b model.BoundingBox) model.BoundingBox {
	switch w {
	case wallLeft:
		return b.MoveTo(b.Width()/2, b.CenterZ)
	case wallRight:
		return b.MoveTo(s.width-b.Width()/2, b.CenterZ)
	case wallFront:
		return b.MoveTo(b.CenterX, s.depth-b.Depth()/2)
	}
	return b.MoveTo(b.CenterX, b.Depth()/2)
}

func (w wall) perpendicular() [2]wall {
	if w == wallBack || w == wallFront {
		return [2]wall{wallLeft, wallRight}
	}
	return [2]wall{wallBack, wallFront}
}

type wallHit struct {
	box      model.BoundingBox
	rotation model.Rotation
	edge     model.Edge
}

// wallSnap backs the item against the nearest wall within threshold, turned
// to face into the room. Only walls on the item's axis qualify: an item at
// 0 or 180 snaps to the back or front wall, at 90 or 270 to a side wall.
// A perpendicular wall within threshold is flushed too, so items settle
// into corners.
func (e *Engine) wallSnap(s *Scene, b model.BoundingBox, w, d float64, rot model.Rotation) (wallHit, bool) {
	th := e.cfg.WallSnapThreshold
	best, bestDist := wall(-1), math.Inf(1)
	for _, wl := range [...]wall{wallBack, wallLeft, wallRight, wallFront} {
		if rot.QuarterTurn() != wl.facing().QuarterTurn() {
			continue
		}
		dist := wl.distance(s, b)
		if dist < th && dist < bestDist {
			best, bestDist = wl, dist
		}
	}
	if best < 0 {
		return wallHit{}, false
	}

	rot = best.facing()
	box := best.flush(s, model.NewBoundingBox(b.CenterX, b.CenterZ, w, d, rot))

	corner, cornerDist := wall(-1), math.Inf(1)
	for _, pw := range best.perpendicular() {
		if dist := pw.distance(s, box); dist < th && dist < cornerDist {
			corner, cornerDist = pw, dist
		}
	}
	if corner >= 0 {
		box = corner.flush(s, box)
	}
	return wallHit{box: box, rotation: rot, edge: best.edge()}, true
}

type cabinetHit struct {
	box  model.BoundingBox
	edge model.Edge
	id   string
}

// cabinetSnap butts the item against the nearest neighbour edge within
// threshold. Only neighbours whose perpendicular span is within threshold
// qualify. The perpendicular edge is aligned when already close, so runs
// come out flush.
func (e *Engine) cabinetSnap(s *Scene, id string, b model.BoundingBox) (cabinetHit, bool) {
	th := e.cfg.CabinetSnapThreshold
	var best cabinetHit
	bestDist := math.Inf(1)
	for _, o := range s.obstacles {
		if o.ID == id {
			continue
		}
		ob := o.Box
		nearX := b.OverlapZ(ob) > -th
		nearZ := b.OverlapX(ob) > -th
		pairs := [...]struct {
			edge model.Edge
			dist float64
			ok   bool
		}{
			{model.EdgeRight, ob.Left - b.Right, nearX},
			{model.EdgeLeft, b.Left - ob.Right, nearX},
			{model.EdgeFront, ob.Back - b.Front, nearZ},
			{model.EdgeBack, b.Back - ob.Front, nearZ},
		}
		for _, p := range pairs {
			dist := math.Abs(p.dist)
			if !p.ok || dist >= th || dist >= bestDist {
				continue
			}
			bestDist = dist
			best = cabinetHit{box: butt(b, ob, p.edge, th), edge: p.edge, id: o.ID}
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// butt moves b so the given edge touches the neighbour with zero gap and
// aligns the perpendicular edge when it is within threshold.
func butt(b, o model.BoundingBox, edge model.Edge, th float64) model.BoundingBox {
	hw, hd := b.Width()/2, b.Depth()/2
	x, z := b.CenterX, b.CenterZ
	switch edge {
	case model.EdgeRight:
		x = o.Left - hw
	case model.EdgeLeft:
		x = o.Right + hw
	case model.EdgeFront:
		z = o.Back - hd
	case model.EdgeBack:
		z = o.Front + hd
	}
	switch edge {
	case model.EdgeRight, model.EdgeLeft:
		if math.Abs(b.Back-o.Back) < th {
			z = o.Back + hd
		}
	default:
		if math.Abs(b.Left-o.Left) < th {
			x = o.Left + hw
		}
	}
	return b.MoveTo(x, z)
}

// clamp keeps the box inside the room. An item larger than the room on an
// axis is centred on that axis and reported.
func clamp(s *Scene, b model.BoundingBox) (model.BoundingBox, bool) {
	x, outX := clampAxis(b.CenterX, b.Width(), s.width)
	z, outZ := clampAxis(b.CenterZ, b.Depth(), s.depth)
	return b.MoveTo(x, z), outX || outZ
}

func clampAxis(c, size, span float64) (float64, bool) {
	if size > span {
		return span / 2, true
	}
	return math.Min(math.Max(c, size/2), span-size/2), false
}

// push makes one pass over the obstacles in order. Each overlapping
// obstacle pushes the box out along the axis of least penetration, plus the
// margin. Obstacles already passed are not rechecked.
func (e *Engine) push(s *Scene, id string, b model.BoundingBox) (model.BoundingBox, bool) {
	pad, margin := e.cfg.CollisionPadding, e.cfg.PushMargin
	pushed := false
	for _, o := range s.obstacles {
		if o.ID == id || !b.Overlaps(o.Box, pad) {
			continue
		}
		ob := o.Box
		moves := [...]struct{ dx, dz, depth float64 }{
			{dx: -1, depth: b.Right - ob.Left},
			{dx: 1, depth: ob.Right - b.Left},
			{dz: -1, depth: b.Front - ob.Back},
			{dz: 1, depth: ob.Front - b.Back},
		}
		m := moves[0]
		for _, c := range moves[1:] {
			if c.depth < m.depth {
				m = c
			}
		}
		step := m.depth + margin
		b = b.MoveTo(b.CenterX+m.dx*step, b.CenterZ+m.dz*step)
		b, _ = clamp(s, b)
		pushed = true
	}
	return b, pushed
}

// overlapping returns the first obstacle the box still overlaps.
func (e *Engine) overlapping(s *Scene, id string, b model.BoundingBox) (string, bool) {
	for _, o := range s.obstacles {
		if o.ID != id && b.Overlaps(o.Box, e.cfg.CollisionPadding) {
			return o.ID, true
		}
	}
	return "", false
}
