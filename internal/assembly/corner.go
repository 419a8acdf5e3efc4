package assembly

import (
	"math"

	"github.com/piwi3910/KitchenCraft/internal/model"
)

// DiagonalDoorRatio scales the cabinet width to the diagonal door width.
const DiagonalDoorRatio = 0.35

// DiagonalDoorWidth is the door width of a diagonal corner of width w.
func DiagonalDoorWidth(w float64) float64 {
	return math.Sqrt2 * w * DiagonalDoorRatio
}

// cornerShelves adds shaped shelves to L-shaped and diagonal corners. Each
// shelf carries the carcass footprint as its outline.
func (b *builder) cornerShelves(style model.CornerType) {
	s := b.rec.Shelves
	if s.Count <= 0 {
		return
	}
	c := b.rec.Carcass
	g := b.cornerLayout(style)
	bottom := b.carcassBottom + c.BottomThickness
	top := b.carcassTop
	if b.hasTop() {
		top -= c.TopThickness
	}
	span := (top - bottom) / float64(s.Count+1)
	if span <= 0 {
		return
	}
	for i := 1; i <= s.Count; i++ {
		p := box(model.PartShelf, "corner shelf",
			model.Vec3{X: b.w - 2*b.t, Y: b.t, Z: b.d - c.BackSetback - s.Setback},
			model.Vec3{Y: bottom + float64(i)*span})
		p.Adjustable = s.Adjustable
		p.Outline = g.outline
		b.add(p)
	}
}

// cornerFronts adds the doors of L-shaped and diagonal corners.
func (b *builder) cornerFronts(style model.CornerType) {
	rv := b.rec.Reveals
	g := b.cornerLayout(style)
	hw, hd := b.w/2, b.d/2
	bottom := b.carcassBottom + rv.Bottom
	h := (b.carcassTop - rv.Top) - bottom
	y := bottom + h/2
	offset := ShadowGap + b.ft/2

	if style == model.CornerDiagonal {
		mid := midpoint(g.p1, g.p2)
		nx, nz := diagonalNormal(g)
		b.door("diagonal door", DiagonalDoorWidth(b.w), h,
			model.Vec3{X: mid.X + nx*offset, Y: y, Z: mid.Y + nz*offset},
			b.in.Overrides.HingeSide.Or(model.SideLeft), 45)
		return
	}

	// Left arm door faces +X and spans from the inner corner to the front.
	// Its hinge is at the front end, away from the inner corner.
	z0 := g.inner.Y + rv.DoorGap/2
	lw := (hd - rv.Side) - z0
	b.door("left arm door", lw, h,
		model.Vec3{X: g.inner.X + offset, Y: y, Z: z0 + lw/2},
		model.SideLeft, 90)

	// Right arm door faces +Z and starts clear of the left arm door.
	x0 := g.inner.X + ShadowGap + b.ft + rv.DoorGap/2
	rw := (hw - rv.Side) - x0
	b.door("right arm door", rw, h,
		model.Vec3{X: x0 + rw/2, Y: y, Z: g.inner.Y + offset},
		model.SideRight, 0)
}

// blindFronts fills a blind corner's opening: a blind panel over the blind
// portion, an optional face filler and return filler, and a single door on
// the open side hinged next to the blind portion.
func (b *builder) blindFronts(r region, topReveal, bottomReveal float64) {
	rv := b.rec.Reveals
	cc := b.rec.Front.Corner
	side := b.in.Overrides.BlindSide.Or(model.SideLeft)

	blind := cc.BlindDepth
	if !model.ValidLength(blind) || blind > r.width()-minDoorWidth {
		blind = r.width() / 2
	}
	filler := cc.FillerWidth
	if !model.ValidLength(filler) || filler >= blind {
		filler = 0
	}

	h := r.height() - topReveal - bottomReveal
	y := r.bottom + bottomReveal + h/2
	z := b.frontZ()

	// Work in distances from the blind-side edge and mirror for the right.
	at := func(d float64) float64 {
		if side == model.SideRight {
			return r.right - d
		}
		return r.left + d
	}

	panelW := blind - filler - rv.Side - rv.DoorGap/2
	if panelW > 0 {
		b.add(box(model.PartBlindPanel, "blind panel",
			model.Vec3{X: panelW, Y: h, Z: b.ft},
			model.Vec3{X: at(rv.Side + panelW/2), Y: y, Z: z}))
	}
	if filler > 0 {
		b.add(box(model.PartFiller, "corner filler",
			model.Vec3{X: filler, Y: h, Z: b.ft},
			model.Vec3{X: at(blind - filler/2), Y: y, Z: z}))
		if cc.ReturnFiller {
			b.add(box(model.PartReturnFiller, "return filler",
				model.Vec3{X: b.ft, Y: h, Z: filler},
				model.Vec3{X: at(blind - filler + b.ft/2), Y: y, Z: z + b.ft/2 + filler/2}))
		}
	}

	doorW := r.width() - blind - rv.Side - rv.DoorGap/2
	b.door("door", doorW, h,
		model.Vec3{X: at(blind + rv.DoorGap/2 + doorW/2), Y: y, Z: z},
		side, 0)
}

// minDoorWidth is the narrowest door a blind corner leaves open.
const minDoorWidth = 150.0
