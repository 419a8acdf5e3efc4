package assembly

import (
	"math"

	"github.com/piwi3910/KitchenCraft/internal/model"
)

const (
	// LegSize is the square section of an adjustable leg.
	LegSize = 40.0
	// LegInset is the distance from the footprint edge to a leg centre.
	LegInset = 50.0
	// midLegWidth is the width above which rectangular carcasses get a
	// front and back leg at mid-span.
	midLegWidth = 800.0
)

// kickAndLegs adds the recessed plinth board and the legs under a
// floor-standing carcass.
func (b *builder) kickAndLegs(corner model.CornerType) {
	if b.kick <= 0 {
		return
	}
	tk := b.rec.ToeKick
	y := -b.h/2 + b.kick/2

	switch corner {
	case model.CornerLShape, model.CornerDiagonal:
		g := b.cornerLayout(corner)
		b.cornerPlinth(corner, g, y)
		for i, p := range cornerLegPoints(corner, g, b.w, b.d) {
			b.leg(i, p, y)
		}
	default:
		b.add(box(model.PartPlinth, "plinth",
			model.Vec3{X: b.w, Y: b.kick, Z: b.t},
			model.Vec3{Y: y, Z: b.d/2 - tk.Setback - b.t/2}))
		for i, p := range rectLegPoints(b.w, b.d, tk.Setback) {
			b.leg(i, p, y)
		}
	}
}

func (b *builder) leg(i int, p model.Point2D, y float64) {
	part := box(model.PartLeg, legName(i),
		model.Vec3{X: LegSize, Y: b.kick, Z: LegSize},
		model.Vec3{X: p.X, Y: y, Z: p.Y})
	b.add(part)
}

func legName(i int) string {
	return "leg " + string(rune('A'+i))
}

// rectLegPoints returns leg positions for a rectangular carcass: the four
// corners plus a mid-span pair on wide cabinets. Front legs sit behind the
// plinth board.
func rectLegPoints(w, d, plinthSetback float64) []model.Point2D {
	xl, xr := -w/2+LegInset, w/2-LegInset
	zb := -d/2 + LegInset
	zf := math.Max(d/2-plinthSetback-LegSize, zb)
	pts := []model.Point2D{{X: xl, Y: zb}, {X: xr, Y: zb}, {X: xl, Y: zf}, {X: xr, Y: zf}}
	if w > midLegWidth {
		pts = append(pts, model.Point2D{X: 0, Y: zb}, model.Point2D{X: 0, Y: zf})
	}
	return pts
}

// cornerLegPoints returns leg positions following both arms of a corner
// carcass. L-shapes get seven, diagonals six.
func cornerLegPoints(style model.CornerType, g cornerGeometry, w, d float64) []model.Point2D {
	hw, hd := w/2, d/2
	i := LegInset
	pts := []model.Point2D{
		{X: -hw + i, Y: -hd + i},             // outer corner
		{X: hw - i, Y: -hd + i},              // right arm end, back
		{X: hw - i, Y: -hd + g.rightArm - i}, // right arm end, front
		{X: -hw + i, Y: hd - i},              // left arm end, side
		{X: -hw + g.leftArm - i, Y: hd - i},  // left arm end, front
	}
	if style == model.CornerDiagonal {
		mid := midpoint(g.p1, g.p2)
		nx, nz := diagonalNormal(g)
		return append(pts, model.Point2D{X: mid.X - nx*i, Y: mid.Y - nz*i})
	}
	return append(pts,
		model.Point2D{X: g.inner.X - i, Y: g.inner.Y - i}, // inner corner
		model.Point2D{X: 0, Y: -hd + i},                   // back mid-span
	)
}

// cornerPlinth adds plinth boards recessed behind the arm fronts.
func (b *builder) cornerPlinth(style model.CornerType, g cornerGeometry, y float64) {
	s := b.rec.ToeKick.Setback
	hw, hd := b.w/2, b.d/2
	if style == model.CornerDiagonal {
		mid := midpoint(g.p1, g.p2)
		nx, nz := diagonalNormal(g)
		length := math.Hypot(g.p2.X-g.p1.X, g.p2.Y-g.p1.Y)
		p := box(model.PartPlinth, "diagonal plinth",
			model.Vec3{X: length, Y: b.kick, Z: b.t},
			model.Vec3{X: mid.X - nx*(s+b.t/2), Y: y, Z: mid.Y - nz*(s+b.t/2)})
		p.Rotation = model.Vec3{Y: 45}
		b.add(p)
		return
	}
	// Right arm plinth runs from the inner corner to the right end.
	zr := g.inner.Y - s - b.t/2
	b.add(box(model.PartPlinth, "right arm plinth",
		model.Vec3{X: hw - (g.inner.X - s), Y: b.kick, Z: b.t},
		model.Vec3{X: (g.inner.X - s + hw) / 2, Y: y, Z: zr}))
	// Left arm plinth runs from the inner corner plinth to the front end.
	xl := g.inner.X - s - b.t/2
	b.add(box(model.PartPlinth, "left arm plinth",
		model.Vec3{X: b.t, Y: b.kick, Z: hd - zr},
		model.Vec3{X: xl, Y: y, Z: (zr + hd) / 2}))
}

func midpoint(a, b model.Point2D) model.Point2D {
	return model.Point2D{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// diagonalNormal returns the unit normal of the diagonal front pointing out
// of the cabinet, away from the room corner.
func diagonalNormal(g cornerGeometry) (float64, float64) {
	dx, dz := g.p2.X-g.p1.X, g.p2.Y-g.p1.Y
	l := math.Hypot(dx, dz)
	if l == 0 {
		return math.Sqrt2 / 2, math.Sqrt2 / 2
	}
	// Rotate the P1->P2 direction a quarter turn towards +X/+Z.
	return -dz / l, dx / l
}
