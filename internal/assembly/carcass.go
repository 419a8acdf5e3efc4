package assembly

import (
	"math"

	"github.com/piwi3910/KitchenCraft/internal/model"
)

// backPanelZ returns the Z centre of a back panel inset by the setback.
func (b *builder) backPanelZ() float64 {
	c := b.rec.Carcass
	z := -b.d/2 + c.BackSetback - c.BackThickness/2
	return math.Max(z, -b.d/2+c.BackThickness/2)
}

// carcass adds the rectangular carcass: two gables, bottom, back and, for
// wall and tall cabinets, a top.
func (b *builder) carcass() {
	c := b.rec.Carcass
	hc := b.carcassHeight()
	yc := b.carcassCenterY()
	wi := b.w - 2*b.t
	panelDepth := b.d - c.BackSetback

	b.add(box(model.PartGable, "left gable",
		model.Vec3{X: b.t, Y: hc, Z: b.d},
		model.Vec3{X: -b.w/2 + b.t/2, Y: yc}))
	b.add(box(model.PartGable, "right gable",
		model.Vec3{X: b.t, Y: hc, Z: b.d},
		model.Vec3{X: b.w/2 - b.t/2, Y: yc}))

	b.add(box(model.PartBottom, "bottom",
		model.Vec3{X: wi, Y: c.BottomThickness, Z: panelDepth},
		model.Vec3{Y: b.carcassBottom + c.BottomThickness/2, Z: c.BackSetback / 2}))

	b.add(box(model.PartBack, "back",
		model.Vec3{X: wi, Y: hc, Z: c.BackThickness},
		model.Vec3{Y: yc, Z: b.backPanelZ()}))

	if b.hasTop() {
		b.add(box(model.PartTop, "top",
			model.Vec3{X: wi, Y: c.TopThickness, Z: panelDepth},
			model.Vec3{Y: b.carcassTop - c.TopThickness/2, Z: c.BackSetback / 2}))
	}
}

// cornerGeometry holds the plan-view layout of L-shaped and diagonal corner
// carcasses.
type cornerGeometry struct {
	leftArm  float64 // X extent of the arm along the left side
	rightArm float64 // Z extent of the arm along the back
	inner    model.Point2D
	outline  model.Outline
	// diagonal front end points, P1 at the left arm's front, P2 at the right arm's end
	p1, p2 model.Point2D
}

// cornerLayout clamps the arm depths to the footprint and builds the plan
// outline. Points are (X, Z).
func (b *builder) cornerLayout(style model.CornerType) cornerGeometry {
	cc := b.rec.Front.Corner
	la := clampArm(cc.LeftArmDepth, b.w)
	ra := clampArm(cc.RightArmDepth, b.d)
	hw, hd := b.w/2, b.d/2

	g := cornerGeometry{
		leftArm:  la,
		rightArm: ra,
		inner:    model.Point2D{X: -hw + la, Y: -hd + ra},
		p1:       model.Point2D{X: -hw + la, Y: hd},
		p2:       model.Point2D{X: hw, Y: -hd + ra},
	}
	if style == model.CornerDiagonal {
		g.outline = model.Outline{{X: -hw, Y: -hd}, {X: hw, Y: -hd}, g.p2, g.p1, {X: -hw, Y: hd}}
	} else {
		g.outline = model.Outline{
			{X: -hw, Y: -hd}, {X: hw, Y: -hd}, {X: hw, Y: -hd + ra},
			g.inner, {X: -hw + la, Y: hd}, {X: -hw, Y: hd},
		}
	}
	return g
}

// clampArm keeps an arm depth inside the footprint with room for the other
// arm's opening.
func clampArm(arm, span float64) float64 {
	limit := span * 0.8
	if !model.ValidLength(arm) {
		return span / 2
	}
	return math.Min(arm, limit)
}

// cornerCarcass adds the corner-carcass variant: end gables on each arm,
// backs along both walls and a shaped bottom (and top).
func (b *builder) cornerCarcass(style model.CornerType) {
	c := b.rec.Carcass
	g := b.cornerLayout(style)
	hc := b.carcassHeight()
	yc := b.carcassCenterY()
	hw, hd := b.w/2, b.d/2

	b.add(box(model.PartCornerGable, "left arm end gable",
		model.Vec3{X: g.leftArm, Y: hc, Z: b.t},
		model.Vec3{X: -hw + g.leftArm/2, Y: yc, Z: hd - b.t/2}))
	b.add(box(model.PartCornerGable, "right arm end gable",
		model.Vec3{X: b.t, Y: hc, Z: g.rightArm},
		model.Vec3{X: hw - b.t/2, Y: yc, Z: -hd + g.rightArm/2}))

	backFace := -hd + c.BackSetback
	sideFace := -hw + c.BackSetback
	b.add(box(model.PartCornerBack, "back wall back",
		model.Vec3{X: (hw - b.t) - sideFace, Y: hc, Z: c.BackThickness},
		model.Vec3{X: (sideFace + hw - b.t) / 2, Y: yc, Z: backFace - c.BackThickness/2}))
	b.add(box(model.PartCornerBack, "side wall back",
		model.Vec3{X: c.BackThickness, Y: hc, Z: (hd - b.t) - backFace},
		model.Vec3{X: sideFace - c.BackThickness/2, Y: yc, Z: (backFace + hd - b.t) / 2}))

	bottom := box(model.PartCornerBottom, "corner bottom",
		model.Vec3{X: b.w, Y: c.BottomThickness, Z: b.d},
		model.Vec3{Y: b.carcassBottom + c.BottomThickness/2})
	bottom.Outline = g.outline
	b.add(bottom)

	if b.hasTop() {
		top := box(model.PartCornerTop, "corner top",
			model.Vec3{X: b.w, Y: c.TopThickness, Z: b.d},
			model.Vec3{Y: b.carcassTop - c.TopThickness/2})
		top.Outline = g.outline
		b.add(top)
	}
}
