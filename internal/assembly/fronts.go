package assembly

import (
	"fmt"

	"github.com/piwi3910/KitchenCraft/internal/handle"
	"github.com/piwi3910/KitchenCraft/internal/model"
)

// FalseFrontHeight is the fixed panel above a sink's doors.
const FalseFrontHeight = 80.0

// region is a front opening in the cabinet frame. Reveals are applied by
// the caller through the top and bottom insets.
type region struct {
	left, right float64
	bottom, top float64
}

func (r region) width() float64  { return r.right - r.left }
func (r region) height() float64 { return r.top - r.bottom }

// layout is how the carcass height splits between drawer and door
// sections.
type layout struct {
	drawers region // empty when there are no drawers
	doors   region // empty when there are no doors
	divider bool   // a horizontal divider separates the two
}

// sections computes the front layout from the recipe's counts.
func (b *builder) sections() layout {
	f := b.rec.Front
	full := region{left: -b.w / 2, right: b.w / 2, bottom: b.carcassBottom, top: b.carcassTop}
	switch {
	case f.Corner.Style == model.CornerBlind:
		return layout{doors: full}
	case f.Combination():
		hc := b.carcassHeight()
		ds := CombinationDrawerSection(f.Drawers, hc)
		doorSection := hc - ds - b.t
		return layout{
			drawers: region{left: full.left, right: full.right, bottom: b.carcassTop - ds, top: b.carcassTop},
			doors:   region{left: full.left, right: full.right, bottom: b.carcassBottom, top: b.carcassBottom + doorSection},
			divider: true,
		}
	case f.Drawers > 0:
		return layout{drawers: full}
	case f.Doors > 0:
		return layout{doors: full}
	}
	return layout{}
}

// standardFronts adds shelves, the divider, the false front and the door
// and drawer fronts of a rectangular carcass. Blind corners use this path
// for their carcass interior.
func (b *builder) standardFronts() {
	lay := b.sections()
	c := b.rec.Carcass

	// Shelves live in the door section of a combination, or the whole
	// interior otherwise.
	interior := region{
		left:   -b.w/2 + b.t,
		right:  b.w/2 - b.t,
		bottom: b.carcassBottom + c.BottomThickness,
		top:    b.carcassTop,
	}
	if b.hasTop() {
		interior.top -= c.TopThickness
	}
	if lay.divider {
		interior.top = lay.doors.top
	}
	b.shelves(interior)

	if lay.divider {
		b.add(box(model.PartDivider, "divider",
			model.Vec3{X: b.w - 2*b.t, Y: b.t, Z: b.d - c.BackSetback},
			model.Vec3{Y: lay.doors.top + b.t/2, Z: c.BackSetback / 2}))
	}

	if lay.drawers.height() > 0 {
		b.drawerFronts(lay.drawers, b.rec.Reveals.Top, 0)
	}
	if lay.doors.height() > 0 {
		top := 0.0
		if !lay.divider {
			top = b.rec.Reveals.Top
		}
		doors := lay.doors
		if b.rec.Front.HasFalseFront && !lay.divider {
			doors.top = b.falseFront(doors)
			top = 0
		}
		if b.rec.Front.Corner.Style == model.CornerBlind {
			b.blindFronts(doors, top, b.rec.Reveals.Bottom)
			return
		}
		b.doorFronts(doors, b.rec.Front.Doors, top, b.rec.Reveals.Bottom)
	}
}

// falseFront adds the fixed panel at the top of the opening and returns the
// new top of the door opening.
func (b *builder) falseFront(r region) float64 {
	rv := b.rec.Reveals
	top := r.top - rv.Top
	h := FalseFrontHeight
	if h > r.height()/2 {
		h = r.height() / 2
	}
	b.add(box(model.PartFalseFront, "false front",
		model.Vec3{X: r.width() - 2*rv.Side, Y: h, Z: b.ft},
		model.Vec3{X: (r.left + r.right) / 2, Y: top - h/2, Z: b.frontZ()}))
	return top - h - rv.DoorGap
}

// doorFronts splits an opening into n doors. Outer edges lose the side
// reveal, inner edges half the door gap each.
func (b *builder) doorFronts(r region, n int, topReveal, bottomReveal float64) {
	if n <= 0 {
		return
	}
	rv := b.rec.Reveals
	h := r.height() - topReveal - bottomReveal
	w := (r.width() - 2*rv.Side - float64(n-1)*rv.DoorGap) / float64(n)
	y := r.bottom + bottomReveal + h/2
	for i := 0; i < n; i++ {
		x := r.left + rv.Side + float64(i)*(w+rv.DoorGap) + w/2
		b.door(doorName(i, n), w, h, model.Vec3{X: x, Y: y, Z: b.frontZ()}, b.hingeFor(i, n), 0)
	}
}

// hingeFor returns the hinge side of door i of n. Single doors follow the
// instance override, pairs hinge on their outer edges.
func (b *builder) hingeFor(i, n int) model.Side {
	override := b.in.Overrides.HingeSide.Or(model.SideLeft)
	if n == 1 {
		return override
	}
	switch {
	case 2*i+1 < n:
		return model.SideLeft
	case 2*i+1 > n:
		return model.SideRight
	}
	return override
}

// door adds a door with its handle. rotY turns the door about +Y for
// corner fronts.
func (b *builder) door(name string, w, h float64, pos model.Vec3, hinge model.Side, rotY float64) {
	p := box(model.PartDoor, name, model.Vec3{X: w, Y: h, Z: b.ft}, pos)
	p.Rotation = model.Vec3{Y: rotY}
	p.Hinge = hinge
	p.Handle = handle.Position(handle.Opening{
		Height:    h,
		Width:     w,
		Category:  b.in.Category,
		HingeLeft: hinge != model.SideRight,
	}, b.g.HandleLength()).ForFront()
	b.add(p)
}

// drawerFronts stacks drawers top to bottom in the opening. Each slot gets
// its share of the section; the rendered front is the slot less the drawer
// gap.
func (b *builder) drawerFronts(r region, topReveal, bottomReveal float64) {
	rv := b.rec.Reveals
	n := b.rec.Front.Drawers
	section := r.height() - topReveal - bottomReveal
	heights := DrawerHeights(n, section)
	w := r.width() - 2*rv.Side
	slotTop := r.top - topReveal
	for i, sh := range heights {
		h := sh - rv.DrawerGap
		if h <= 0 {
			h = sh
		}
		p := box(model.PartDrawerFront, fmt.Sprintf("drawer %d", i+1),
			model.Vec3{X: w, Y: h, Z: b.ft},
			model.Vec3{X: (r.left + r.right) / 2, Y: slotTop - sh/2, Z: b.frontZ()})
		p.Handle = handle.Position(handle.Opening{
			Height:   h,
			Width:    w,
			Category: b.in.Category,
			Drawer:   true,
		}, b.g.HandleLength()).ForFront()
		b.add(p)
		slotTop -= sh
	}
}

func doorName(i, n int) string {
	if n == 1 {
		return "door"
	}
	if n == 2 {
		return [...]string{"left door", "right door"}[i]
	}
	return fmt.Sprintf("door %d", i+1)
}

// shelves spreads the shelf count over the interior in equal spans.
func (b *builder) shelves(interior region) {
	s := b.rec.Shelves
	if s.Count <= 0 || interior.height() <= 0 {
		return
	}
	c := b.rec.Carcass
	w := interior.width()
	if s.Adjustable {
		w -= 2 // clearance for shelf pins
	}
	depth := b.d - c.BackSetback - s.Setback
	if depth <= 0 {
		return
	}
	span := interior.height() / float64(s.Count+1)
	for i := 1; i <= s.Count; i++ {
		p := box(model.PartShelf, fmt.Sprintf("shelf %d", i),
			model.Vec3{X: w, Y: b.t, Z: depth},
			model.Vec3{X: (interior.left + interior.right) / 2, Y: interior.bottom + float64(i)*span, Z: (c.BackSetback - s.Setback) / 2})
		p.Adjustable = s.Adjustable
		b.add(p)
	}
}
