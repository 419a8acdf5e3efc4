package assembly

import (
	"github.com/piwi3910/KitchenCraft/internal/model"
)

// benchtop adds the benchtop on base cabinets. It is widened by the
// fillers, deepened by the overhang and sits flush with the back.
func (b *builder) benchtop(corner model.CornerType) {
	if b.in.Category != model.CategoryBase {
		return
	}
	bt := b.rec.Benchtop
	if !model.ValidLength(bt.Thickness) {
		return
	}
	ov := b.in.Overrides
	fl, fr := nonNeg(ov.FillerLeft), nonNeg(ov.FillerRight)

	p := box(model.PartBenchtop, "benchtop",
		model.Vec3{X: b.w + fl + fr, Y: bt.Thickness, Z: b.d + bt.Overhang},
		model.Vec3{X: (fr - fl) / 2, Y: b.h/2 + bt.Thickness/2, Z: bt.Overhang / 2})
	_, p.SinkCutout = b.in.Kind.(model.Sink)
	if corner == model.CornerLShape || corner == model.CornerDiagonal {
		p.Outline = b.cornerLayout(corner).outline
	}
	b.add(p)
}

// endPanelsAndFillers adds the instance's optional end panels and fillers.
// End panels run the full height and finish flush with the fronts; fillers
// sit outside any end panel on the same side.
func (b *builder) endPanelsAndFillers() {
	ov := b.in.Overrides
	proud := ShadowGap + b.ft

	endPanel := func(name string, sign float64) {
		b.add(box(model.PartEndPanel, name,
			model.Vec3{X: b.t, Y: b.h, Z: b.d + proud},
			model.Vec3{X: sign * (b.w/2 + b.t/2), Z: proud / 2}))
	}
	if ov.EndPanelLeft {
		endPanel("left end panel", -1)
	}
	if ov.EndPanelRight {
		endPanel("right end panel", 1)
	}

	filler := func(name string, sign, width float64, panel bool) {
		if width <= 0 {
			return
		}
		edge := b.w / 2
		if panel {
			edge += b.t
		}
		b.add(box(model.PartFiller, name,
			model.Vec3{X: width, Y: b.carcassHeight(), Z: b.ft},
			model.Vec3{X: sign * (edge + width/2), Y: b.carcassCenterY(), Z: b.frontZ()}))
	}
	filler("left filler", -1, nonNeg(ov.FillerLeft), ov.EndPanelLeft)
	filler("right filler", 1, nonNeg(ov.FillerRight), ov.EndPanelRight)
}

func nonNeg(v float64) float64 {
	if model.ValidLength(v) {
		return v
	}
	return 0
}
