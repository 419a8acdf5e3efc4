// Package handle computes handle positions on door and drawer fronts using
// 32mm-system hole spacing.
package handle

import (
	"math"

	"github.com/piwi3910/KitchenCraft/internal/model"
)

const (
	// SystemPitch is the 32mm-system hole pitch.
	SystemPitch = 32.0
	// VerticalAnchor is the distance from the anchoring edge to the near
	// end of a door handle.
	VerticalAnchor = 80.0
	// HorizontalInset is the distance from the edge opposite the hinge to
	// the handle centre line.
	HorizontalInset = 40.0
)

// Opening describes the front the handle goes on.
type Opening struct {
	Height    float64
	Width     float64
	Category  model.Category
	HingeLeft bool
	Drawer    bool
}

// Offset is a handle position relative to the front's centre.
type Offset struct {
	X        float64
	Y        float64
	Rotation float64 // 0 = vertical bar, 90 = horizontal bar
	Length   float64 // hole centres after 32mm normalisation
}

// NormalizeLength rounds a handle length to the nearest multiple of the
// 32mm pitch, never below one pitch.
func NormalizeLength(length float64) float64 {
	if !model.ValidLength(length) {
		return SystemPitch
	}
	n := math.Round(length / SystemPitch)
	if n < 1 {
		n = 1
	}
	return n * SystemPitch
}

// Position returns the handle offset for a front.
//
// Door handles on base and tall cabinets anchor 80mm above the bottom edge;
// on wall cabinets 80mm below the top edge, so every handle stays near
// counter height. Horizontally the handle sits 40mm in from the edge
// opposite the hinge. Drawer handles are centred and rotated 90 degrees.
// When the front is too small for an anchor the handle is centred on that axis.
func Position(o Opening, handleLength float64) Offset {
	length := NormalizeLength(handleLength)
	if o.Drawer {
		return Offset{X: 0, Y: 0, Rotation: 90, Length: length}
	}

	off := Offset{Length: length}

	halfH := o.Height / 2
	reach := VerticalAnchor + length/2
	if model.ValidLength(o.Height) && o.Height >= 2*reach {
		if o.Category == model.CategoryWall {
			off.Y = halfH - reach
		} else {
			off.Y = -halfH + reach
		}
	}

	halfW := o.Width / 2
	if model.ValidLength(o.Width) && o.Width > 2*HorizontalInset {
		off.X = halfW - HorizontalInset
		if !o.HingeLeft {
			off.X = -off.X
		}
	}
	return off
}

// ForFront converts an Offset into the model's handle record.
func (o Offset) ForFront() *model.Handle {
	return &model.Handle{X: o.X, Y: o.Y, Rotation: o.Rotation, Length: o.Length}
}
