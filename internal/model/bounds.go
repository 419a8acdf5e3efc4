package model

import "math"

// BoundingBox is the axis-aligned floor footprint of an item in room space.
// Back is the low-Z edge (towards the back wall), Front the high-Z edge.
type BoundingBox struct {
	Left    float64 `json:"left"`
	Right   float64 `json:"right"`
	Back    float64 `json:"back"`
	Front   float64 `json:"front"`
	CenterX float64 `json:"center_x"`
	CenterZ float64 `json:"center_z"`
}

// Footprint returns the effective width and depth at rotation r.
// Width and depth swap at 90 and 270 degrees.
func Footprint(width, depth float64, r Rotation) (float64, float64) {
	if r.QuarterTurn() {
		return depth, width
	}
	return width, depth
}

// NewBoundingBox computes the footprint of an item centred at (x, z).
func NewBoundingBox(x, z, width, depth float64, r Rotation) BoundingBox {
	w, d := Footprint(width, depth, r)
	return BoundingBox{
		Left:    x - w/2,
		Right:   x + w/2,
		Back:    z - d/2,
		Front:   z + d/2,
		CenterX: x,
		CenterZ: z,
	}
}

// Width returns the X extent.
func (b BoundingBox) Width() float64 { return b.Right - b.Left }

// Depth returns the Z extent.
func (b BoundingBox) Depth() float64 { return b.Front - b.Back }

// MoveTo returns the same box centred at (x, z).
func (b BoundingBox) MoveTo(x, z float64) BoundingBox {
	hw, hd := b.Width()/2, b.Depth()/2
	return BoundingBox{Left: x - hw, Right: x + hw, Back: z - hd, Front: z + hd, CenterX: x, CenterZ: z}
}

// OverlapX returns how deep the two boxes overlap along X (negative when apart).
func (b BoundingBox) OverlapX(o BoundingBox) float64 {
	return math.Min(b.Right, o.Right) - math.Max(b.Left, o.Left)
}

// OverlapZ returns how deep the two boxes overlap along Z (negative when apart).
func (b BoundingBox) OverlapZ(o BoundingBox) float64 {
	return math.Min(b.Front, o.Front) - math.Max(b.Back, o.Back)
}

// Overlaps reports whether the boxes overlap by more than padding on both axes.
func (b BoundingBox) Overlaps(o BoundingBox, padding float64) bool {
	return b.OverlapX(o) > padding && b.OverlapZ(o) > padding
}
