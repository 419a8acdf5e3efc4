// Package model holds the data shared by the recipe resolver, the geometry
// assembler and the placement engine. All lengths are millimetres.
package model

import (
	"fmt"
	"math"
	"strings"
)

// Vec3 is a position, size or rotation triple.
type Vec3 struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
	Z float64 `json:"z" toml:"z"`
}

// Point2D represents a 2D coordinate in mm.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min = o[0]
	max = o[0]
	for _, p := range o[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Translate shifts all points by dx, dy.
func (o Outline) Translate(dx, dy float64) Outline {
	result := make(Outline, len(o))
	for i, p := range o {
		result[i] = Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return result
}

// Area returns the unsigned polygon area (shoelace formula).
func (o Outline) Area() float64 {
	if len(o) < 3 {
		return 0
	}
	var sum float64
	for i := range o {
		j := (i + 1) % len(o)
		sum += o[i].X*o[j].Y - o[j].X*o[i].Y
	}
	return math.Abs(sum) / 2
}

// Category is the catalog category of a cabinet.
type Category string

const (
	CategoryBase Category = "base"
	CategoryWall Category = "wall"
	CategoryTall Category = "tall"
)

// ParseCategory accepts the category names case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryBase, CategoryWall, CategoryTall:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// FloorStanding reports whether cabinets of this category stand on the floor.
func (c Category) FloorStanding() bool {
	return c != CategoryWall
}

// Side is a hinge or blind side. The zero value means unset.
type Side int

const (
	SideUnset Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return ""
	}
}

// Opposite returns the other side; unset stays unset.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideUnset
	}
}

// Or returns s, or fallback when s is unset.
func (s Side) Or(fallback Side) Side {
	if s == SideUnset {
		return fallback
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "left", "l":
		*s = SideLeft
	case "right", "r":
		*s = SideRight
	case "":
		*s = SideUnset
	default:
		return fmt.Errorf("unknown side %q", string(b))
	}
	return nil
}

// CornerType selects the corner cabinet construction.
type CornerType string

const (
	CornerNone     CornerType = "none"
	CornerLShape   CornerType = "l-shape"
	CornerBlind    CornerType = "blind"
	CornerDiagonal CornerType = "diagonal"
)

// ParseCornerType accepts "", "none", "l-shape", "blind" and "diagonal".
func ParseCornerType(s string) (CornerType, error) {
	switch c := CornerType(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CornerNone:
		return CornerNone, nil
	case CornerLShape, CornerBlind, CornerDiagonal:
		return c, nil
	case "lshape", "l":
		return CornerLShape, nil
	default:
		return "", fmt.Errorf("unknown corner type %q", s)
	}
}

// IsCorner reports whether c is a real corner construction.
func (c CornerType) IsCorner() bool {
	return c == CornerLShape || c == CornerBlind || c == CornerDiagonal
}

// FrontType is the kind of front a recipe puts on the carcass.
type FrontType string

const (
	FrontDoor   FrontType = "door"
	FrontDrawer FrontType = "drawer"
	FrontCorner FrontType = "corner"
	FrontNone   FrontType = "none"
)

// Rotation is a cabinet rotation about the vertical axis, in degrees.
// Only the four right angles are valid.
type Rotation int

const (
	Rotation0   Rotation = 0
	Rotation90  Rotation = 90
	Rotation180 Rotation = 180
	Rotation270 Rotation = 270
)

// NormalizeRotation snaps any angle in degrees to the nearest right angle.
func NormalizeRotation(deg float64) Rotation {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return Rotation0
	}
	q := int(math.Round(deg/90)) % 4
	if q < 0 {
		q += 4
	}
	return Rotation(q * 90)
}

// Valid reports whether r is one of the four right angles.
func (r Rotation) Valid() bool {
	return r == Rotation0 || r == Rotation90 || r == Rotation180 || r == Rotation270
}

// QuarterTurn reports whether width and depth swap at this rotation.
func (r Rotation) QuarterTurn() bool {
	return r == Rotation90 || r == Rotation270
}

// Opposite returns the rotation turned by 180 degrees.
func (r Rotation) Opposite() Rotation {
	return Rotation((int(r) + 180) % 360)
}

// Dimensions is the overall width, height and depth of a cabinet.
type Dimensions struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
	Depth  float64 `json:"depth" toml:"depth"`
}

// ValidLength reports whether v is usable as a length.
func ValidLength(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Valid reports whether every dimension is strictly positive and finite.
func (d Dimensions) Valid() bool {
	return ValidLength(d.Width) && ValidLength(d.Height) && ValidLength(d.Depth)
}

// Sanitize replaces every unusable dimension with the matching fallback
// value and reports which fields were substituted.
func (d Dimensions) Sanitize(fallback Dimensions) (Dimensions, []string) {
	var fixed []string
	if !ValidLength(d.Width) {
		d.Width = fallback.Width
		fixed = append(fixed, "width")
	}
	if !ValidLength(d.Height) {
		d.Height = fallback.Height
		fixed = append(fixed, "height")
	}
	if !ValidLength(d.Depth) {
		d.Depth = fallback.Depth
		fixed = append(fixed, "depth")
	}
	return d, fixed
}
