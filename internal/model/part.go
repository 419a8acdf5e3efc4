package model

// PartKind identifies an assembled cabinet part.
type PartKind string

const (
	PartGable        PartKind = "gable"
	PartBottom       PartKind = "bottom"
	PartTop          PartKind = "top"
	PartBack         PartKind = "back"
	PartShelf        PartKind = "shelf"
	PartDivider      PartKind = "divider"
	PartDoor         PartKind = "door"
	PartDrawerFront  PartKind = "drawer-front"
	PartFalseFront   PartKind = "false-front"
	PartBlindPanel   PartKind = "blind-panel"
	PartPlinth       PartKind = "plinth"
	PartLeg          PartKind = "leg"
	PartBenchtop     PartKind = "benchtop"
	PartEndPanel     PartKind = "end-panel"
	PartFiller       PartKind = "filler"
	PartReturnFiller PartKind = "return-filler"
	PartCornerBottom PartKind = "corner-bottom"
	PartCornerTop    PartKind = "corner-top"
	PartCornerBack   PartKind = "corner-back"
	PartCornerGable  PartKind = "corner-gable"
)

// MaterialSlot groups parts that share a material choice.
type MaterialSlot string

const (
	SlotCarcass  MaterialSlot = "carcass"
	SlotFront    MaterialSlot = "front"
	SlotBenchtop MaterialSlot = "benchtop"
	SlotPlinth   MaterialSlot = "plinth"
	SlotPanel    MaterialSlot = "panel"
)

// DefaultMaterial is used for any slot without a material assignment.
const DefaultMaterial = "flat-white"

// Slot returns the material slot of a part kind.
func (k PartKind) Slot() MaterialSlot {
	switch k {
	case PartDoor, PartDrawerFront, PartFalseFront, PartBlindPanel:
		return SlotFront
	case PartBenchtop:
		return SlotBenchtop
	case PartPlinth, PartLeg:
		return SlotPlinth
	case PartEndPanel, PartFiller, PartReturnFiller:
		return SlotPanel
	default:
		return SlotCarcass
	}
}

// IsFront reports whether the part is an operable front that takes a handle.
func (k PartKind) IsFront() bool {
	return k == PartDoor || k == PartDrawerFront
}

// Handle is a handle placement relative to the centre of its front.
type Handle struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"` // degrees in the front plane
	Length   float64 `json:"length"`   // hole centres, mm
}

// Part is one renderable, dimensioned part in the cabinet-local frame:
// origin at the centre of the cabinet's bounding box, +Y up, front facing +Z.
type Part struct {
	Kind     PartKind `json:"kind"`
	Name     string   `json:"name"`
	Size     Vec3     `json:"size"`
	Position Vec3     `json:"position"`
	Rotation Vec3     `json:"rotation"` // degrees, right-handed; Y=90 turns the front to +X
	Material string   `json:"material"`

	Handle     *Handle `json:"handle,omitempty"`
	Hinge      Side    `json:"hinge,omitempty"`
	Adjustable bool    `json:"adjustable,omitempty"`
	SinkCutout bool    `json:"sink_cutout,omitempty"`
	Outline    Outline `json:"outline,omitempty"` // plan-view footprint for non-rectangular parts
}
