package model

// SnapTarget is what a placement snapped to.
type SnapTarget string

const (
	SnapNone    SnapTarget = "none"
	SnapWall    SnapTarget = "wall"
	SnapCabinet SnapTarget = "cabinet"
	SnapGrid    SnapTarget = "grid"
)

// Edge names an edge of the dragged item's footprint.
type Edge string

const (
	EdgeNone  Edge = ""
	EdgeLeft  Edge = "left"
	EdgeRight Edge = "right"
	EdgeFront Edge = "front"
	EdgeBack  Edge = "back"
)

// SnapResult is the resolved placement for one input sample. It is a value
// snapshot and is never persisted.
type SnapResult struct {
	X             float64    `json:"x"`
	Z             float64    `json:"z"`
	Rotation      Rotation   `json:"rotation"`
	SnappedTo     SnapTarget `json:"snapped_to"`
	SnapEdge      Edge       `json:"snap_edge,omitempty"`
	SnappedItemID string     `json:"snapped_item_id,omitempty"`

	// Pushed is set when the collision guard moved the item.
	Pushed bool `json:"pushed,omitempty"`
	// UnresolvedCollision is set when an overlap remains after the push.
	UnresolvedCollision bool `json:"unresolved_collision,omitempty"`

	Warnings []Warning `json:"warnings,omitempty"`
}
