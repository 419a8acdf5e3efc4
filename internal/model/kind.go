package model

import (
	"fmt"
	"strings"
)

// KindTag names a cabinet kind variant.
type KindTag string

const (
	KindStandard  KindTag = "standard"
	KindSink      KindTag = "sink"
	KindAppliance KindTag = "appliance"
	KindCorner    KindTag = "corner"
	KindPantry    KindTag = "pantry"
)

// Appliance is the appliance a housing cabinet holds.
type Appliance string

const (
	ApplianceOven       Appliance = "oven"
	ApplianceFridge     Appliance = "fridge"
	ApplianceDishwasher Appliance = "dishwasher"
	ApplianceMicrowave  Appliance = "microwave"
	ApplianceRangehood  Appliance = "rangehood"
	ApplianceCooktop    Appliance = "cooktop"
)

var knownAppliances = map[Appliance]bool{
	ApplianceOven:       true,
	ApplianceFridge:     true,
	ApplianceDishwasher: true,
	ApplianceMicrowave:  true,
	ApplianceRangehood:  true,
	ApplianceCooktop:    true,
}

// Kind is the cabinet kind. It is a closed set of variants: Standard, Sink,
// ApplianceHousing, Corner and Pantry.
type Kind interface {
	Tag() KindTag
	// Variant is the enumerated sub-kind used as part of recipe keys,
	// e.g. "appliance:oven" or "corner:blind".
	Variant() string
	isKind()
}

type Standard struct{}

type Sink struct{}

type Pantry struct{}

// ApplianceHousing is a cabinet built around an appliance.
type ApplianceHousing struct {
	Appliance Appliance
}

// Corner is a corner cabinet. Type is never CornerNone.
type Corner struct {
	Type CornerType
}

func (Standard) Tag() KindTag         { return KindStandard }
func (Sink) Tag() KindTag             { return KindSink }
func (Pantry) Tag() KindTag           { return KindPantry }
func (ApplianceHousing) Tag() KindTag { return KindAppliance }
func (Corner) Tag() KindTag           { return KindCorner }

func (Standard) Variant() string { return string(KindStandard) }
func (Sink) Variant() string     { return string(KindSink) }
func (Pantry) Variant() string   { return string(KindPantry) }
func (a ApplianceHousing) Variant() string {
	return string(KindAppliance) + ":" + string(a.Appliance)
}
func (c Corner) Variant() string {
	return string(KindCorner) + ":" + string(c.Type)
}

func (Standard) isKind()         {}
func (Sink) isKind()             {}
func (Pantry) isKind()           {}
func (ApplianceHousing) isKind() {}
func (Corner) isKind()           {}

// CornerTypeOf returns the corner construction of k, or CornerNone.
func CornerTypeOf(k Kind) CornerType {
	if c, ok := k.(Corner); ok {
		return c.Type
	}
	return CornerNone
}

// KindSpec is the serialized form of a Kind.
type KindSpec struct {
	Tag       string `json:"tag" toml:"tag"`
	Appliance string `json:"appliance,omitempty" toml:"appliance,omitempty"`
	Corner    string `json:"corner,omitempty" toml:"corner,omitempty"`
}

// ParseKind validates a KindSpec. An empty tag means Standard.
func ParseKind(s KindSpec) (Kind, error) {
	switch KindTag(strings.ToLower(strings.TrimSpace(s.Tag))) {
	case "", KindStandard:
		return Standard{}, nil
	case KindSink:
		return Sink{}, nil
	case KindPantry:
		return Pantry{}, nil
	case KindAppliance:
		a := Appliance(strings.ToLower(strings.TrimSpace(s.Appliance)))
		if !knownAppliances[a] {
			return nil, fmt.Errorf("appliance housing needs a known appliance, got %q", s.Appliance)
		}
		return ApplianceHousing{Appliance: a}, nil
	case KindCorner:
		ct, err := ParseCornerType(s.Corner)
		if err != nil {
			return nil, err
		}
		if !ct.IsCorner() {
			return nil, fmt.Errorf("corner kind needs a corner type")
		}
		return Corner{Type: ct}, nil
	default:
		return nil, fmt.Errorf("unknown cabinet kind %q", s.Tag)
	}
}

// ParseKindString parses the compact "tag[:payload]" form used in
// spreadsheets, e.g. "sink", "corner:blind", "appliance:oven".
func ParseKindString(s string) (Kind, error) {
	tag, payload, _ := strings.Cut(strings.TrimSpace(s), ":")
	spec := KindSpec{Tag: tag}
	switch KindTag(strings.ToLower(tag)) {
	case KindAppliance:
		spec.Appliance = payload
	case KindCorner:
		spec.Corner = payload
	}
	return ParseKind(spec)
}

// SpecOf returns the serialized form of k. A nil kind is Standard.
func SpecOf(k Kind) KindSpec {
	switch v := k.(type) {
	case ApplianceHousing:
		return KindSpec{Tag: string(KindAppliance), Appliance: string(v.Appliance)}
	case Corner:
		return KindSpec{Tag: string(KindCorner), Corner: string(v.Type)}
	case nil:
		return KindSpec{Tag: string(KindStandard)}
	default:
		return KindSpec{Tag: string(k.Tag())}
	}
}
