package model

// SnapSettings are the placement engine thresholds, all in mm.
type SnapSettings struct {
	DragThreshold        float64 `json:"drag_threshold" toml:"drag_threshold"`
	WallSnapThreshold    float64 `json:"wall_snap_threshold" toml:"wall_snap_threshold"`
	CabinetSnapThreshold float64 `json:"cabinet_snap_threshold" toml:"cabinet_snap_threshold"`
	GridSize             float64 `json:"grid_size" toml:"grid_size"`
	CollisionPadding     float64 `json:"collision_padding" toml:"collision_padding"`
	PushMargin           float64 `json:"push_margin" toml:"push_margin"`
}

// DefaultSnapSettings returns the standard thresholds.
func DefaultSnapSettings() SnapSettings {
	return SnapSettings{
		DragThreshold:        20,
		WallSnapThreshold:    150,
		CabinetSnapThreshold: 250,
		GridSize:             50,
		CollisionPadding:     5,
		PushMargin:           1,
	}
}

// WithDefaults fills every non-positive threshold from DefaultSnapSettings.
func (s SnapSettings) WithDefaults() SnapSettings {
	d := DefaultSnapSettings()
	if !ValidLength(s.DragThreshold) {
		s.DragThreshold = d.DragThreshold
	}
	if !ValidLength(s.WallSnapThreshold) {
		s.WallSnapThreshold = d.WallSnapThreshold
	}
	if !ValidLength(s.CabinetSnapThreshold) {
		s.CabinetSnapThreshold = d.CabinetSnapThreshold
	}
	if !ValidLength(s.GridSize) {
		s.GridSize = d.GridSize
	}
	if !ValidLength(s.CollisionPadding) {
		s.CollisionPadding = d.CollisionPadding
	}
	if !ValidLength(s.PushMargin) {
		s.PushMargin = d.PushMargin
	}
	return s
}

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	Snap      SnapSettings      `json:"snap" toml:"snap"`
	Globals   GlobalDimensions  `json:"globals" toml:"globals"`
	Materials map[string]string `json:"materials" toml:"materials"` // keyed by MaterialSlot

	CatalogPath    string   `json:"catalog_path,omitempty" toml:"catalog_path,omitempty"`
	RecentProjects []string `json:"recent_projects" toml:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Snap:    DefaultSnapSettings(),
		Globals: DefaultGlobalDimensions(),
		Materials: map[string]string{
			string(SlotCarcass):  "white-melamine",
			string(SlotFront):    "white-matt",
			string(SlotBenchtop): "laminate-oak",
			string(SlotPlinth):   "white-melamine",
			string(SlotPanel):    "white-matt",
		},
		RecentProjects: []string{},
	}
}

// MaterialMap returns the material assignments keyed by slot.
func (c AppConfig) MaterialMap() map[MaterialSlot]string {
	m := make(map[MaterialSlot]string, len(c.Materials))
	for k, v := range c.Materials {
		m[MaterialSlot(k)] = v
	}
	return m
}
