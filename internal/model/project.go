package model

// Project is the session state the core reads from: the room, the global
// dimensions and the placed instances.
type Project struct {
	Name      string            `json:"name"`
	Room      RoomConfig        `json:"room"`
	Globals   GlobalDimensions  `json:"globals"`
	Instances []CabinetInstance `json:"instances"`
}

// NewProject returns an empty project in the default room.
func NewProject() Project {
	return Project{
		Name:      "Untitled",
		Room:      DefaultRoom(),
		Globals:   DefaultGlobalDimensions(),
		Instances: []CabinetInstance{},
	}
}

// FindInstance returns the instance with the given ID.
func (p Project) FindInstance(id string) (CabinetInstance, bool) {
	for _, inst := range p.Instances {
		if inst.ID == id {
			return inst, true
		}
	}
	return CabinetInstance{}, false
}
