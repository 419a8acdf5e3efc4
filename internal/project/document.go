package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/KitchenCraft/internal/model"
)

// DocumentVersion is the current project file format version.
const DocumentVersion = "1.0.0"

// Document is the on-disk form of a project.
type Document struct {
	Version string        `json:"version"`
	SavedAt string        `json:"saved_at"`
	Project model.Project `json:"project"`
}

// SaveProject writes a project document to the specified path.
func SaveProject(path string, p model.Project) error {
	doc := Document{
		Version: DocumentVersion,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		Project: p,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// LoadProject reads a project document. A missing room or global dimension
// block takes the defaults.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	doc := Document{Project: model.NewProject()}
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if doc.Version == "" {
		return model.Project{}, fmt.Errorf("invalid project file: missing version field")
	}
	p := doc.Project
	if p.Room.Shape == "" {
		p.Room.Shape = model.RoomRectangle
	}
	// Ensure Instances is never nil
	if p.Instances == nil {
		p.Instances = []model.CabinetInstance{}
	}
	return p, nil
}
