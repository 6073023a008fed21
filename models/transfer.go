package models

import "time"

// ExportVersion is the current format version of [ExportBundle].
const ExportVersion = 1

// ExportBundle is a full snapshot of a user's fields, projects and tasks.
// Ids inside the bundle are local to it and remapped on import.
type ExportBundle struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Fields     []Field   `json:"fields"`
	Projects   []Project `json:"projects"`
	Tasks      []Task    `json:"tasks"`
}

// ImportResult reports how many rows an import created.
type ImportResult struct {
	Fields   int `json:"fields"`
	Projects int `json:"projects"`
	Tasks    int `json:"tasks"`
}
