// Package model defines the catalog graph (skills, tasks, categories) and
// the route/dependency result types shared across the routing pipeline.
package model

// Skill is a named, documentation-backed capability unit. Skills are
// immutable once a catalog has loaded; dependency names are resolved
// against the catalog at validation and resolution time, never eagerly.
type Skill struct {
	Name         string   `yaml:"-" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	Path         string   `yaml:"path" json:"path"`
	Dependencies []string `yaml:"depends_on" json:"depends_on,omitempty"`
}

// Task is a user-intent-labeled bundle of skills, activated by trigger
// phrases matched in Tier 2.
type Task struct {
	Name        string   `yaml:"-" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Triggers    []string `yaml:"triggers" json:"triggers"`
	Skills      []string `yaml:"skills" json:"skills"`
}

// Category is a documentation-only grouping of tasks and skills. Categories
// never participate in routing decisions.
type Category struct {
	Name        string   `yaml:"-" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Tasks       []string `yaml:"tasks" json:"tasks,omitempty"`
	Skills      []string `yaml:"skills" json:"skills,omitempty"`
}
