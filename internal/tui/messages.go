package tui

import "github.com/rgehrsitz/coastfi/internal/domain"

// Scene represents the screens of the explorer
type Scene int

const (
	SceneParameters Scene = iota
	SceneProjection
	SceneCompare
	sceneCount
)

func (s Scene) String() string {
	switch s {
	case SceneParameters:
		return "Parameters"
	case SceneProjection:
		return "Projection"
	case SceneCompare:
		return "Compare"
	default:
		return "Unknown"
	}
}

// ConfigLoadedMsg carries a loaded plan and the results of its scenarios
type ConfigLoadedMsg struct {
	Config     *domain.Configuration
	Comparison *domain.ScenarioComparison
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
