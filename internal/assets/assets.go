package assets

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Manager caches models by path so shared meshes load once.
type Manager struct {
	models map[string]rl.Model
}

func NewManager() *Manager {
	return &Manager{
		models: make(map[string]rl.Model),
	}
}

// LoadModel loads a model file, returning the cached copy if present. A
// missing file or a file with no meshes is an error; nothing is cached.
func (m *Manager) LoadModel(path string) (rl.Model, error) {
	if model, exists := m.models[path]; exists {
		return model, nil
	}

	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("load model %s: %w", path, err)
	}

	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		rl.UnloadModel(model)
		return rl.Model{}, fmt.Errorf("load model %s: no meshes", path)
	}

	m.models[path] = model
	return model, nil
}

func (m *Manager) Len() int {
	return len(m.models)
}

func (m *Manager) Unload() {
	for _, model := range m.models {
		rl.UnloadModel(model)
	}
	m.models = make(map[string]rl.Model)
}
