package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/store"
)

//go:embed default_seed.yaml
var defaultSeed []byte

// Seed is the initial content of a fresh store.
type Seed struct {
	Settings entity.Settings         `yaml:"settings"`
	Profiles []entity.MessageProfile `yaml:"profiles"`
}

// LoadSeed reads the seed at path, or the built-in one when path is empty.
func LoadSeed(path string) (Seed, error) {
	data := defaultSeed
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return Seed{}, fmt.Errorf("read seed file: %w", err)
		}
	}
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}

// State turns the seed into a store state, giving every profile an id.
func (s Seed) State() store.State {
	profiles := make([]entity.MessageProfile, len(s.Profiles))
	for i, p := range s.Profiles {
		p.ID = uuid.New().String()
		profiles[i] = p
	}
	return store.State{
		Settings:        s.Settings,
		MessageProfiles: profiles,
	}
}
