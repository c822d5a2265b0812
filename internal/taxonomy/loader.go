package taxonomy

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadFile reads a taxonomy definition from a YAML/JSON/TOML file:
//
//	nodes:
//	  - key: dermo
//	    display_name: Dermokozmetikë
//	  - key: dermo.face
//	    display_name: Fytyre
//	    parent: dermo
//
// The returned nodes still need NewRegistry validation.
func LoadFile(path string) ([]Node, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	var def struct {
		Nodes []Node `mapstructure:"nodes"`
	}
	if err := v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}

	return def.Nodes, nil
}

// Load builds a registry from a file, or from the built-in defaults
// when path is empty.
func Load(path string) (*Registry, error) {
	if path == "" {
		return NewRegistry(DefaultNodes())
	}

	nodes, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewRegistry(nodes)
}
