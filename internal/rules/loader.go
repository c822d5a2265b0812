package rules

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/farmaon/farmaclass/internal/taxonomy"
)

// LoadFile reads a rule set definition from a YAML/JSON/TOML file:
//
//	rules:
//	  - key: diapers
//	    target: baby.diapers
//	    priority: 100
//	    include: [pelena, diaper]
//	    brands: [pampers]
//
// The returned rules still need NewSet validation.
func LoadFile(path string) ([]Rule, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var def struct {
		Rules []Rule `mapstructure:"rules"`
	}
	if err := v.Unmarshal(&def); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}

	return def.Rules, nil
}

// Load builds a rule set from a file, or from the built-in defaults
// when path is empty.
func Load(path string, registry *taxonomy.Registry) (*Set, error) {
	if path == "" {
		return NewSet(DefaultRules(), registry)
	}

	rs, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewSet(rs, registry)
}
