// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/farmaon/farmaclass/internal/common"
)

// Classification holds the tunable parameters of the classifier engine.
// Thresholds live in configuration, never hardcoded at call sites.
type Classification struct {
	// FallbackNode receives every product no rule matched.
	FallbackNode string
	// StrongConfidence is assigned to brand-hint and multi-keyword matches.
	StrongConfidence float64
	// SoftConfidence is assigned to single-keyword matches.
	SoftConfidence float64
	// FallbackConfidence is assigned when no rule matched. Must be ≤ 0.5.
	FallbackConfidence float64
	// ReviewThreshold: changes below it are flagged for manual review
	// instead of being auto-applied.
	ReviewThreshold float64
	// Workers is the batch runner fan-out.
	Workers int
}

// Defaults registers the default classification settings with viper.
func Defaults() {
	viper.SetDefault("classification.fallback_node", "dermo.face")
	viper.SetDefault("classification.strong_confidence", 0.95)
	viper.SetDefault("classification.soft_confidence", 0.78)
	viper.SetDefault("classification.fallback_confidence", 0.40)
	viper.SetDefault("classification.review_threshold", 0.70)
	viper.SetDefault("classification.workers", 4)
}

// LoadClassification reads the classification settings from viper.
func LoadClassification() (Classification, error) {
	cfg := Classification{
		FallbackNode:       viper.GetString("classification.fallback_node"),
		StrongConfidence:   viper.GetFloat64("classification.strong_confidence"),
		SoftConfidence:     viper.GetFloat64("classification.soft_confidence"),
		FallbackConfidence: viper.GetFloat64("classification.fallback_confidence"),
		ReviewThreshold:    viper.GetFloat64("classification.review_threshold"),
		Workers:            viper.GetInt("classification.workers"),
	}

	if cfg.FallbackNode == "" {
		return cfg, fmt.Errorf("%w: classification.fallback_node is required", common.ErrMissingConfig)
	}
	if cfg.FallbackConfidence > 0.5 {
		return cfg, fmt.Errorf("%w: fallback_confidence must be ≤ 0.5, got %.2f",
			common.ErrInvalidConfig, cfg.FallbackConfidence)
	}
	if cfg.SoftConfidence >= cfg.StrongConfidence {
		return cfg, fmt.Errorf("%w: soft_confidence must be below strong_confidence",
			common.ErrInvalidConfig)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return cfg, nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
