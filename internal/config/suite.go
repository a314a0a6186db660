package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// SuiteConfig holds settings for batch suite runs.
type SuiteConfig struct {
	// File is the suite to run; empty means interactive play
	File string

	// Workers is the number of worker goroutines; 0 uses every CPU
	Workers int

	// FailFast stops the run at the first failing case
	FailFast bool
}

// NewSuiteConfig creates a SuiteConfig with default values.
func NewSuiteConfig() *SuiteConfig {
	return &SuiteConfig{}
}

// Validate checks that the suite configuration is valid.
func (s *SuiteConfig) Validate() error {
	if s.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// EffectiveWorkers resolves Workers, mapping 0 to the CPU count.
func (s *SuiteConfig) EffectiveWorkers() int {
	if s.Workers <= 0 {
		return runtime.NumCPU()
	}
	return s.Workers
}
