// Package config holds the runtime settings of the simulation and loads
// them from a YAML file, falling back to compiled-in defaults when no
// file is present.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

const (
	DefaultElevators           = 4
	DefaultStepPeriodMs        = 250
	DefaultStatusPort          = 13055
	DefaultPeerPort            = 12055
	DefaultBroadcastIntervalMs = 2000
)

// Settings is the full runtime configuration. Durations are given in
// milliseconds in the file.
type Settings struct {
	Elevators           int    `yaml:"Elevators"`
	StepPeriodMs        int    `yaml:"StepPeriodMs"`
	Broadcast           bool   `yaml:"Broadcast"`
	NodeID              string `yaml:"NodeID"`
	StatusPort          int    `yaml:"StatusPort"`
	PeerPort            int    `yaml:"PeerPort"`
	BroadcastIntervalMs int    `yaml:"BroadcastIntervalMs"`
}

func Default() Settings {
	return Settings{
		Elevators:           DefaultElevators,
		StepPeriodMs:        DefaultStepPeriodMs,
		Broadcast:           false,
		StatusPort:          DefaultStatusPort,
		PeerPort:            DefaultPeerPort,
		BroadcastIntervalMs: DefaultBroadcastIntervalMs,
	}
}

func (s Settings) StepPeriod() time.Duration {
	return time.Duration(s.StepPeriodMs) * time.Millisecond
}

func (s Settings) BroadcastInterval() time.Duration {
	return time.Duration(s.BroadcastIntervalMs) * time.Millisecond
}

func (s Settings) validate() error {
	if s.Elevators <= 0 {
		return fmt.Errorf("config: Elevators must be positive, got %d", s.Elevators)
	}
	if s.StepPeriodMs <= 0 {
		return fmt.Errorf("config: StepPeriodMs must be positive, got %d", s.StepPeriodMs)
	}
	if s.Broadcast && s.BroadcastIntervalMs <= 0 {
		return fmt.Errorf("config: BroadcastIntervalMs must be positive, got %d", s.BroadcastIntervalMs)
	}
	return nil
}

// Load reads settings from path. A missing file is not an error: the
// defaults are returned. A file that exists but cannot be parsed is.
func Load(path string) (Settings, error) {
	s := Default()
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&s); err != nil {
		return Default(), fmt.Errorf("config: decoding %s: %v", path, err)
	}
	if err := s.validate(); err != nil {
		return Default(), err
	}
	return s, nil
}
