package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServerURL  = "http://localhost:8000"
	DefaultTimeoutSec = 60
	DefaultChartW     = 80
	DefaultChartH     = 12
)

// Settings holds client-side options. Everything about a simulation
// itself comes from the service; this is only transport and display.
type Settings struct {
	ServerURL         string `yaml:"server_url"`
	RequestTimeoutSec int    `yaml:"request_timeout_sec"`
	ChartWidth        int    `yaml:"chart_width"`
	ChartHeight       int    `yaml:"chart_height"`
	Verbose           bool   `yaml:"verbose"`
}

func Default() *Settings {
	s := &Settings{
		ServerURL:         DefaultServerURL,
		RequestTimeoutSec: DefaultTimeoutSec,
		ChartWidth:        DefaultChartW,
		ChartHeight:       DefaultChartH,
	}
	if env := os.Getenv("GAMEFORGE_SERVER"); env != "" {
		s.ServerURL = env
	}
	return s
}

// Load reads settings from path, layering the file over defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadOrDefault is Load, except a missing file yields the defaults.
func LoadOrDefault(path string) *Settings {
	s, err := Load(path)
	if err != nil {
		return Default()
	}
	return s
}

func Save(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.RequestTimeoutSec) * time.Second
}
