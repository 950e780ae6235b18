package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the editor and the sampling plan.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug     bool    `json:"debug"`
	FramePath string  `json:"frame_path"`
	Zoom      float64 `json:"zoom"`

	// Editor parameters
	MinSizePx    int `json:"min_size_px"`
	HandleGripPx int `json:"handle_grip_px"`

	// Sampling parameters
	SampleIntervalSeconds int     `json:"sample_interval_seconds"`
	MaxSampleSeconds      int     `json:"max_sample_seconds"`
	LimitSampling         bool    `json:"limit_sampling"`
	DedupeThreshold       float64 `json:"dedupe_threshold"`
	KoreanOnly            bool    `json:"korean_only"`
	IncludeEnglish        bool    `json:"include_english"`

	// ROI persistence, native pixels
	RoiX int `json:"roi_x"`
	RoiY int `json:"roi_y"`
	RoiW int `json:"roi_w"`
	RoiH int `json:"roi_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                 false,
		FramePath:             "",
		Zoom:                  1.0,
		MinSizePx:             5,
		HandleGripPx:          6,
		SampleIntervalSeconds: 2,
		MaxSampleSeconds:      60,
		LimitSampling:         false,
		DedupeThreshold:       0.88,
		KoreanOnly:            false,
		IncludeEnglish:        false,
		RoiX:                  0,
		RoiY:                  0,
		RoiW:                  0,
		RoiH:                  0,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Zoom <= 0 || c.Zoom > 4 {
		c.Zoom = 1.0
	}
	if c.MinSizePx < 1 {
		c.MinSizePx = 5
	}
	if c.HandleGripPx < 2 {
		c.HandleGripPx = 6
	}
	if c.SampleIntervalSeconds <= 0 {
		c.SampleIntervalSeconds = 2
	}
	if c.MaxSampleSeconds <= 0 {
		c.MaxSampleSeconds = 60
	}
	if c.DedupeThreshold <= 0 || c.DedupeThreshold > 1 {
		c.DedupeThreshold = 0.88
	}
	if c.RoiW < 0 {
		c.RoiW = 0
	}
	if c.RoiH < 0 {
		c.RoiH = 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
