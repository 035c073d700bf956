package pano

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is looked for in the input directory when no explicit
// config path is given.
const DefaultConfigName = "tudopano.yaml"

// DefaultPanoramaWidth is the output width used when neither flag nor
// config file sets one.
const DefaultPanoramaWidth = 4096

// Config is the unified tool configuration. Zero values mean "use the
// default"; Normalize fills them in.
type Config struct {
	// Width of generated panoramas in pixels.
	Width int `yaml:"width"`
	// Prefix prepended to panorama filenames.
	Prefix string `yaml:"prefix"`
	// Ceiling is the maximum face side before downscaling kicks in.
	Ceiling int `yaml:"ceiling"`
	// Quality is the JPEG quality for panorama output.
	Quality int `yaml:"quality"`
	// KeepExtensions survive the post-conversion cleanup.
	KeepExtensions []string `yaml:"keep_extensions"`
	// SceneKeyword and EditKeyword feed the title heuristics.
	SceneKeyword string `yaml:"scene_keyword"`
	EditKeyword  string `yaml:"edit_keyword"`

	Site SiteConfig `yaml:"site"`
}

// SiteConfig configures the static gallery generator.
type SiteConfig struct {
	// Dir is the output directory for the generated site, relative to the
	// input directory unless absolute.
	Dir string `yaml:"dir"`
	// PlanNames are the filenames recognized as the floor-plan image.
	PlanNames []string `yaml:"plan_names"`
	// ThumbWidth is the width of index thumbnails in pixels.
	ThumbWidth int `yaml:"thumb_width"`
}

// DefaultConfig returns a fully populated configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Normalize()
	return cfg
}

// Normalize fills unset fields with defaults and clamps out-of-range
// values.
func (c *Config) Normalize() {
	if c.Width <= 0 {
		c.Width = DefaultPanoramaWidth
	}
	if c.Ceiling <= 0 {
		c.Ceiling = DefaultFaceCeiling
	}
	if c.Quality < 1 || c.Quality > 100 {
		c.Quality = DefaultJPEGQuality
	}
	if c.KeepExtensions == nil {
		c.KeepExtensions = append([]string(nil), DefaultKeepExtensions...)
	}
	if c.SceneKeyword == "" {
		c.SceneKeyword = "scene"
	}
	if c.EditKeyword == "" {
		c.EditKeyword = "edit"
	}
	if c.Site.Dir == "" {
		c.Site.Dir = "docs"
	}
	if c.Site.PlanNames == nil {
		c.Site.PlanNames = append([]string(nil), DefaultPlanNames...)
	}
	if c.Site.ThumbWidth <= 0 {
		c.Site.ThumbWidth = DefaultThumbWidth
	}
}

// LoadConfig loads the unified configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if config.Width < 0 {
		return nil, fmt.Errorf("width must not be negative")
	}
	// Quality 0 means "unset"; Normalize replaces it with the default.
	if config.Quality < 0 || config.Quality > 100 {
		return nil, fmt.Errorf("quality must be 0 or between 1 and 100")
	}

	config.Normalize()
	return &config, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
