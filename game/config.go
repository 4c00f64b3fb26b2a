package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

var ErrInvalidPolicy = errors.New("invalid resolve policy")

// ResolvePolicy decides what a selection does while a mismatched pair is
// still showing
type ResolvePolicy int

const (
	// FlushOnSelect hides the mismatched pair at once and treats the new
	// selection as the first pick of the next turn
	FlushOnSelect ResolvePolicy = iota
	// IgnoreWhileResolving drops selections until the pair is hidden
	IgnoreWhileResolving
)

var resolvePolicies = map[string]ResolvePolicy{
	"flush":  FlushOnSelect,
	"ignore": IgnoreWhileResolving,
}

func (policy ResolvePolicy) String() string {
	for name, p := range resolvePolicies {
		if p == policy {
			return name
		}
	}
	return fmt.Sprint(int(policy))
}

func (policy *ResolvePolicy) Set(value string) error {
	p, ok := resolvePolicies[value]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPolicy, value)
	}
	*policy = p
	return nil
}

func (policy *ResolvePolicy) Type() string {
	return "policy"
}

func (policy ResolvePolicy) MarshalYAML() (interface{}, error) {
	return policy.String(), nil
}

func (policy *ResolvePolicy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err != nil {
		return err
	}
	return policy.Set(value)
}

type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Seed int64 `yaml:"seed"`

	// Delay before a mismatched pair is turned back over
	FlipDelay time.Duration `yaml:"flip_delay"`
	Policy    ResolvePolicy `yaml:"policy"`

	// Time between two selections made by a director
	ActInterval time.Duration `yaml:"act_interval"`

	// Directory holding cover.png and the face pictures; empty means
	// assets/ next to the executable
	AssetsDir string `yaml:"assets_dir"`

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string `yaml:"snapshots_dir"`

	// Snapshot to load the first board's layout from
	Snapshot *Snapshot `yaml:"-"`
	// Resume carries the snapshot's matched tiles, score and turns over,
	// instead of dealing its layout face down
	Resume bool `yaml:"-"`
}

func NewConfig() Config {
	return Config{
		Width:       4,
		Height:      4,
		FlipDelay:   DefaultFlipDelay,
		Policy:      FlushOnSelect,
		ActInterval: DefaultActInterval,
	}
}

// LoadConfigFile overlays the YAML document at path onto config
func LoadConfigFile(path string, config *Config) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(in, config); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config.Validate()
}

func (config Config) Validate() error {
	if err := ValidateDimensions(config.Width, config.Height); err != nil {
		return err
	}
	if config.FlipDelay < 0 {
		return fmt.Errorf("flip delay must not be negative, got %s", config.FlipDelay)
	}
	if config.ActInterval <= 0 {
		return fmt.Errorf("act interval must be positive, got %s", config.ActInterval)
	}
	return nil
}
