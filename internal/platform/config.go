package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/notepad/pkg/core"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NOTEPAD_"

// Share sinks selectable in Config.Share.
const (
	ShareLink      = "link"
	ShareClipboard = "clipboard"
	ShareSpool     = "spool"
)

// Config is the file configuration of a notepad project (notepad.yaml).
// Empty fields keep their defaults.
type Config struct {
	Adapter    string      `yaml:"adapter"`
	Data       string      `yaml:"data"`
	Namespace  string      `yaml:"namespace"`
	Team       string      `yaml:"team"`
	Theme      string      `yaml:"theme"`
	Share      string      `yaml:"share"`
	Caption    string      `yaml:"caption"`
	ComposeURL string      `yaml:"compose_url"`
	Downloads  string      `yaml:"downloads"`
	Spool      string      `yaml:"spool"`
	Brand      string      `yaml:"brand"`
	Background string      `yaml:"background"`
	Teams      []core.Team `yaml:"teams"`
	DevSafety  *bool       `yaml:"dev_safety"`
	ReadOnly   *bool       `yaml:"read_only"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Adapter:   AdapterFS,
		Namespace: core.DefaultNamespace,
		Team:      core.DefaultTeams[0].Name,
		Theme:     "light",
		Share:     ShareLink,
		Downloads: ".",
		Teams:     core.DefaultTeams,
	}
}

// LoadConfig reads root/notepad.yaml and root/.env on top of the defaults,
// then applies NOTEPAD_* variables from the process environment.
// Missing files are not an error. An empty root skips both files.
func LoadConfig(root string) (Config, error) {
	cfg := DefaultConfig()

	if root != "" {
		data, err := os.ReadFile(filepath.Join(root, ConfigFile))
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
		default:
			var file Config
			if err := yaml.Unmarshal(data, &file); err != nil {
				return cfg, fmt.Errorf("invalid %s: %w", ConfigFile, err)
			}
			cfg = cfg.merge(file)
		}
	}

	env := map[string]string{}
	if root != "" {
		dotenv, err := godotenv.Read(filepath.Join(root, ".env"))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("invalid .env: %w", err)
		}
		for k, v := range dotenv {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return cfg.applyEnv(env), nil
}

func (c Config) merge(o Config) Config {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Adapter, o.Adapter)
	set(&c.Data, o.Data)
	set(&c.Namespace, o.Namespace)
	set(&c.Team, o.Team)
	set(&c.Theme, o.Theme)
	set(&c.Share, o.Share)
	set(&c.Caption, o.Caption)
	set(&c.ComposeURL, o.ComposeURL)
	set(&c.Downloads, o.Downloads)
	set(&c.Spool, o.Spool)
	set(&c.Brand, o.Brand)
	set(&c.Background, o.Background)
	if len(o.Teams) > 0 {
		c.Teams = o.Teams
	}
	if o.DevSafety != nil {
		c.DevSafety = o.DevSafety
	}
	if o.ReadOnly != nil {
		c.ReadOnly = o.ReadOnly
	}
	return c
}

func (c Config) applyEnv(env map[string]string) Config {
	get := func(name string) string {
		return strings.TrimSpace(env[EnvPrefix+name])
	}
	over := Config{
		Adapter:    get("ADAPTER"),
		Data:       get("DATA"),
		Namespace:  get("NAMESPACE"),
		Team:       get("TEAM"),
		Theme:      get("THEME"),
		Share:      get("SHARE"),
		Caption:    get("CAPTION"),
		ComposeURL: get("COMPOSE_URL"),
		Downloads:  get("DOWNLOADS"),
		Spool:      get("SPOOL"),
		Brand:      get("BRAND"),
		Background: get("BACKGROUND"),
	}
	over.DevSafety = envBool(get("DEV_SAFETY"))
	over.ReadOnly = envBool(get("READ_ONLY"))
	return c.merge(over)
}

// envBool parses a switch-like value. Anything unrecognized is unset.
func envBool(v string) *bool {
	var b bool
	switch strings.ToLower(v) {
	case "0", "false", "off", "no":
		b = false
	case "1", "true", "on", "yes":
		b = true
	default:
		return nil
	}
	return &b
}

// Options converts the storage part of c into service options.
func (c Config) Options() []Option {
	opts := []Option{
		WithAdapter(c.Adapter),
		WithNamespace(c.Namespace),
	}
	if c.ReadOnly != nil {
		opts = append(opts, WithReadOnly(*c.ReadOnly))
	}
	if c.DevSafety != nil {
		opts = append(opts, WithDevSafety(*c.DevSafety))
	}
	return opts
}
