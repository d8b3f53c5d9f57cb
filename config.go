package weave

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultConfigPath is where the server binary keeps the balancing file.
const DefaultConfigPath = "config/weave/modules.json"

// Config holds the balancing values read by the built-in modules.
type Config struct {
	Fireball FireballConfig `mapstructure:"fireball_module"`
	Split    SplitConfig    `mapstructure:"split_module"`
	Explode  ExplodeConfig  `mapstructure:"explode_module"`
}

// FireballConfig configures the fireball producer.
type FireballConfig struct {
	BaseDamage      float64 `mapstructure:"base_damage"`
	SplitDamage     float64 `mapstructure:"split_damage"`
	Speed           float64 `mapstructure:"speed"`
	ManaConsumption int     `mapstructure:"mana_consumption"`
	Cooldown        int     `mapstructure:"cooldown"`
	Complexity      float64 `mapstructure:"complexity"`
}

// SplitConfig configures the split-on-hit modifier.
type SplitConfig struct {
	SplitCount        int     `mapstructure:"split_count"`
	AngleBetweenShots float64 `mapstructure:"angle_between_shots"`
	ManaConsumption   int     `mapstructure:"mana_consumption"`
	Cooldown          int     `mapstructure:"cooldown"`
	Complexity        float64 `mapstructure:"complexity"`
}

// ExplodeConfig configures the explode-on-hit modifier.
type ExplodeConfig struct {
	ExplosionRadius float64 `mapstructure:"explosion_radius"`
	Damage          float64 `mapstructure:"damage"`
	ManaConsumption int     `mapstructure:"mana_consumption"`
	Cooldown        int     `mapstructure:"cooldown"`
	Complexity      float64 `mapstructure:"complexity"`
}

// DefaultConfig returns the built-in balancing values.
func DefaultConfig() Config {
	return Config{
		Fireball: FireballConfig{
			BaseDamage:      6,
			SplitDamage:     3,
			Speed:           1.85,
			ManaConsumption: 10,
			Cooldown:        20,
			Complexity:      1,
		},
		Split: SplitConfig{
			SplitCount:        3,
			AngleBetweenShots: 120,
			ManaConsumption:   5,
			Cooldown:          10,
			Complexity:        1.5,
		},
		Explode: ExplodeConfig{
			ExplosionRadius: 2,
			Damage:          10,
			ManaConsumption: 8,
			Cooldown:        15,
			Complexity:      2,
		},
	}
}

// LoadConfig reads the balancing file at path.
//
// A missing file is created with the defaults. A file that cannot be read or
// decoded yields the defaults together with the error, so callers always get
// a usable Config. Out-of-range values are replaced by their defaults.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v, def)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := writeDefaults(v, path); err != nil {
			return def, err
		}
		return def, nil
	}

	if err := v.ReadInConfig(); err != nil {
		return def, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return def, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// SaveConfig writes cfg to path, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v, cfg)
	return writeDefaults(v, path)
}

func writeDefaults(v *viper.Viper, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("fireball_module.base_damage", c.Fireball.BaseDamage)
	v.SetDefault("fireball_module.split_damage", c.Fireball.SplitDamage)
	v.SetDefault("fireball_module.speed", c.Fireball.Speed)
	v.SetDefault("fireball_module.mana_consumption", c.Fireball.ManaConsumption)
	v.SetDefault("fireball_module.cooldown", c.Fireball.Cooldown)
	v.SetDefault("fireball_module.complexity", c.Fireball.Complexity)

	v.SetDefault("split_module.split_count", c.Split.SplitCount)
	v.SetDefault("split_module.angle_between_shots", c.Split.AngleBetweenShots)
	v.SetDefault("split_module.mana_consumption", c.Split.ManaConsumption)
	v.SetDefault("split_module.cooldown", c.Split.Cooldown)
	v.SetDefault("split_module.complexity", c.Split.Complexity)

	v.SetDefault("explode_module.explosion_radius", c.Explode.ExplosionRadius)
	v.SetDefault("explode_module.damage", c.Explode.Damage)
	v.SetDefault("explode_module.mana_consumption", c.Explode.ManaConsumption)
	v.SetDefault("explode_module.cooldown", c.Explode.Cooldown)
	v.SetDefault("explode_module.complexity", c.Explode.Complexity)
}

// normalize replaces values no module can work with by their defaults.
func (c *Config) normalize() {
	def := DefaultConfig()

	if c.Fireball.Speed <= 0 {
		c.Fireball.Speed = def.Fireball.Speed
	}
	if c.Fireball.BaseDamage < 0 {
		c.Fireball.BaseDamage = def.Fireball.BaseDamage
	}
	if c.Fireball.SplitDamage < 0 {
		c.Fireball.SplitDamage = def.Fireball.SplitDamage
	}
	if c.Split.SplitCount < 0 {
		c.Split.SplitCount = def.Split.SplitCount
	}
	if c.Explode.ExplosionRadius <= 0 {
		c.Explode.ExplosionRadius = def.Explode.ExplosionRadius
	}
	if c.Explode.Damage < 0 {
		c.Explode.Damage = def.Explode.Damage
	}

	for _, s := range []*int{
		&c.Fireball.ManaConsumption, &c.Fireball.Cooldown,
		&c.Split.ManaConsumption, &c.Split.Cooldown,
		&c.Explode.ManaConsumption, &c.Explode.Cooldown,
	} {
		if *s < 0 {
			*s = 0
		}
	}
}
