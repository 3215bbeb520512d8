package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ericogr/joust-arena/internal/engine"
	"github.com/ericogr/joust-arena/internal/game"
	"github.com/ericogr/joust-arena/internal/keys"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type SkillTemplate struct {
	Key        string          `yaml:"key" json:"key"`
	Name       string          `yaml:"name" json:"name"`
	Damage     int             `yaml:"damage" json:"damage"`
	EnergyCost int             `yaml:"energy_cost" json:"energy_cost"`
	Cooldown   int             `yaml:"cooldown" json:"cooldown"`
	AttackType game.AttackType `yaml:"attack_type" json:"attack_type"`
}

// ClassTemplate is the level-1 stat block every combatant of a class starts from.
type ClassTemplate struct {
	Class       game.Class       `yaml:"class" json:"class"`
	Health      int              `yaml:"health" json:"health"`
	Attack      int              `yaml:"attack" json:"attack"`
	Defense     int              `yaml:"defense" json:"defense"`
	Speed       int              `yaml:"speed" json:"speed"`
	AttackType  game.AttackType  `yaml:"attack_type" json:"attack_type"`
	DefenseType game.DefenseType `yaml:"defense_type" json:"defense_type"`
	Skills      []SkillTemplate  `yaml:"skills" json:"skills"`
}

type RosterEntry struct {
	Class game.Class `yaml:"class" json:"class"`
	Name  string     `yaml:"name" json:"name"`
}

type EnemyEntry struct {
	Class game.Class `yaml:"class" json:"class"`
	Level int        `yaml:"level" json:"level"`
	Name  string     `yaml:"name" json:"name"`
}

type TournamentTemplate struct {
	Name             string       `yaml:"name" json:"name"`
	RewardGold       int          `yaml:"reward_gold" json:"reward_gold"`
	RewardExperience int          `yaml:"reward_experience" json:"reward_experience"`
	Enemies          []EnemyEntry `yaml:"enemies" json:"enemies"`
}

type ServerConfig struct {
	Address string `yaml:"address" json:"address"`
	// PacingMS delays the opponent's reply so clients can animate it.
	// Zero resolves the opponent's turn before the command returns.
	PacingMS int `yaml:"pacing_ms" json:"pacing_ms"`
}

type StorageConfig struct {
	Path   string `yaml:"path" json:"path"`
	Key    string `yaml:"key" json:"key"`
	Memory bool   `yaml:"memory" json:"memory"`
}

// LoadedConfig is the validated configuration used by the server.
type LoadedConfig struct {
	Server         ServerConfig         `yaml:"server" json:"server"`
	Storage        StorageConfig        `yaml:"storage" json:"storage"`
	Rules          engine.Rules         `yaml:"rules" json:"rules"`
	StartingGold   int                  `yaml:"starting_gold" json:"starting_gold"`
	StartingRoster []RosterEntry        `yaml:"starting_roster" json:"starting_roster"`
	Classes        []ClassTemplate      `yaml:"classes" json:"classes"`
	Tournaments    []TournamentTemplate `yaml:"tournaments" json:"tournaments"`
}

// Pacing returns the configured opponent delay.
func (c *LoadedConfig) Pacing() time.Duration {
	return time.Duration(c.Server.PacingMS) * time.Millisecond
}

// ClassTemplate returns the template for cl.
func (c *LoadedConfig) ClassTemplate(cl game.Class) (ClassTemplate, bool) {
	for _, t := range c.Classes {
		if t.Class == cl {
			return t, true
		}
	}
	return ClassTemplate{}, false
}

// Default returns the built-in configuration.
func Default() (*LoadedConfig, error) {
	return parse(nil, "defaults")
}

// LoadConfig reads the YAML file at path and layers it over the built-in
// defaults. Lists given in the file replace the default lists entirely.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return parse(b, path)
}

func parse(b []byte, name string) (*LoadedConfig, error) {
	cfg := LoadedConfig{Rules: engine.DefaultRules()}
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse built-in defaults: %w", err)
	}
	if len(b) > 0 {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", name, err)
		}
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config file %s: %w", name, err)
	}
	return &cfg, nil
}

func validate(cfg *LoadedConfig) error {
	if err := validateRules(cfg.Rules); err != nil {
		return err
	}
	cfg.Storage.Key = keys.SlotKey(cfg.Storage.Key)
	if cfg.Storage.Key == "" {
		return fmt.Errorf("storage.key is empty")
	}
	if cfg.Server.PacingMS < 0 {
		return fmt.Errorf("server.pacing_ms must not be negative")
	}
	if cfg.StartingGold < 0 {
		return fmt.Errorf("starting_gold must not be negative")
	}

	classSet := make(map[game.Class]struct{}, len(cfg.Classes))
	for _, ct := range cfg.Classes {
		if err := validateClass(ct); err != nil {
			return err
		}
		if _, dup := classSet[ct.Class]; dup {
			return fmt.Errorf("duplicate class '%s'", ct.Class)
		}
		classSet[ct.Class] = struct{}{}
	}

	if len(cfg.StartingRoster) == 0 {
		return fmt.Errorf("starting_roster is empty")
	}
	for _, r := range cfg.StartingRoster {
		if _, ok := classSet[r.Class]; !ok {
			return fmt.Errorf("starting_roster entry '%s' uses unknown class '%s'", r.Name, r.Class)
		}
	}

	nameSet := make(map[string]struct{}, len(cfg.Tournaments))
	for _, t := range cfg.Tournaments {
		ln := strings.ToLower(strings.TrimSpace(t.Name))
		if ln == "" {
			return fmt.Errorf("tournament entry missing 'name'")
		}
		if _, dup := nameSet[ln]; dup {
			return fmt.Errorf("duplicate tournament name '%s'", t.Name)
		}
		nameSet[ln] = struct{}{}
		if len(t.Enemies) == 0 {
			return fmt.Errorf("tournament '%s' has no enemies", t.Name)
		}
		if t.RewardGold < 0 || t.RewardExperience < 0 {
			return fmt.Errorf("tournament '%s' has a negative reward", t.Name)
		}
		for _, e := range t.Enemies {
			if _, ok := classSet[e.Class]; !ok {
				return fmt.Errorf("tournament '%s' enemy '%s' uses unknown class '%s'", t.Name, e.Name, e.Class)
			}
			if e.Level < 1 {
				return fmt.Errorf("tournament '%s' enemy '%s' has level %d", t.Name, e.Name, e.Level)
			}
		}
	}
	return nil
}

func validateRules(r engine.Rules) error {
	switch {
	case r.CritChance < 0 || r.CritChance > 1:
		return fmt.Errorf("rules.crit_chance must be within [0,1]")
	case r.EnemySkillChance < 0 || r.EnemySkillChance > 1:
		return fmt.Errorf("rules.enemy_skill_chance must be within [0,1]")
	case r.CritMultiplier < 1:
		return fmt.Errorf("rules.crit_multiplier must be at least 1")
	case r.DefendMultiplier <= 0 || r.DefendMultiplier > 1:
		return fmt.Errorf("rules.defend_multiplier must be within (0,1]")
	case r.MaxEnergy <= 0:
		return fmt.Errorf("rules.max_energy must be positive")
	case r.EnergyRegen < 0 || r.PostBattleEnergy < 0 || r.RestCost < 0:
		return fmt.Errorf("rules energy and cost values must not be negative")
	case r.PostBattleHealPercent < 0 || r.PostBattleHealPercent > 100:
		return fmt.Errorf("rules.post_battle_heal_percent must be within [0,100]")
	case r.LevelThreshold <= 0:
		return fmt.Errorf("rules.level_threshold must be positive")
	case r.LevelUpGrowth < 1 || r.EnemyLevelGrowth < 0:
		return fmt.Errorf("rules growth factors are out of range")
	}
	return nil
}

func validateClass(ct ClassTemplate) error {
	if !ct.Class.Valid() {
		return fmt.Errorf("unknown class '%s'", ct.Class)
	}
	if ct.Health <= 0 || ct.Attack < 0 || ct.Defense < 0 {
		return fmt.Errorf("class '%s' has invalid stats", ct.Class)
	}
	if !validAttack(ct.AttackType) {
		return fmt.Errorf("class '%s' has unknown attack_type '%s'", ct.Class, ct.AttackType)
	}
	switch ct.DefenseType {
	case game.DefenseHeavy, game.DefenseMedium, game.DefenseLight:
	default:
		return fmt.Errorf("class '%s' has unknown defense_type '%s'", ct.Class, ct.DefenseType)
	}
	seen := make(map[string]struct{}, len(ct.Skills))
	for _, sk := range ct.Skills {
		if strings.TrimSpace(sk.Key) == "" {
			return fmt.Errorf("class '%s' skill '%s' missing 'key'", ct.Class, sk.Name)
		}
		if _, dup := seen[sk.Key]; dup {
			return fmt.Errorf("class '%s' has duplicate skill key '%s'", ct.Class, sk.Key)
		}
		seen[sk.Key] = struct{}{}
		if sk.Damage < 0 || sk.EnergyCost < 0 || sk.Cooldown < 0 {
			return fmt.Errorf("class '%s' skill '%s' has negative values", ct.Class, sk.Key)
		}
		if !validAttack(sk.AttackType) {
			return fmt.Errorf("class '%s' skill '%s' has unknown attack_type '%s'", ct.Class, sk.Key, sk.AttackType)
		}
	}
	return nil
}

func validAttack(a game.AttackType) bool {
	switch a {
	case game.AttackSlash, game.AttackPierce, game.AttackMagic:
		return true
	}
	return false
}
