package engine

// Rules holds the balance constants of the combat engine. The zero value is
// not useful; start from DefaultRules and override.
type Rules struct {
	CritChance              float64 `yaml:"crit_chance" json:"crit_chance"`
	CritMultiplier          float64 `yaml:"crit_multiplier" json:"crit_multiplier"`
	DefendMultiplier        float64 `yaml:"defend_multiplier" json:"defend_multiplier"`
	EnemySkillChance        float64 `yaml:"enemy_skill_chance" json:"enemy_skill_chance"`
	MaxEnergy               int     `yaml:"max_energy" json:"max_energy"`
	EnergyRegen             int     `yaml:"energy_regen" json:"energy_regen"`
	PostBattleHealPercent   int     `yaml:"post_battle_heal_percent" json:"post_battle_heal_percent"`
	PostBattleEnergy        int     `yaml:"post_battle_energy" json:"post_battle_energy"`
	ExperiencePerEnemyLevel int     `yaml:"experience_per_enemy_level" json:"experience_per_enemy_level"`
	LevelThreshold          int     `yaml:"level_threshold" json:"level_threshold"`
	LevelUpGrowth           float64 `yaml:"level_up_growth" json:"level_up_growth"`
	EnemyLevelGrowth        float64 `yaml:"enemy_level_growth" json:"enemy_level_growth"`
	RestCost                int     `yaml:"rest_cost" json:"rest_cost"`
}

func DefaultRules() Rules {
	return Rules{
		CritChance:              0.10,
		CritMultiplier:          1.5,
		DefendMultiplier:        0.5,
		EnemySkillChance:        0.30,
		MaxEnergy:               100,
		EnergyRegen:             10,
		PostBattleHealPercent:   30,
		PostBattleEnergy:        20,
		ExperiencePerEnemyLevel: 20,
		LevelThreshold:          100,
		LevelUpGrowth:           1.1,
		EnemyLevelGrowth:        0.1,
		RestCost:                25,
	}
}
