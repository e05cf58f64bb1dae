package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlockfall loads Blockfall configuration. Values missing from a file
// keep their defaults.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml -> ./configs/blockfall.yaml -> embedded default
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	cfg := DefaultBlockfallConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultBlockfallConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blockfall.yaml"); userCfgPath != "" {
		if parsed, ok := tryLoad(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := tryLoad(filepath.Join("configs", "blockfall.yaml")); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		return DefaultBlockfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or malformed files are
// skipped so the next location in the search order is used.
func tryLoad(path string) (BlockfallConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BlockfallConfig{}, false
	}
	cfg := DefaultBlockfallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlockfallConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

// ApplyBlockfallPreset modifies the config based on a difficulty preset.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust special block fuses based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Specials.BombTimer = cfg.Specials.BombTimer + 1
	case DifficultyHard:
		if cfg.Specials.BombTimer > 2 {
			cfg.Specials.BombTimer = 2
		}
	}
}

// Marshal renders cfg as YAML, as printed by the config command.
func Marshal(cfg BlockfallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
