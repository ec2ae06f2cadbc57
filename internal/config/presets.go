package config

// Presets are named system layouts. Seeded presets reproduce the same body
// parameters on every launch.
var Presets = map[string]*Config{
	"inner": {
		Planets: 4, Seed: 1, FPS: DefaultFPS,
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
	},
	"classic": {
		Planets: 8, Seed: 9, FPS: DefaultFPS,
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
	},
	"crowded": {
		Planets: 24, Seed: 31, FPS: DefaultFPS,
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
	},
	"empty": {
		Planets: 0, FPS: DefaultFPS,
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
