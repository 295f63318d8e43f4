package config

import "sort"

func preset(algorithm string, edit func(c *Config)) *Config {
	c := DefaultConfig()
	c.Algorithm = algorithm
	edit(c)
	return c
}

var Presets = map[string]map[string]*Config{
	"bubble": {
		"small": preset("bubble", func(c *Config) {
			c.Sequence.Size = 15
			c.Display.FPS = 20
		}),
		"reversed": preset("bubble", func(c *Config) {
			c.Sequence.Size = 30
			c.Sequence.Pattern = "reversed"
		}),
		"scenario": preset("bubble", func(c *Config) {
			c.Sequence.Values = []int{5, 3, 1, 4, 2}
			c.Display.FPS = 4
		}),
	},
	"insertion": {
		"nearly-sorted": preset("insertion", func(c *Config) {
			c.Sequence.Size = 60
			c.Sequence.Pattern = "nearly-sorted"
		}),
		"reversed": preset("insertion", func(c *Config) {
			c.Sequence.Size = 25
			c.Sequence.Pattern = "reversed"
		}),
	},
	"merge": {
		"large": preset("merge", func(c *Config) {
			c.Sequence.Size = 120
			c.Display.FPS = 120
		}),
		"duplicates": preset("merge", func(c *Config) {
			c.Sequence.Size = 80
			c.Sequence.Max = 9
		}),
	},
	"quick": {
		"sorted": preset("quick", func(c *Config) {
			c.Sequence.Size = 40
			c.Sequence.Pattern = "sorted"
		}),
		"large": preset("quick", func(c *Config) {
			c.Sequence.Size = 150
			c.Display.FPS = 120
		}),
		"descending": preset("quick", func(c *Config) {
			c.Direction = "descending"
		}),
	},
	"bucket": {
		"wide": preset("bucket", func(c *Config) {
			c.Sequence.Max = 1000
		}),
		"dense": preset("bucket", func(c *Config) {
			c.Sequence.Size = 80
			c.Sequence.Min = 60
			c.Sequence.Max = 120
		}),
	},
}

// GetPreset returns a copy so callers can apply flag overrides freely.
func GetPreset(algorithm, name string) *Config {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := algoPresets[name]
	if !ok {
		return nil
	}
	out := *cfg
	out.Sequence.Values = append([]int(nil), cfg.Sequence.Values...)
	return &out
}

func ListPresets(algorithm string) []string {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algoPresets))
	for name := range algoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
