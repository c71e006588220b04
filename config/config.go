// Package config loads engine settings from TOML files. Every field
// is optional; unset values keep the engine defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/skillscape/skillscape/engine"
)

// File mirrors the TOML layout of a skillscape config file.
type File struct {
	Engine engineSection `toml:"engine"`
	Force  forceSection  `toml:"force"`
	Radial radialSection `toml:"radial"`
	Loader loaderSection `toml:"loader"`
}

type engineSection struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Padding  float64 `toml:"padding"`
	Strategy string  `toml:"strategy"` // auto, force, radial
}

type forceSection struct {
	RepelStrength  float64 `toml:"repel_strength"`
	SpringConstant float64 `toml:"spring_constant"`
	IdealLength    float64 `toml:"ideal_length"`
	CenterPull     float64 `toml:"center_pull"`
	Damping        float64 `toml:"damping"`
	AlphaDecay     float64 `toml:"alpha_decay"`
	Seed           int64   `toml:"seed"`
}

type radialSection struct {
	AnchorRadius    float64 `toml:"anchor_radius"`
	LevelRadius     float64 `toml:"level_radius"`
	DepthMultiplier float64 `toml:"depth_multiplier"`
	FanSpreadDeg    float64 `toml:"fan_spread_deg"`
}

type loaderSection struct {
	NodeBatch  int `toml:"node_batch"`
	EdgeBatch  int `toml:"edge_batch"`
	DelayTicks int `toml:"delay_ticks"`
}

// Load reads a TOML file and overlays it on the engine defaults. An
// empty path returns the defaults untouched.
func Load(path string) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	apply(&cfg, &f)
	return cfg, nil
}

func apply(cfg *engine.Config, f *File) {
	if f.Engine.Width > 0 {
		cfg.Width = f.Engine.Width
	}
	if f.Engine.Height > 0 {
		cfg.Height = f.Engine.Height
	}
	if f.Engine.Padding > 0 {
		cfg.Padding = f.Engine.Padding
	}
	switch f.Engine.Strategy {
	case "force":
		cfg.Strategy = engine.StrategyForce
	case "radial":
		cfg.Strategy = engine.StrategyRadial
	case "", "auto":
		cfg.Strategy = engine.StrategyAuto
	}

	setF(&cfg.Force.RepelStrength, f.Force.RepelStrength)
	setF(&cfg.Force.SpringConstant, f.Force.SpringConstant)
	setF(&cfg.Force.IdealLength, f.Force.IdealLength)
	setF(&cfg.Force.CenterPull, f.Force.CenterPull)
	setF(&cfg.Force.Damping, f.Force.Damping)
	setF(&cfg.Force.AlphaDecay, f.Force.AlphaDecay)
	if f.Force.Seed != 0 {
		cfg.Force.Seed = f.Force.Seed
	}

	setF(&cfg.Radial.AnchorRadius, f.Radial.AnchorRadius)
	setF(&cfg.Radial.LevelRadius, f.Radial.LevelRadius)
	setF(&cfg.Radial.DepthMultiplier, f.Radial.DepthMultiplier)
	if f.Radial.FanSpreadDeg > 0 {
		cfg.Radial.FanSpread = f.Radial.FanSpreadDeg * degToRad
	}

	if f.Loader.NodeBatch > 0 {
		cfg.Loader.NodeBatch = f.Loader.NodeBatch
	}
	if f.Loader.EdgeBatch > 0 {
		cfg.Loader.EdgeBatch = f.Loader.EdgeBatch
	}
	if f.Loader.DelayTicks > 0 {
		cfg.Loader.DelayTicks = f.Loader.DelayTicks
	}
}

const degToRad = 3.141592653589793 / 180

func setF(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}
