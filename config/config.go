// Package config loads runtime settings. Every value has a default, a config
// file may override some of them and KNIGHTMAZE_* environment variables
// override both (KNIGHTMAZE_WINDOW_WIDTH for window.width).
package config

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "KNIGHTMAZE"

type Config struct {
	Window     Window     `mapstructure:"window"`
	Display    Display    `mapstructure:"display"`
	World      World      `mapstructure:"world"`
	Caster     Caster     `mapstructure:"caster"`
	Projection Projection `mapstructure:"projection"`
	Sprites    Sprites    `mapstructure:"sprites"`
	Minimap    Minimap    `mapstructure:"minimap"`
	Player     Player     `mapstructure:"player"`
	Enemies    Enemies    `mapstructure:"enemies"`
	Princess   Princess   `mapstructure:"princess"`
	Textures   Textures   `mapstructure:"textures"`
	Audio      Audio      `mapstructure:"audio"`
	Log        Log        `mapstructure:"log"`
}

type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	TPS    int    `mapstructure:"tps"`
}

type Display struct {
	// Backend is "window" or "terminal".
	Backend string `mapstructure:"backend"`
}

type World struct {
	MazeFile  string `mapstructure:"maze_file"`
	BlockSize int    `mapstructure:"block_size"`
}

type Caster struct {
	StepFraction float64 `mapstructure:"step_fraction"`
	MaxCells     float64 `mapstructure:"max_cells"`
}

type Projection struct {
	Constant float64 `mapstructure:"constant"`
	Sky      string  `mapstructure:"sky"`
	Ground   string  `mapstructure:"ground"`
}

type Sprites struct {
	MinDistance  float64 `mapstructure:"min_distance"`
	MaxDistance  float64 `mapstructure:"max_distance"`
	SizeConstant float64 `mapstructure:"size_constant"`
	CullDivisor  float64 `mapstructure:"cull_divisor"`
}

type Minimap struct {
	CellSize int     `mapstructure:"cell_size"`
	X        float64 `mapstructure:"x"`
	Y        float64 `mapstructure:"y"`
}

type Player struct {
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
	Angle float64 `mapstructure:"angle"`
	// FOV in degrees.
	FOV           float64 `mapstructure:"fov"`
	Speed         float64 `mapstructure:"speed"`
	RotationSpeed float64 `mapstructure:"rotation_speed"`
	Lives         int     `mapstructure:"lives"`
}

type Point struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

type Enemies struct {
	Spawns      []Point `mapstructure:"spawns"`
	FrameWidth  int     `mapstructure:"frame_width"`
	FrameHeight int     `mapstructure:"frame_height"`
	Frames      int     `mapstructure:"frames"`
	FrameTicks  int     `mapstructure:"frame_ticks"`
	ChaseRadius float64 `mapstructure:"chase_radius"`
	ChaseSpeed  float64 `mapstructure:"chase_speed"`
	CatchRadius float64 `mapstructure:"catch_radius"`
}

type Princess struct {
	X            float64 `mapstructure:"x"`
	Y            float64 `mapstructure:"y"`
	FrameWidth   int     `mapstructure:"frame_width"`
	FrameHeight  int     `mapstructure:"frame_height"`
	RescueRadius float64 `mapstructure:"rescue_radius"`
}

type Textures struct {
	// Dir is searched for the files below. Missing files get generated textures.
	Dir   string            `mapstructure:"dir"`
	Files map[string]string `mapstructure:"files"`
}

type Audio struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate int     `mapstructure:"sample_rate"`
	Music      string  `mapstructure:"music"`
	Goblin     string  `mapstructure:"goblin"`
	Victory    string  `mapstructure:"victory"`
	Volume     float64 `mapstructure:"volume"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives log output instead of stderr when set.
	File string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1300)
	v.SetDefault("window.height", 900)
	v.SetDefault("window.title", "Knight Maze")
	v.SetDefault("window.tps", 60)

	v.SetDefault("display.backend", "window")

	v.SetDefault("world.maze_file", "maze.txt")
	v.SetDefault("world.block_size", 100)

	v.SetDefault("caster.step_fraction", 0.01)
	v.SetDefault("caster.max_cells", 64)

	v.SetDefault("projection.constant", 120)
	v.SetDefault("projection.sky", "#828282")
	v.SetDefault("projection.ground", "#8b0000")

	v.SetDefault("sprites.min_distance", 50)
	v.SetDefault("sprites.max_distance", 1000)
	v.SetDefault("sprites.size_constant", 40)
	v.SetDefault("sprites.cull_divisor", 2.9)

	v.SetDefault("minimap.cell_size", 20)
	v.SetDefault("minimap.x", 1030)
	v.SetDefault("minimap.y", 10)

	v.SetDefault("player.x", 150)
	v.SetDefault("player.y", 150)
	v.SetDefault("player.angle", 0)
	v.SetDefault("player.fov", 60)
	v.SetDefault("player.speed", 5)
	v.SetDefault("player.rotation_speed", math.Pi/25)
	v.SetDefault("player.lives", 3)

	v.SetDefault("enemies.spawns", []map[string]any{
		{"x": 1090, "y": 165},
		{"x": 180, "y": 690},
		{"x": 1070, "y": 590},
		{"x": 500, "y": 420},
	})
	v.SetDefault("enemies.frame_width", 64)
	v.SetDefault("enemies.frame_height", 64)
	v.SetDefault("enemies.frames", 4)
	v.SetDefault("enemies.frame_ticks", 8)
	v.SetDefault("enemies.chase_radius", 200)
	v.SetDefault("enemies.chase_speed", 2)
	v.SetDefault("enemies.catch_radius", 30)

	v.SetDefault("princess.x", 500)
	v.SetDefault("princess.y", 500)
	v.SetDefault("princess.frame_width", 64)
	v.SetDefault("princess.frame_height", 64)
	v.SetDefault("princess.rescue_radius", 30)

	v.SetDefault("textures.dir", "assets")
	v.SetDefault("textures.files", map[string]string{
		"#": "wall1.png",
		"+": "wall2.png",
		"|": "wall3.png",
		"-": "wall4.png",
		"g": "goblin.png",
		"p": "princess.png",
		"s": "sword.png",
		"h": "heart.png",
	})

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("audio.music", "assets/music.wav")
	v.SetDefault("audio.goblin", "assets/goblin.wav")
	v.SetDefault("audio.victory", "assets/victory.wav")
	v.SetDefault("audio.volume", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %q", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.World.BlockSize <= 0:
		return errors.Errorf("world.block_size %d must be positive", c.World.BlockSize)
	case c.Caster.StepFraction <= 0 || c.Caster.StepFraction > 1:
		return errors.Errorf("caster.step_fraction %v must be in (0, 1]", c.Caster.StepFraction)
	case c.Display.Backend != "window" && c.Display.Backend != "terminal":
		return errors.Errorf("display.backend %q must be window or terminal", c.Display.Backend)
	case c.Projection.Constant <= 0:
		return errors.Errorf("projection.constant %v must be positive", c.Projection.Constant)
	case c.Sprites.MinDistance <= 0:
		return errors.Errorf("sprites.min_distance %v must be positive", c.Sprites.MinDistance)
	case c.Sprites.MaxDistance <= c.Sprites.MinDistance:
		return errors.Errorf("sprites.max_distance %v must exceed sprites.min_distance %v",
			c.Sprites.MaxDistance, c.Sprites.MinDistance)
	case c.Sprites.SizeConstant <= 0:
		return errors.Errorf("sprites.size_constant %v must be positive", c.Sprites.SizeConstant)
	case c.Sprites.CullDivisor <= 0:
		return errors.Errorf("sprites.cull_divisor %v must be positive", c.Sprites.CullDivisor)
	case c.Minimap.CellSize <= 0:
		return errors.Errorf("minimap.cell_size %d must be positive", c.Minimap.CellSize)
	}
	return nil
}

// FOVRadians converts the configured field of view.
func (p Player) FOVRadians() float64 {
	return geom.Radians(p.FOV)
}

// TextureFiles keys the configured texture files by cell identifier.
// Entries whose key is not exactly one rune are ignored.
func (t Textures) TextureFiles() map[rune]string {
	files := make(map[rune]string, len(t.Files))
	for k, name := range t.Files {
		r := []rune(k)
		if len(r) != 1 {
			continue
		}
		files[r[0]] = name
	}
	return files
}

// ParseColor reads "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	s = strings.TrimPrefix(s, "#")

	var err error
	switch len(s) {
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return c, errors.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if err != nil {
		return c, errors.Wrapf(err, "color %q", s)
	}
	return c, nil
}
