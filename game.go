package main

import (
	"github.com/harbdog/raycaster-go/geom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"knightmaze/audio"
	"knightmaze/caster"
	"knightmaze/config"
	"knightmaze/engine"
	"knightmaze/logger"
	"knightmaze/maze"
	"knightmaze/model"
	"knightmaze/render"
)

// Game holds everything one run of the program needs, independent of the
// backend presenting it. Backends feed it Input once per frame with Update
// and present the framebuffer after Render.
type Game struct {
	cfg   *config.Config
	state State
	// view3D selects the first-person view; false shows the top-down debug map.
	view3D bool

	world *model.World

	fb          *engine.Framebuffer
	tex         *engine.TextureManager
	projector   *render.Projector
	billboarder *render.Billboarder
	minimap     *render.Minimap
	topDown     *render.TopDown
	hud         *render.HUD

	sound *audio.Player
	log   *logrus.Entry
}

// NewGame wires the renderers from cfg. The maze is not read until a
// session starts.
func NewGame(cfg *config.Config, tex *engine.TextureManager, sound *audio.Player) (*Game, error) {
	sky, err := config.ParseColor(cfg.Projection.Sky)
	if err != nil {
		return nil, errors.Wrap(err, "projection.sky")
	}
	ground, err := config.ParseColor(cfg.Projection.Ground)
	if err != nil {
		return nil, errors.Wrap(err, "projection.ground")
	}

	c := caster.New()
	c.StepFraction = cfg.Caster.StepFraction
	c.MaxCells = cfg.Caster.MaxCells

	projector := render.NewProjector(c)
	projector.ProjectionConstant = cfg.Projection.Constant
	projector.Sky, projector.Ground = sky, ground

	billboarder := render.NewBillboarder(c)
	billboarder.MinDistance = cfg.Sprites.MinDistance
	billboarder.MaxDistance = cfg.Sprites.MaxDistance
	billboarder.SizeConstant = cfg.Sprites.SizeConstant
	billboarder.CullDivisor = cfg.Sprites.CullDivisor

	minimap := render.NewMinimap(geom.Vector2{X: cfg.Minimap.X, Y: cfg.Minimap.Y})
	minimap.CellSize = cfg.Minimap.CellSize

	fb := engine.NewFramebuffer(cfg.Window.Width, cfg.Window.Height)

	return &Game{
		cfg:         cfg,
		state:       MainMenu,
		view3D:      true,
		fb:          fb,
		tex:         tex,
		projector:   projector,
		billboarder: billboarder,
		minimap:     minimap,
		topDown:     render.NewTopDown(c),
		hud:         render.NewHUD(),
		sound:       sound,
		log:         logger.For("game"),
	}, nil
}

func (g *Game) State() State                     { return g.state }
func (g *Game) World() *model.World              { return g.world }
func (g *Game) Framebuffer() *engine.Framebuffer { return g.fb }

// newSession reloads the maze and places the player and sprites at their
// configured spawn points.
func (g *Game) newSession() error {
	grid, err := maze.LoadFile(g.cfg.World.MazeFile)
	if err != nil {
		return err
	}

	pc := g.cfg.Player
	player := model.NewPlayer(pc.X, pc.Y, pc.Angle, pc.FOVRadians(), pc.Lives)

	ec := g.cfg.Enemies
	template := model.NewSprite(0, 0, 0, 0, 'g', ec.FrameWidth, ec.FrameHeight)
	template.Frames = ec.Frames
	template.FrameTicks = ec.FrameTicks

	enemies := make([]*model.Sprite, 0, len(ec.Spawns))
	for _, spawn := range ec.Spawns {
		enemy, err := template.Spawn(spawn.X, spawn.Y)
		if err != nil {
			return err
		}
		enemies = append(enemies, enemy)
	}

	prc := g.cfg.Princess
	princess := model.NewSprite(prc.X, prc.Y, 0, 0, 'p', prc.FrameWidth, prc.FrameHeight)

	g.world = &model.World{
		Maze:      grid,
		BlockSize: g.cfg.World.BlockSize,
		Player:    player,
		Enemies:   enemies,
		Princess:  princess,
		Movement: model.Movement{
			Speed:         pc.Speed,
			RotationSpeed: pc.RotationSpeed,
		},
		Rules: model.Rules{
			ChaseRadius:  ec.ChaseRadius,
			ChaseSpeed:   ec.ChaseSpeed,
			CatchRadius:  ec.CatchRadius,
			RescueRadius: prc.RescueRadius,
		},
	}

	g.log.WithFields(logrus.Fields{
		"maze":    g.cfg.World.MazeFile,
		"rows":    grid.Height(),
		"cols":    grid.Width(),
		"enemies": len(enemies),
	}).Info("session started")

	// the last frame of the previous session must not flash up
	g.fb.Clear()
	return nil
}

// Update advances the state machine by one frame. An error means the maze
// could not be loaded and the program has to stop.
func (g *Game) Update(in Input) error {
	switch g.state {
	case MainMenu, Win, GameOver:
		if !in.Confirm {
			return nil
		}
		if err := g.newSession(); err != nil {
			return err
		}
		g.setState(Playing)
		g.sound.PlayMusic()

	case Playing:
		if in.ToggleView {
			g.view3D = !g.view3D
		}

		ev := g.world.Update(in.Controls)
		if ev.GoblinNear {
			g.sound.Play(audio.Goblin)
		}
		if ev.LifeLost {
			g.log.WithField("lives", g.world.Player.Lives).Info("caught by a goblin")
		}
		switch {
		case ev.Dead:
			g.sound.StopMusic()
			g.setState(GameOver)
		case ev.Rescued:
			g.sound.StopMusic()
			g.sound.Play(audio.Victory)
			g.setState(Win)
		}
	}
	return nil
}

func (g *Game) setState(s State) {
	g.log.WithFields(logrus.Fields{"from": g.state, "to": s}).Debug("state change")
	g.state = s
}

// Render draws the current play frame into the framebuffer. Menu states
// leave it untouched; backends draw those themselves.
func (g *Game) Render() {
	if g.state != Playing || g.world == nil {
		return
	}

	w := g.world
	pose := w.Player.Pose
	sprites := w.Sprites()

	if !g.view3D {
		g.topDown.RenderMaze(g.fb, w.Maze, pose, w.BlockSize, sprites)
		return
	}

	g.projector.Render3D(g.fb, w.Maze, pose, w.BlockSize, g.tex)
	g.billboarder.Draw(g.fb, w.Maze, pose, sprites, w.BlockSize, g.tex)
	g.minimap.Draw(g.fb, w.Maze, w.BlockSize, pose, sprites)
	g.hud.DrawSword(g.fb, g.tex)
	g.hud.DrawLives(g.fb, g.tex, w.Player.Lives, w.Player.MaxLives)
}
