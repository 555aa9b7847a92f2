package model

import (
	"knightmaze/maze"
)

// Rules are the distances and speeds that drive goblins, lives and the rescue.
type Rules struct {
	ChaseRadius  float64
	ChaseSpeed   float64
	CatchRadius  float64
	RescueRadius float64
}

func DefaultRules() Rules {
	return Rules{
		ChaseRadius:  200,
		ChaseSpeed:   2,
		CatchRadius:  30,
		RescueRadius: 30,
	}
}

// Events is what happened during one World.Update, for sound and state changes.
type Events struct {
	GoblinNear bool
	LifeLost   bool
	Rescued    bool
	Dead       bool
}

// World is one play session: the maze, the player and every sprite in it.
type World struct {
	Maze      maze.Maze
	BlockSize int
	Player    *Player
	Enemies   []*Sprite
	Princess  *Sprite
	Movement  Movement
	Rules     Rules
}

// Update runs one frame of play: movement, goblin chase, catches and rescue.
func (w *World) Update(c Controls) Events {
	var ev Events

	w.Movement.Apply(&w.Player.Pose, c, w.Maze, w.BlockSize)

	for _, enemy := range w.Enemies {
		enemy.Animate()

		dist := w.Player.DistanceTo(enemy.Pos)
		if dist < w.Rules.ChaseRadius {
			ev.GoblinNear = true
			enemy.MoveToward(w.Player.Pos, w.Rules.ChaseSpeed)
			dist = w.Player.DistanceTo(enemy.Pos)
		}

		if dist < w.Rules.CatchRadius {
			ev.LifeLost = true
			w.Player.LoseLife()
			if w.Player.IsDead() {
				ev.Dead = true
				return ev
			}
			w.Player.Respawn()
		}
	}

	if w.Princess != nil {
		w.Princess.Animate()
		if w.Player.DistanceTo(w.Princess.Pos) < w.Rules.RescueRadius {
			ev.Rescued = true
		}
	}

	return ev
}

// Sprites lists every billboard the renderer has to consider.
func (w *World) Sprites() []*Sprite {
	sprites := make([]*Sprite, 0, len(w.Enemies)+1)
	sprites = append(sprites, w.Enemies...)
	if w.Princess != nil {
		sprites = append(sprites, w.Princess)
	}
	return sprites
}
