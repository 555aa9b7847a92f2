package caster

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"knightmaze/maze"
	"knightmaze/model"
)

const blockSize = 100

func loadMaze(t *testing.T, rows ...string) maze.Maze {
	t.Helper()
	m, err := maze.Load(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("maze.Load() error = %v", err)
	}
	return m
}

func pose(x, y, a float64) model.Pose {
	return model.Pose{Pos: geom.Vector2{X: x, Y: y}, A: a, FOV: math.Pi / 3}
}

type recordingPlotter struct {
	points int
}

func (r *recordingPlotter) SetPixel(x, y int, c color.RGBA) {
	r.points++
}

func TestCastRingScenario(t *testing.T) {
	m := loadMaze(t, "###", "# #", "###")
	c := New()

	hit := c.Cast(m, pose(150, 150, 0), 0, blockSize, nil)

	step := c.StepFraction * blockSize
	if math.Abs(hit.Distance-blockSize/2) > step {
		t.Errorf("Distance = %v, want %v within %v", hit.Distance, blockSize/2, step)
	}
	if hit.Impact != '#' {
		t.Errorf("Impact = %q, want '#'", hit.Impact)
	}
}

func TestCastConvergesToCellDistance(t *testing.T) {
	m := loadMaze(t,
		"########",
		"#      #",
		"########",
	)
	// viewer on the west boundary of cell 1, the wall face is six cells east
	p := pose(100, 150, 0)
	want := 6.0 * blockSize

	for _, fraction := range []float64{0.03, 0.01, 0.001} {
		c := &Caster{StepFraction: fraction, MaxCells: 64}
		hit := c.Cast(m, p, 0, blockSize, nil)

		if err := math.Abs(hit.Distance - want); err > fraction*blockSize {
			t.Errorf("step %v: Distance = %v, want %v within one step", fraction, hit.Distance, want)
		}
	}
}

func TestCastImpactIdentifiers(t *testing.T) {
	m := loadMaze(t,
		"#+###",
		"|   -",
		"#####",
	)
	c := New()

	tests := []struct {
		name  string
		angle float64
		want  rune
	}{
		{"East", 0, '-'},
		{"West", math.Pi, '|'},
		{"North", -math.Pi / 2, '+'},
		{"South", math.Pi / 2, '#'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := c.Cast(m, pose(150, 150, tt.angle), tt.angle, blockSize, nil)
			if hit.Impact != tt.want {
				t.Errorf("Impact = %q, want %q", hit.Impact, tt.want)
			}
			if !hit.Hit() {
				t.Error("Hit() = false")
			}
		})
	}
}

func TestCastDistanceIsDirectionCorrected(t *testing.T) {
	m := loadMaze(t,
		"########",
		"#      #",
		"#      #",
		"#      #",
		"#      #",
		"#      #",
		"########",
	)
	c := New()
	p := pose(150, 350, 0)

	// every ray against the flat east face reports the same depth
	for _, a := range []float64{-0.3, -0.1, 0, 0.2, 0.3} {
		hit := c.Cast(m, p, a, blockSize, nil)
		if math.Abs(hit.Distance-550) > c.StepFraction*blockSize {
			t.Errorf("angle %v: Distance = %v, want 550", a, hit.Distance)
		}
	}
}

func TestCastTextureOffsetIsSeamless(t *testing.T) {
	m := loadMaze(t,
		"########",
		"#      #",
		"#      #",
		"#      #",
		"#      #",
		"#      #",
		"########",
	)
	c := New()
	p := pose(150, 350, 0)
	const texWidth = 128

	prev := -1.0
	for a := -0.3; a <= 0.3; a += 1e-3 {
		hit := c.Cast(m, p, a, blockSize, nil)
		if hit.Impact != '#' {
			t.Fatalf("angle %v: Impact = %q", a, hit.Impact)
		}

		faceY := 350 + 550*math.Tan(a)
		want := faceY/blockSize - math.Floor(faceY/blockSize)
		if math.Abs(hit.Offset-want) > 1e-9 {
			t.Fatalf("angle %v: Offset = %v, want %v", a, hit.Offset, want)
		}

		if prev >= 0 {
			jump := math.Abs(hit.Offset - prev)
			// wrapping into the next block is continuous on the wall
			jump = math.Min(jump, 1-jump)
			if jump*texWidth > 1 {
				t.Fatalf("angle %v: offset jumped %v texels", a, jump*texWidth)
			}
		}
		prev = hit.Offset
	}
}

func TestCastOffsetOnHorizontalFace(t *testing.T) {
	m := loadMaze(t,
		"#####",
		"#   #",
		"#   #",
		"#####",
	)
	c := New()

	// looking north from x=175, the ray meets the top wall's south face at x=175
	hit := c.Cast(m, pose(175, 250, -math.Pi/2), -math.Pi/2, blockSize, nil)
	if math.Abs(hit.Offset-0.75) > 1e-9 {
		t.Errorf("Offset = %v, want 0.75", hit.Offset)
	}
	if got := hit.TextureX(128); got != 96 {
		t.Errorf("TextureX(128) = %d, want 96", got)
	}
}

func TestCastCornerStep(t *testing.T) {
	m := loadMaze(t,
		"#####",
		"# X #",
		"# # #",
		"#####",
	)
	// one coarse step jumps diagonally from cell (1,1) into (2,2), but the
	// ray crossed x=200 first and entered the 'X' cell at (2,1)
	c := &Caster{StepFraction: 0.5, MaxCells: 64}
	a := math.Pi / 4
	hit := c.Cast(m, pose(180, 170, a), a, blockSize, nil)

	if hit.Impact != 'X' {
		t.Errorf("Impact = %q, want 'X'", hit.Impact)
	}
	// y where the ray meets x=200
	if math.Abs(hit.Offset-0.9) > 1e-9 {
		t.Errorf("Offset = %v, want 0.9", hit.Offset)
	}
}

func TestCastLeavesGrid(t *testing.T) {
	m := loadMaze(t, "###", "#  ", "###")
	c := New()

	hit := c.Cast(m, pose(150, 150, 0), 0, blockSize, nil)
	if hit.Hit() {
		t.Fatalf("Impact = %q, want empty", hit.Impact)
	}
	if math.IsInf(hit.Distance, 0) || math.IsNaN(hit.Distance) {
		t.Fatalf("Distance = %v, want finite", hit.Distance)
	}
	if math.Abs(hit.Distance-150) > c.StepFraction*blockSize {
		t.Errorf("Distance = %v, want about 150", hit.Distance)
	}
}

func TestCastFromOutsideGrid(t *testing.T) {
	m := loadMaze(t, "   ", "# #", "###")
	c := New()
	step := c.StepFraction * blockSize

	tests := []struct {
		name     string
		x, y, a  float64
		impact   rune
		distance float64
	}{
		{"Walks in to the west wall", -50, 150, 0, '#', 50},
		{"Crosses the open row and leaves", -50, 50, 0, maze.Empty, 350},
		{"Facing away", -50, 150, math.Pi, maze.Empty, step},
		{"Misses the grid", -50, -50, 3 * math.Pi / 2, maze.Empty, step},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := c.Cast(m, pose(tt.x, tt.y, tt.a), tt.a, blockSize, nil)
			if hit.Impact != tt.impact {
				t.Fatalf("Impact = %q, want %q", hit.Impact, tt.impact)
			}
			if math.Abs(hit.Distance-tt.distance) > step {
				t.Errorf("Distance = %v, want %v within one step", hit.Distance, tt.distance)
			}
		})
	}

	t.Run("Offset on the entry face", func(t *testing.T) {
		hit := c.Cast(m, pose(-50, 150, 0), 0, blockSize, nil)
		if math.Abs(hit.Offset-0.5) > 1e-9 {
			t.Errorf("Offset = %v, want 0.5", hit.Offset)
		}
	})
}

func TestCastRangeCap(t *testing.T) {
	m := loadMaze(t,
		"##########",
		"#        #",
		"##########",
	)
	c := &Caster{StepFraction: 0.01, MaxCells: 2}

	hit := c.Cast(m, pose(150, 150, 0), 0, blockSize, nil)
	if hit.Hit() {
		t.Fatalf("Impact = %q, want empty past the cap", hit.Impact)
	}
	if hit.Distance != 200 {
		t.Errorf("Distance = %v, want 200", hit.Distance)
	}
}

func TestCastDebugLine(t *testing.T) {
	m := loadMaze(t, "###", "# #", "###")
	c := New()
	plot := &recordingPlotter{}

	withLine := c.Cast(m, pose(150, 150, 0), 0, blockSize, plot)
	without := c.Cast(m, pose(150, 150, 0), 0, blockSize, nil)

	if plot.points != 50 {
		t.Errorf("plotted %d points, want 50", plot.points)
	}
	if withLine != without {
		t.Errorf("debug plotting changed the result: %+v vs %+v", withLine, without)
	}
}

func TestTextureX(t *testing.T) {
	tests := []struct {
		offset float64
		width  int
		want   int
	}{
		{0, 128, 0},
		{0.5, 128, 64},
		{0.9999999, 128, 127},
		{1, 128, 127},
		{0.5, 0, 0},
	}

	for _, tt := range tests {
		if got := (Intersect{Offset: tt.offset}).TextureX(tt.width); got != tt.want {
			t.Errorf("TextureX(%v, %d) = %d, want %d", tt.offset, tt.width, got, tt.want)
		}
	}
}

func BenchmarkCastAcrossOpenGrid(b *testing.B) {
	rows := make([]string, 40)
	for j := range rows {
		rows[j] = strings.Repeat(" ", 60)
	}
	m, err := maze.Load(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		b.Fatal(err)
	}
	c := New()
	viewer := pose(50, 2000, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Cast(m, viewer, 0, blockSize, nil)
	}
}
