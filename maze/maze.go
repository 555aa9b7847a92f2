// Package maze holds the grid world: one rune per cell, a space meaning open floor.
package maze

import (
	"bufio"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Empty is the cell identifier for traversable space.
const Empty = ' '

// Maze is the grid of cell identifiers, indexed [row][column].
// Rows are not required to share a length.
type Maze [][]rune

// Load reads one grid row per line. Trailing carriage returns are dropped so
// files edited on windows load the same.
func Load(r io.Reader) (Maze, error) {
	var m Maze

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		m = append(m, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading maze")
	}

	if len(m) == 0 {
		return nil, errors.New("maze has no rows")
	}

	return m, nil
}

// LoadFile opens and parses the grid description at path.
func LoadFile(path string) (Maze, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening maze %q", path)
	}
	defer file.Close()

	m, err := Load(file)
	if err != nil {
		return nil, errors.Wrapf(err, "loading maze %q", path)
	}
	return m, nil
}

// Height is the number of rows.
func (m Maze) Height() int { return len(m) }

// Width is the length of the longest row.
func (m Maze) Width() int {
	w := 0
	for _, row := range m {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Cell returns the identifier at grid index (i, j), column then row.
func (m Maze) Cell(i, j int) (rune, bool) {
	if j < 0 || j >= len(m) {
		return Empty, false
	}
	row := m[j]
	if i < 0 || i >= len(row) {
		return Empty, false
	}
	return row[i], true
}

// CellAt converts a continuous world coordinate into the cell under it.
// Points outside the grid report Empty with ok false.
func (m Maze) CellAt(x, y float64, blockSize int) (cell rune, ok bool) {
	if blockSize <= 0 {
		return Empty, false
	}
	i := int(math.Floor(x / float64(blockSize)))
	j := int(math.Floor(y / float64(blockSize)))
	return m.Cell(i, j)
}

// IsOpenAt reports whether a point is traversable. Absent cells count as open.
func (m Maze) IsOpenAt(x, y float64, blockSize int) bool {
	cell, _ := m.CellAt(x, y, blockSize)
	return cell == Empty
}
