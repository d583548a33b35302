package engine

const (
	PassableGlyph   = ' '
	ImpassableGlyph = '#'
	AgentGlyph      = '@'
)

// CountPassable counts the passable cells in the grid
func CountPassable(g *Grid) int {
	count := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == Passable {
				count++
			}
		}
	}
	return count
}

// OpenBorderCells returns the border cells that are passable. A freshly
// constructed grid has none; a loaded map may.
func OpenBorderCells(g *Grid) []Position {
	var open []Position
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			onBorder := x == 0 || y == 0 || x == g.width-1 || y == g.height-1
			if onBorder && g.cells[y][x] == Passable {
				open = append(open, Position{X: x, Y: y})
			}
		}
	}
	return open
}

// Render draws the grid as text rows. If agent is non-nil and inside the
// grid, its cell is drawn with AgentGlyph.
func Render(g *Grid, agent *Position) []string {
	rows := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		line := make([]rune, g.width)
		for x := 0; x < g.width; x++ {
			line[x] = PassableGlyph
			if g.cells[y][x] == Impassable {
				line[x] = ImpassableGlyph
			}
		}
		if agent != nil && agent.Y == y && g.inBounds(agent.X, agent.Y) {
			line[agent.X] = AgentGlyph
		}
		rows[y] = string(line)
	}
	return rows
}
