package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/gridnav/game/engine"
)

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "room.txt", "#####\n#   #\n  # #\n#####\n")

	report := Inspect(path)

	assert.True(t, report.Valid)
	assert.Equal(t, "room.txt", report.File)
	assert.Equal(t, 5, report.Width)
	assert.Equal(t, 4, report.Height)
	assert.Equal(t, 6, report.Passable)
	assert.Equal(t, []engine.Position{{X: 0, Y: 2}}, report.OpenBorder)
	assert.Empty(t, report.Errors)
	assert.Len(t, report.Notes, 3)
}

func TestInspect_Invalid(t *testing.T) {
	dir := t.TempDir()

	report := Inspect(writeFile(t, dir, "ragged.txt", "#####\n#   #\n#  #\n"))
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "inconsistent row lengths")

	report = Inspect(writeFile(t, dir, "solid.txt", "###\n###\n"))
	assert.False(t, report.Valid)
	assert.Equal(t, []string{"Map has no passable cells"}, report.Errors)
}

func TestInspectDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "###\n# #\n###\n")
	writeFile(t, dir, "a.txt", "###\n##\n")
	writeFile(t, dir, "notes.md", "not a map")

	reports, err := InspectDir(dir, "*.txt")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "a.txt", reports[0].File)
	assert.False(t, reports[0].Valid)
	assert.Equal(t, "b.txt", reports[1].File)
	assert.True(t, reports[1].Valid)
}
