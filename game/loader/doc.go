// Package loader reads grid maps and movement scripts from their text formats.
//
// Map Format:
//
// A map is a rectangular block of text with one line per row. Every row must
// have the same number of characters. A space is a passable cell; any other
// character is an obstacle. File content overrides the grid's default
// impassable border, so a map may leave border cells open.
//
//	#######
//	#     #
//	#  #  #
//	#######
//
// Script Format:
//
// A script has two lines: the start position as "x,y" and the movement
// sequence as a string of N, S, E and W. Whitespace in the movement line is
// ignored.
//
//	2,1
//	EESSW N
//
// Usage:
//
//	grid, err := loader.LoadGrid("maps/room.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	script, err := loader.LoadScript("scripts/walk.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// All format problems are reported as errors before any movement is applied.
package loader
