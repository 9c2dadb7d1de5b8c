package main

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PencilSet holds the keys ("row,col") of cells entered in pencil.
type PencilSet map[string]bool

// foldEqual compares two entries case-insensitively.
func foldEqual(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}

// upper normalizes an entry to upper case.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// answerOf returns the value a reveal writes into c.
func answerOf(c *Cell) (string, bool) {
	if c.RebusSolution != nil && *c.RebusSolution != "" {
		return *c.RebusSolution, true
	}
	if c.Solution != nil && *c.Solution != "" {
		return *c.Solution, true
	}
	return "", false
}

// cellCorrect reports whether a filled cell matches its solution. A rebus
// cell also accepts its single-character solution.
func cellCorrect(c *Cell) bool {
	if c.PlayerValue == nil || *c.PlayerValue == "" {
		return false
	}
	v := *c.PlayerValue
	if c.RebusSolution != nil && *c.RebusSolution != "" && foldEqual(v, *c.RebusSolution) {
		return true
	}
	return c.Solution != nil && foldEqual(v, *c.Solution)
}

// IsCellCorrect reports whether the cell at (row, col) holds the right
// answer. Always false for puzzles without a solution.
func IsCellCorrect(p *Puzzle, row, col int) bool {
	if p == nil || !p.HasSolution || !IsLetterCell(p, row, col) {
		return false
	}
	return cellCorrect(p.cell(row, col))
}

// cellCounts as filled under mode: ink_only ignores penciled cells.
func cellCounts(p *Puzzle, pos Position, mode SkipMode, pencil PencilSet) bool {
	if !IsFilled(p, pos.Row, pos.Col) {
		return false
	}
	return mode != SkipInkOnly || !pencil[cellKey(pos.Row, pos.Col)]
}

// IsClueFilled reports whether every cell of the clue is filled. With
// SkipInkOnly, penciled cells do not count.
func IsClueFilled(p *Puzzle, c Clue, d Direction, mode SkipMode, pencil PencilSet) bool {
	for _, pos := range ClueCells(c, d) {
		if !cellCounts(p, pos, mode, pencil) {
			return false
		}
	}
	return true
}

// IsClueCorrect reports whether every cell of the clue is correct.
func IsClueCorrect(p *Puzzle, c Clue, d Direction) bool {
	for _, pos := range ClueCells(c, d) {
		if !IsCellCorrect(p, pos.Row, pos.Col) {
			return false
		}
	}
	return true
}

// LetterCount returns the number of letter cells.
func LetterCount(p *Puzzle) int {
	n := 0
	forEachLetter(p, func(Position, *Cell) { n++ })
	return n
}

// FilledCount returns the number of letter cells with a value.
func FilledCount(p *Puzzle) int {
	n := 0
	forEachLetter(p, func(pos Position, _ *Cell) {
		if IsFilled(p, pos.Row, pos.Col) {
			n++
		}
	})
	return n
}

// IsPuzzleFilled reports whether every letter cell has a value.
func IsPuzzleFilled(p *Puzzle) bool {
	return p != nil && FilledCount(p) == LetterCount(p)
}

// IsPuzzleCorrect reports whether every letter cell is correct.
func IsPuzzleCorrect(p *Puzzle) bool {
	if p == nil || !p.HasSolution {
		return false
	}
	ok := true
	forEachLetter(p, func(_ Position, c *Cell) {
		if !cellCorrect(c) {
			ok = false
		}
	})
	return ok
}

func forEachLetter(p *Puzzle, fn func(Position, *Cell)) {
	if p == nil {
		return
	}
	for r := range p.Grid {
		for c := range p.Grid[r] {
			if p.Grid[r][c].Kind == CellLetter {
				fn(Position{Row: r, Col: c}, &p.Grid[r][c])
			}
		}
	}
}
