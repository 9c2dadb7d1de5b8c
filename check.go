package main

// Check and reveal act on the cursor cell, the current word or the whole
// puzzle. All of them are no-ops for puzzles without a solution.

func (s *Session) canCheck() bool {
	return s.puzzle != nil && s.puzzle.HasSolution
}

func (s *Session) allLetterCells() []Position {
	var cells []Position
	forEachLetter(s.puzzle, func(pos Position, _ *Cell) { cells = append(cells, pos) })
	return cells
}

// checkCells marks filled, wrong cells as incorrect. Values are untouched.
func (s *Session) checkCells(cells []Position) {
	if !s.canCheck() {
		return
	}
	for _, pos := range cells {
		if !IsFilled(s.puzzle, pos.Row, pos.Col) {
			continue
		}
		if c := s.puzzle.cell(pos.Row, pos.Col); !cellCorrect(c) {
			c.WasIncorrect = true
		}
	}
}

// revealCells writes the answer into each cell.
func (s *Session) revealCells(cells []Position) {
	if !s.canCheck() {
		return
	}
	for _, pos := range cells {
		if !IsLetterCell(s.puzzle, pos.Row, pos.Col) {
			continue
		}
		c := s.puzzle.cell(pos.Row, pos.Col)
		ans, ok := answerOf(c)
		if !ok {
			continue
		}
		c.PlayerValue = &ans
		c.IsRevealed = true
		c.WasIncorrect = false
		delete(s.pencil, cellKey(pos.Row, pos.Col))
		s.usedHelp = true
	}
}

// CheckCellAt marks the cell at (row, col) if it is wrong.
func (s *Session) CheckCellAt(row, col int) {
	s.checkCells([]Position{{Row: row, Col: col}})
}

func (s *Session) CheckCell() {
	s.CheckCellAt(s.cursor.Row, s.cursor.Col)
}

func (s *Session) CheckWord() {
	s.checkCells(s.CurrentWordCells())
}

func (s *Session) CheckPuzzle() {
	s.checkCells(s.allLetterCells())
}

// RevealCellAt reveals the cell at (row, col) and rechecks the solution.
func (s *Session) RevealCellAt(row, col int) {
	s.revealCells([]Position{{Row: row, Col: col}})
	s.CheckSolution()
}

func (s *Session) RevealCell() {
	s.RevealCellAt(s.cursor.Row, s.cursor.Col)
}

func (s *Session) RevealWord() {
	s.revealCells(s.CurrentWordCells())
	s.CheckSolution()
}

// RevealPuzzle fills in every answer and marks the puzzle solved. Solved
// here means fully resolved; UsedHelp records the assistance.
func (s *Session) RevealPuzzle() {
	if !s.canCheck() {
		return
	}
	s.revealCells(s.allLetterCells())
	s.solved = true
	s.running = false
	s.incorrectNotice = false
}
