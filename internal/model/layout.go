package model

import "fmt"

// Multiplier is the scoring bonus printed on a board cell
type Multiplier int

const (
	MultiplierNone Multiplier = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
)

func (m Multiplier) String() string {
	switch m {
	case DoubleLetter:
		return "double-letter"
	case TripleLetter:
		return "triple-letter"
	case DoubleWord:
		return "double-word"
	case TripleWord:
		return "triple-word"
	default:
		return "none"
	}
}

// LetterFactor is the multiplier applied to a single letter's value
func (m Multiplier) LetterFactor() int {
	switch m {
	case DoubleLetter:
		return 2
	case TripleLetter:
		return 3
	default:
		return 1
	}
}

// WordFactor is the multiplier applied to the whole word
func (m Multiplier) WordFactor() int {
	switch m {
	case DoubleWord:
		return 2
	case TripleWord:
		return 3
	default:
		return 1
	}
}

// Layout markers:
//
//	'=' triple word   '-' double word
//	'"' triple letter '\'' double letter
//
// The cells around the center (rows and columns 6-8) carry no bonus.
var standardLayout = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '         '  `,
	`=  '       '  =`,
	`  '         '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

var layout = parseLayout(standardLayout)

func parseLayout(desc []string) [BoardSize][BoardSize]Multiplier {
	var grid [BoardSize][BoardSize]Multiplier
	if len(desc) != BoardSize {
		panic(fmt.Sprintf("layout must have %d rows", BoardSize))
	}
	for row, line := range desc {
		if len(line) != BoardSize {
			panic(fmt.Sprintf("layout row %d must have %d cells", row, BoardSize))
		}
		for col, c := range line {
			switch c {
			case '=':
				grid[row][col] = TripleWord
			case '-':
				grid[row][col] = DoubleWord
			case '"':
				grid[row][col] = TripleLetter
			case '\'':
				grid[row][col] = DoubleLetter
			}
		}
	}
	return grid
}

// MultiplierAt returns the bonus at a position. Out-of-bounds positions have none.
func MultiplierAt(pos Position) Multiplier {
	if !pos.InBounds() {
		return MultiplierNone
	}
	return layout[pos.Row][pos.Col]
}
