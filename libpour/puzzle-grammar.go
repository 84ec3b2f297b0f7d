package libpour

import (
	"os"
	"path/filepath"

	"github.com/2x3systems/go2pour/go2pour"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

/***

Puzzle file format:

	red blue purple              <- zero or more combination rules: colorL colorR colorF
	...
	stare_initiala               <- or "initial_state"
	5 3 red                      <- capacity occupied color (color omitted when occupied is 0)
	4 0
	...
	stare_finala                 <- or "final_state"
	3 purple                     <- quantity color; the color must appear above
	...

Everything after a '#' up to the end of the line is a comment.

***/

type puzzleExpr struct {
	Rules   []*ruleExpr      `parser:"@@*"`
	Initial []*containerExpr `parser:"(\"stare_initiala\" | \"initial_state\") @@*"`
	Final   []*targetExpr    `parser:"(\"stare_finala\" | \"final_state\") @@*"`
}

type ruleExpr struct {
	Left   string `parser:"@Ident"`
	Right  string `parser:"@Ident"`
	Result string `parser:"@Ident"`
}

type containerExpr struct {
	Capacity int    `parser:"@Int"`
	Occupied int    `parser:"@Int"`
	Color    string `parser:"@Ident?"`
}

type targetExpr struct {
	Quantity int    `parser:"@Int"`
	Color    string `parser:"@Ident"`
}

var puzzleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Section", Pattern: `(stare_initiala|stare_finala|initial_state|final_state)\b`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[^\s\d#][^\s#]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parsePuzzleExpr = participle.MustBuild[puzzleExpr](
	participle.Lexer(puzzleLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Puzzle is a parsed puzzle instance along with the Palette its colors were registered in.
type Puzzle struct {
	Name    string
	Palette *Palette
	Initial go2pour.State
	Final   go2pour.State
}

// ReadPuzzle reads and parses the given puzzle file.
func ReadPuzzle(pathname string) (*Puzzle, error) {
	buf, err := os.ReadFile(pathname)
	if err != nil {
		return nil, err
	}
	return ParsePuzzle(filepath.Base(pathname), string(buf))
}

// ParsePuzzle parses a puzzle in the format above into a new Palette and pair of states.
//
// Colors are registered in first-seen order: combination rules first, then initial containers.
// A target color that was never registered is an error.
func ParsePuzzle(name, text string) (*Puzzle, error) {
	expr, err := parsePuzzleExpr.ParseString(name, text)
	if err != nil {
		return nil, errors.Wrapf(go2pour.ErrBadPuzzle, "%s: %v", name, err)
	}

	pz := &Puzzle{
		Name:    name,
		Palette: NewPalette(),
	}
	pal := pz.Palette

	for _, rule := range expr.Rules {
		colorL := pal.AddColor(rule.Left)
		colorR := pal.AddColor(rule.Right)
		colorF := pal.AddColor(rule.Result)
		pal.AddCombination(colorL, colorR, colorF)
	}

	for i, ci := range expr.Initial {
		cont := go2pour.Container{
			Capacity: ci.Capacity,
			Occupied: ci.Occupied,
		}
		if cont.Occupied != 0 {
			if ci.Color == "" {
				return nil, errors.Wrapf(go2pour.ErrBadPuzzle, "%s: initial container %d holds %d units but no color", name, i, ci.Occupied)
			}
			cont.Color = pal.AddColor(ci.Color)
		}
		pz.Initial = append(pz.Initial, cont)
	}

	for i, ti := range expr.Final {
		color, err := pal.Code(ti.Color)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: final container %d", name, i)
		}
		pz.Final = append(pz.Final, go2pour.Container{
			Occupied: ti.Quantity,
			Color:    color,
		})
	}

	if err = pz.Initial.Validate(); err != nil {
		return nil, errors.Wrap(err, name)
	}
	if len(pz.Final) == 0 {
		return nil, errors.Wrap(go2pour.ErrNoTarget, name)
	}

	return pz, nil
}

// NewGraph returns the search graph of this puzzle.
func (pz *Puzzle) NewGraph() (*Graph, error) {
	return NewGraph(pz.Palette, pz.Initial, pz.Final)
}
