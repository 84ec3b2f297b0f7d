package libpour

import (
	"github.com/2x3systems/go2pour/go2pour"
	"github.com/pkg/errors"
)

type colorPair struct {
	L, R go2pour.ColorCode
}

// Palette is the color algebra of a puzzle instance: a bijection between color names and codes
// plus a symmetric combination table.
//
// A Palette is built while a puzzle is read and is then treated as frozen by every search run
// against that puzzle.  Reset() (or a new Palette) is used for the next puzzle.
type Palette struct {
	names   []string // names[code-1]
	codes   map[string]go2pour.ColorCode
	mixes   map[colorPair]go2pour.ColorCode
	sources map[go2pour.ColorCode]colorPair // first registered pair producing a given color
	pairs   []colorPair                      // every pair in registration order
}

func NewPalette() *Palette {
	pal := &Palette{}
	pal.Reset()
	return pal
}

// Reset drops all colors and combinations so that codes are issued starting at 1 again.
func (pal *Palette) Reset() {
	pal.names = pal.names[:0]
	pal.codes = make(map[string]go2pour.ColorCode)
	pal.mixes = make(map[colorPair]go2pour.ColorCode)
	pal.sources = make(map[go2pour.ColorCode]colorPair)
	pal.pairs = pal.pairs[:0]
}

// NumColors returns the number of registered color names.
func (pal *Palette) NumColors() int {
	return len(pal.names)
}

// AddColor returns the code of the given color name, issuing the next code if the name is new.
func (pal *Palette) AddColor(name string) go2pour.ColorCode {
	if code, exists := pal.codes[name]; exists {
		return code
	}
	pal.names = append(pal.names, name)
	code := go2pour.ColorCode(len(pal.names))
	pal.codes[name] = code
	return code
}

// Code returns the code of a previously added color name.
func (pal *Palette) Code(name string) (go2pour.ColorCode, error) {
	code, exists := pal.codes[name]
	if !exists {
		return go2pour.ColorUndefined, errors.Wrapf(go2pour.ErrUnknownColor, "%q", name)
	}
	return code, nil
}

// Name returns the name of a color code, including the two sentinel codes.
func (pal *Palette) Name(code go2pour.ColorCode) (string, error) {
	switch {
	case code == go2pour.ColorUndefined:
		return go2pour.UndefinedColorName, nil
	case code == go2pour.ColorNone:
		return go2pour.NoColorName, nil
	case code < 0 || int(code) > len(pal.names):
		return "", errors.Wrapf(go2pour.ErrUnknownColorCode, "code %d", code)
	}
	return pal.names[code-1], nil
}

// ColorName is the go2pour.ColorNamer form of Name().
//
// An unregistered code is a defect in whatever built the puzzle, so this panics.
func (pal *Palette) ColorName(code go2pour.ColorCode) string {
	name, err := pal.Name(code)
	if err != nil {
		panic(err)
	}
	return name
}

// AddCombination defines colorF as the result of combining colorL and colorR (in either order).
// Re-adding a pair replaces its result, and the color it used to produce falls back to the next
// registered pair that still produces it (if any).
func (pal *Palette) AddCombination(colorL, colorR, colorF go2pour.ColorCode) {
	prevF, exists := pal.mixes[colorPair{colorL, colorR}]
	if !exists {
		pal.pairs = append(pal.pairs, colorPair{colorL, colorR})
	}

	pal.mixes[colorPair{colorL, colorR}] = colorF
	pal.mixes[colorPair{colorR, colorL}] = colorF

	if exists && prevF != colorF {
		delete(pal.sources, prevF)
		for _, pair := range pal.pairs {
			if pal.mixes[pair] == prevF {
				pal.sources[prevF] = pair
				break
			}
		}
	}
	if _, exists := pal.sources[colorF]; !exists {
		pal.sources[colorF] = colorPair{colorL, colorR}
	}
}

// Combine returns the color that results from mixing colorL with colorR.
//
// A color mixed with itself or with ColorNone is unchanged.  Two distinct colors without a
// registered combination yield ColorUndefined.
func (pal *Palette) Combine(colorL, colorR go2pour.ColorCode) go2pour.ColorCode {
	if colorL == colorR {
		return colorL
	}
	if colorF, exists := pal.mixes[colorPair{colorL, colorR}]; exists {
		return colorF
	}
	if colorR == go2pour.ColorNone {
		return colorL
	}
	if colorL == go2pour.ColorNone {
		return colorR
	}
	return go2pour.ColorUndefined
}

// Decompose returns the immediate constituents of the first registered combination that produces
// the given color.  If no combination produces it, false is returned.
func (pal *Palette) Decompose(color go2pour.ColorCode) ([]go2pour.ColorCode, bool) {
	pair, exists := pal.sources[color]
	if !exists {
		return nil, false
	}
	if pair.L == pair.R {
		return []go2pour.ColorCode{pair.L}, true
	}
	return []go2pour.ColorCode{pair.L, pair.R}, true
}
