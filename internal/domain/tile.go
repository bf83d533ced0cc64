package domain

import (
	"errors"
	"fmt"
)

// Color identifies one of the four tile color bands.
type Color int

const (
	// ColorNone marks a wildcard whose face has not been resolved.
	ColorNone Color = iota
	ColorYellow
	ColorBlue
	ColorBlack
	ColorRed
)

func (c Color) String() string {
	switch c {
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	default:
		return "none"
	}
}

const (
	// NumbersPerColor is the highest face number in each color band.
	NumbersPerColor = 13

	// FakeOkeyCode is the raw code of the fake okey tile. Its behaviour
	// depends on the indicator drawn for the round.
	FakeOkeyCode = 52

	// FakeOkeyFaceCode is the regular tile the fake okey impersonates when
	// the indicator does not activate it.
	FakeOkeyFaceCode = 0
)

var (
	ErrInvalidTileCode = errors.New("tile code out of range")
	ErrInvalidHandSize = errors.New("hand must hold 14 or 15 tiles")
)

// Tile is an immutable playing piece resolved from a raw tile code.
// Identity is the tile's position within its hand and keeps duplicate
// faces apart during grouping.
type Tile struct {
	Number   int // 1..13, 0 for a wildcard with no fixed face
	Color    Color
	Identity int
	IsJoker  bool
}

func (t Tile) String() string {
	if t.IsJoker {
		return "okey"
	}
	return fmt.Sprintf("%s-%d", t.Color, t.Number)
}

// JokerContext carries the per-round joker rules derived from the indicator.
// A tile is a joker iff its code equals OkeyCode, or it is the fake okey
// sentinel and the indicator equals the configured fake face.
type JokerContext struct {
	OkeyCode      int
	IndicatorCode int
	FakeFaceCode  int
}

// NewJokerContext derives the round's joker rules from a drawn indicator.
func NewJokerContext(indicator int) JokerContext {
	return JokerContext{
		OkeyCode:      OkeyFor(indicator),
		IndicatorCode: indicator,
		FakeFaceCode:  FakeOkeyFaceCode,
	}
}

// ValidateCode rejects raw codes outside [0, 52].
func ValidateCode(code int) error {
	if code < 0 || code > FakeOkeyCode {
		return fmt.Errorf("%w: %d", ErrInvalidTileCode, code)
	}
	return nil
}

// ColorOf maps a raw code to its color band. The fake okey has no color.
func ColorOf(code int) Color {
	if code < 0 || code >= FakeOkeyCode {
		return ColorNone
	}
	return ColorYellow + Color(code/NumbersPerColor)
}

// NumberOf maps a raw code to its face number, or 0 for the fake okey.
func NumberOf(code int) int {
	if code < 0 || code >= FakeOkeyCode {
		return 0
	}
	return code%NumbersPerColor + 1
}

// CodeOf is the inverse of ColorOf/NumberOf for regular tiles.
func CodeOf(color Color, number int) int {
	return int(color-ColorYellow)*NumbersPerColor + number - 1
}

// CodeString renders a raw code for logs, e.g. "blue-7" or "fake".
func CodeString(code int) string {
	if code == FakeOkeyCode {
		return "fake"
	}
	return fmt.Sprintf("%s-%d", ColorOf(code), NumberOf(code))
}

// Normalize resolves a raw tile code into a Tile under the round's joker
// rules. identity must be unique within the hand.
func Normalize(code, identity int, jc JokerContext) (Tile, error) {
	if err := ValidateCode(code); err != nil {
		return Tile{}, err
	}

	if code == FakeOkeyCode {
		if jc.IndicatorCode == jc.FakeFaceCode {
			// Fake okey is live: it plays as the round's joker.
			return Tile{
				Number:   NumberOf(jc.OkeyCode),
				Color:    ColorOf(jc.OkeyCode),
				Identity: identity,
				IsJoker:  true,
			}, nil
		}
		// Inert fake okey behaves as its fixed face tile.
		return Tile{
			Number:   NumberOf(jc.FakeFaceCode),
			Color:    ColorOf(jc.FakeFaceCode),
			Identity: identity,
		}, nil
	}

	return Tile{
		Number:   NumberOf(code),
		Color:    ColorOf(code),
		Identity: identity,
		IsJoker:  code == jc.OkeyCode,
	}, nil
}

// NormalizeHand resolves every raw code in hand order.
func NormalizeHand(codes []int, jc JokerContext) ([]Tile, error) {
	tiles := make([]Tile, 0, len(codes))
	for i, code := range codes {
		t, err := Normalize(code, i, jc)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// ValidateHand checks the dealing contract: 14 or 15 tiles, all codes in range.
func ValidateHand(codes []int) error {
	if len(codes) != 14 && len(codes) != 15 {
		return fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(codes))
	}
	for _, code := range codes {
		if err := ValidateCode(code); err != nil {
			return err
		}
	}
	return nil
}
