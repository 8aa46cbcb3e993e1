package enum

import (
	"fmt"
	"strconv"
)

// MaxUVIndex is the largest UV index accepted from the payload.
const MaxUVIndex = 30

// UVIndex is the strength of ultraviolet radiation, 0 to 30.
type UVIndex int

// ParseUVIndex resolves a raw UV index strictly.
func ParseUVIndex(n int) (UVIndex, error) {
	if n < 0 || n > MaxUVIndex {
		return 0, &UnknownValueError{Enum: "uv index", Value: strconv.Itoa(n)}
	}
	return UVIndex(n), nil
}

type uvBand struct {
	level, colorName, hex string
	r, g, b               int
}

var uvBands = [...]uvBand{
	{"Low", "green", "#289500", 40, 149, 0},
	{"Moderate", "yellow", "#F7E400", 247, 228, 0},
	{"High", "orange", "#F85900", 248, 89, 0},
	{"Very high", "red", "#D8001D", 216, 0, 29},
	{"Extreme", "violet", "#6B49C8", 107, 73, 200},
}

func (u UVIndex) band() uvBand {
	switch {
	case u <= 2:
		return uvBands[0]
	case u <= 5:
		return uvBands[1]
	case u <= 7:
		return uvBands[2]
	case u <= 10:
		return uvBands[3]
	default:
		return uvBands[4]
	}
}

// Level is the exposure category, e.g. "Very high".
func (u UVIndex) Level() string { return u.band().level }

// ColorName is the WHO colour for the index band, e.g. "orange".
func (u UVIndex) ColorName() string { return u.band().colorName }

func (u UVIndex) HexColor() string { return u.band().hex }

// RGB renders the band colour as "rgb(r, g, b)".
func (u UVIndex) RGB() string {
	b := u.band()
	return fmt.Sprintf("rgb(%d, %d, %d)", b.r, b.g, b.b)
}

func (u UVIndex) Description() string {
	return fmt.Sprintf("UV index %d (%s)", int(u), u.Level())
}

func (u UVIndex) String() string { return strconv.Itoa(int(u)) }
