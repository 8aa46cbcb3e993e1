package measure

import "math"

// CompassPoint is one of the 16 points of the compass rose.
type CompassPoint int

const (
	North CompassPoint = iota
	NorthNorthEast
	NorthEast
	EastNorthEast
	East
	EastSouthEast
	SouthEast
	SouthSouthEast
	South
	SouthSouthWest
	SouthWest
	WestSouthWest
	West
	WestNorthWest
	NorthWest
	NorthNorthWest
)

var compassNames = [16]struct{ text, abbr string }{
	{"North", "N"},
	{"North North-East", "NNE"},
	{"North-East", "NE"},
	{"East North-East", "ENE"},
	{"East", "E"},
	{"East South-East", "ESE"},
	{"South-East", "SE"},
	{"South South-East", "SSE"},
	{"South", "S"},
	{"South South-West", "SSW"},
	{"South-West", "SW"},
	{"West South-West", "WSW"},
	{"West", "W"},
	{"West North-West", "WNW"},
	{"North-West", "NW"},
	{"North North-West", "NNW"},
}

const sectorWidth = 22.5

// CompassPointOf buckets a bearing in degrees into 22.5° sectors centred on
// each point. Sectors are [low, high) except North North-West, which also
// takes its upper bound 348.75.
func CompassPointOf(degrees float64) CompassPoint {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	if d == 360-sectorWidth/2 {
		return NorthNorthWest
	}
	return CompassPoint(int(math.Floor((d+sectorWidth/2)/sectorWidth)) % 16)
}

// Text returns the spelled-out point, e.g. "North North-East".
func (c CompassPoint) Text() string { return compassNames[c&15].text }

// Abbreviation returns the short form, e.g. "NNE".
func (c CompassPoint) Abbreviation() string { return compassNames[c&15].abbr }

func (c CompassPoint) String() string { return c.Abbreviation() }

// Compass buckets a bearing into its compass point. ok is false for
// quantities of any other kind; a bearing in another angular unit is not
// defined.
func (q Quantity) Compass() (point CompassPoint, ok bool) {
	if q.unit != Degree {
		return 0, false
	}
	return CompassPointOf(q.value), true
}
