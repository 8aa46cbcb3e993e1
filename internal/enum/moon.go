package enum

// MoonPhase is the shape of the moon as seen by an observer on the ground.
type MoonPhase string

const (
	MoonNew            MoonPhase = "new"
	MoonWaxingCrescent MoonPhase = "waxingCrescent"
	MoonFirstQuarter   MoonPhase = "firstQuarter"
	MoonWaxingGibbous  MoonPhase = "waxingGibbous"
	MoonFull           MoonPhase = "full"
	MoonWaningGibbous  MoonPhase = "waningGibbous"
	MoonThirdQuarter   MoonPhase = "thirdQuarter"
	MoonWaningCrescent MoonPhase = "waningCrescent"
)

var MoonPhases = newSet("moon phase",
	MoonNew,
	MoonWaxingCrescent,
	MoonFirstQuarter,
	MoonWaxingGibbous,
	MoonFull,
	MoonWaningGibbous,
	MoonThirdQuarter,
	MoonWaningCrescent,
)

var moonInfo = map[MoonPhase]struct{ description, emoji string }{
	MoonNew:            {"The moon isn't visible", "🌑"},
	MoonWaxingCrescent: {"A crescent-shaped sliver of the moon is visible, and increasing in size", "🌒"},
	MoonFirstQuarter:   {"Approximately half of the moon is visible, and increasing in size", "🌓"},
	MoonWaxingGibbous:  {"The entire disc of the moon is nearly visible, and increasing in size", "🌔"},
	MoonFull:           {"The entire disc of the moon is visible", "🌕"},
	MoonWaningGibbous:  {"The entire disc of the moon is nearly visible, and decreasing in size", "🌖"},
	MoonThirdQuarter:   {"Approximately half of the moon is visible, and decreasing in size", "🌗"},
	MoonWaningCrescent: {"A crescent-shaped sliver of the moon is visible, and decreasing in size", "🌘"},
}

func (m MoonPhase) Description() string { return moonInfo[m].description }

func (m MoonPhase) Emoji() string { return moonInfo[m].emoji }

func (m MoonPhase) String() string { return string(m) }
