package enum

// Condition is a WeatherKit condition code. The upstream vocabulary grows
// over time, so codes are resolved with Conditions.Lenient.
type Condition string

const (
	ConditionBlizzard               Condition = "Blizzard"
	ConditionBlowingDust            Condition = "BlowingDust"
	ConditionBlowingSnow            Condition = "BlowingSnow"
	ConditionBreezy                 Condition = "Breezy"
	ConditionClear                  Condition = "Clear"
	ConditionCloudy                 Condition = "Cloudy"
	ConditionDrizzle                Condition = "Drizzle"
	ConditionFlurries               Condition = "Flurries"
	ConditionFoggy                  Condition = "Foggy"
	ConditionFreezingDrizzle        Condition = "FreezingDrizzle"
	ConditionFreezingRain           Condition = "FreezingRain"
	ConditionFrigid                 Condition = "Frigid"
	ConditionHail                   Condition = "Hail"
	ConditionHaze                   Condition = "Haze"
	ConditionHeavyRain              Condition = "HeavyRain"
	ConditionHeavySnow              Condition = "HeavySnow"
	ConditionHot                    Condition = "Hot"
	ConditionHurricane              Condition = "Hurricane"
	ConditionIsolatedThunderstorms  Condition = "IsolatedThunderstorms"
	ConditionMostlyClear            Condition = "MostlyClear"
	ConditionMostlyCloudy           Condition = "MostlyCloudy"
	ConditionPartlyCloudy           Condition = "PartlyCloudy"
	ConditionRain                   Condition = "Rain"
	ConditionScatteredThunderstorms Condition = "ScatteredThunderstorms"
	ConditionSleet                  Condition = "Sleet"
	ConditionSmoky                  Condition = "Smoky"
	ConditionSnow                   Condition = "Snow"
	ConditionStrongStorms           Condition = "StrongStorms"
	ConditionSunFlurries            Condition = "SunFlurries"
	ConditionSunShowers             Condition = "SunShowers"
	ConditionThunderstorms          Condition = "Thunderstorms"
	ConditionTropicalStorm          Condition = "TropicalStorm"
	ConditionWindy                  Condition = "Windy"
	ConditionWintryMix              Condition = "WintryMix"
)

// Conditions is the set of known condition codes.
var Conditions = newSet("condition",
	ConditionBlizzard,
	ConditionBlowingDust,
	ConditionBlowingSnow,
	ConditionBreezy,
	ConditionClear,
	ConditionCloudy,
	ConditionDrizzle,
	ConditionFlurries,
	ConditionFoggy,
	ConditionFreezingDrizzle,
	ConditionFreezingRain,
	ConditionFrigid,
	ConditionHail,
	ConditionHaze,
	ConditionHeavyRain,
	ConditionHeavySnow,
	ConditionHot,
	ConditionHurricane,
	ConditionIsolatedThunderstorms,
	ConditionMostlyClear,
	ConditionMostlyCloudy,
	ConditionPartlyCloudy,
	ConditionRain,
	ConditionScatteredThunderstorms,
	ConditionSleet,
	ConditionSmoky,
	ConditionSnow,
	ConditionStrongStorms,
	ConditionSunFlurries,
	ConditionSunShowers,
	ConditionThunderstorms,
	ConditionTropicalStorm,
	ConditionWindy,
	ConditionWintryMix,
)

var conditionInfo = map[Condition]struct{ description, emoji string }{
	ConditionBlizzard:               {"Blizzard", "🌨️"},
	ConditionBlowingDust:            {"Blowing dust or sandstorm", "🌪️"},
	ConditionBlowingSnow:            {"Blowing or drifting snow", "🌬️"},
	ConditionBreezy:                 {"Breezy, light wind", "🍃"},
	ConditionClear:                  {"Clear", "☀️"},
	ConditionCloudy:                 {"Cloudy, overcast conditions", "☁️"},
	ConditionDrizzle:                {"Drizzle or light rain", "🌦️"},
	ConditionFlurries:               {"Flurries or light snow", "🌨️"},
	ConditionFoggy:                  {"Fog", "🌫️"},
	ConditionFreezingDrizzle:        {"Freezing drizzle or light rain", "🌧️"},
	ConditionFreezingRain:           {"Freezing rain", "🌧️"},
	ConditionFrigid:                 {"Frigid conditions, low temperatures, or ice crystals", "🥶"},
	ConditionHail:                   {"Hail", "🧊"},
	ConditionHaze:                   {"Haze", "🌫️"},
	ConditionHeavyRain:              {"Heavy rain", "🌧️"},
	ConditionHeavySnow:              {"Heavy snow", "❄️"},
	ConditionHot:                    {"High temperatures", "🥵"},
	ConditionHurricane:              {"Hurricane", "🌀"},
	ConditionIsolatedThunderstorms:  {"Thunderstorms covering less than 1/8 of a forecast area", "⛈️"},
	ConditionMostlyClear:            {"Mostly clear", "🌤️"},
	ConditionMostlyCloudy:           {"Mostly cloudy", "🌥️"},
	ConditionPartlyCloudy:           {"Partly cloudy", "⛅"},
	ConditionRain:                   {"Rain", "🌧️"},
	ConditionScatteredThunderstorms: {"Numerous thunderstorms spread across up to 5/8 of a forecast area", "⛈️"},
	ConditionSleet:                  {"Sleet", "🌨️"},
	ConditionSmoky:                  {"Smoky", "🌫️"},
	ConditionSnow:                   {"Snow", "🌨️"},
	ConditionStrongStorms:           {"Notably strong thunderstorms", "⛈️"},
	ConditionSunFlurries:            {"Snow flurries with the sun out", "🌨️"},
	ConditionSunShowers:             {"Rain with the sun out", "🌦️"},
	ConditionThunderstorms:          {"Thunderstorms", "⛈️"},
	ConditionTropicalStorm:          {"Tropical storm", "🌀"},
	ConditionWindy:                  {"Windy", "💨"},
	ConditionWintryMix:              {"Wintry mix of snow, sleet and rain", "🌨️"},
}

func (c Condition) Description() string { return conditionInfo[c].description }

func (c Condition) Emoji() string { return conditionInfo[c].emoji }

func (c Condition) String() string { return string(c) }
