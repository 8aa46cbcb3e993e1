package enum

// PrecipitationType is the kind of precipitation forecast for a period.
type PrecipitationType string

const (
	PrecipitationClear         PrecipitationType = "clear"
	PrecipitationPrecipitation PrecipitationType = "precipitation"
	PrecipitationRain          PrecipitationType = "rain"
	PrecipitationSnow          PrecipitationType = "snow"
	PrecipitationSleet         PrecipitationType = "sleet"
	PrecipitationHail          PrecipitationType = "hail"
	PrecipitationMixed         PrecipitationType = "mixed"
)

var PrecipitationTypes = newSet("precipitation type",
	PrecipitationClear,
	PrecipitationPrecipitation,
	PrecipitationRain,
	PrecipitationSnow,
	PrecipitationSleet,
	PrecipitationHail,
	PrecipitationMixed,
)

var precipitationDescriptions = map[PrecipitationType]string{
	PrecipitationClear:         "No precipitation",
	PrecipitationPrecipitation: "An unknown type of precipitation",
	PrecipitationRain:          "Rain",
	PrecipitationSnow:          "Snow",
	PrecipitationSleet:         "Sleet or ice pellets",
	PrecipitationHail:          "Hail",
	PrecipitationMixed:         "Mixed precipitation",
}

func (p PrecipitationType) Description() string { return precipitationDescriptions[p] }

func (p PrecipitationType) String() string { return string(p) }
