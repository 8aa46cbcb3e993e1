package enum

// Severity is the level of danger to life and property.
type Severity string

const (
	SeverityExtreme  Severity = "extreme"
	SeveritySevere   Severity = "severe"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
	SeverityUnknown  Severity = "unknown"
)

var Severities = newSet("severity", SeverityExtreme, SeveritySevere, SeverityModerate, SeverityMinor, SeverityUnknown)

var severityInfo = map[Severity]struct{ description, color string }{
	SeverityExtreme:  {"Extraordinary threat to life or property", "red"},
	SeveritySevere:   {"Significant threat to life or property", "orange"},
	SeverityModerate: {"Possible threat to life or property", "yellow"},
	SeverityMinor:    {"Minimal or no known threat to life or property", "blue"},
	SeverityUnknown:  {"Severity unknown", "gray"},
}

func (s Severity) Description() string { return severityInfo[s].description }

// Color is a presentation hint for the severity.
func (s Severity) Color() string { return severityInfo[s].color }

func (s Severity) String() string { return string(s) }

// Urgency is how soon responsive action should be taken.
type Urgency string

const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyExpected  Urgency = "expected"
	UrgencyFuture    Urgency = "future"
	UrgencyPast      Urgency = "past"
	UrgencyUnknown   Urgency = "unknown"
)

var Urgencies = newSet("urgency", UrgencyImmediate, UrgencyExpected, UrgencyFuture, UrgencyPast, UrgencyUnknown)

var urgencyDescriptions = map[Urgency]string{
	UrgencyImmediate: "Take responsive action immediately",
	UrgencyExpected:  "Take responsive action in the next hour",
	UrgencyFuture:    "Take responsive action in the near future",
	UrgencyPast:      "Responsive action is no longer required",
	UrgencyUnknown:   "The urgency is unknown",
}

func (u Urgency) Description() string { return urgencyDescriptions[u] }

func (u Urgency) String() string { return string(u) }

// Certainty is the likelihood of the event occurring.
type Certainty string

const (
	CertaintyObserved Certainty = "observed"
	CertaintyLikely   Certainty = "likely"
	CertaintyPossible Certainty = "possible"
	CertaintyUnlikely Certainty = "unlikely"
	CertaintyUnknown  Certainty = "unknown"
)

var Certainties = newSet("certainty", CertaintyObserved, CertaintyLikely, CertaintyPossible, CertaintyUnlikely, CertaintyUnknown)

var certaintyDescriptions = map[Certainty]string{
	CertaintyObserved: "The event has already occurred or is ongoing",
	CertaintyLikely:   "The event is likely to occur (greater than 50% probability)",
	CertaintyPossible: "The event is unlikely to occur (less than 50% probability)",
	CertaintyUnlikely: "The event is not expected to occur (approximately 0% probability)",
	CertaintyUnknown:  "It is unknown if the event will occur",
}

func (c Certainty) Description() string { return certaintyDescriptions[c] }

func (c Certainty) String() string { return string(c) }

// Importance is the issuing agency's ranking of an alert.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceNormal Importance = "normal"
	ImportanceLow    Importance = "low"
)

var Importances = newSet("importance", ImportanceHigh, ImportanceNormal, ImportanceLow)

func (i Importance) Description() string {
	switch i {
	case ImportanceHigh:
		return "Indicates the alert is important"
	case ImportanceNormal:
		return "Indicates the alert is of normal importance"
	case ImportanceLow:
		return "Indicates the alert is of low importance"
	}
	return ""
}

func (i Importance) String() string { return string(i) }

// Response is a recommended action for people in the alert area.
type Response string

const (
	ResponseShelter  Response = "shelter"
	ResponseEvacuate Response = "evacuate"
	ResponsePrepare  Response = "prepare"
	ResponseExecute  Response = "execute"
	ResponseAvoid    Response = "avoid"
	ResponseMonitor  Response = "monitor"
	ResponseAssess   Response = "assess"
	ResponseAllClear Response = "allClear"
	ResponseNone     Response = "none"
)

var Responses = newSet("response",
	ResponseShelter,
	ResponseEvacuate,
	ResponsePrepare,
	ResponseExecute,
	ResponseAvoid,
	ResponseMonitor,
	ResponseAssess,
	ResponseAllClear,
	ResponseNone,
)

var responseDescriptions = map[Response]string{
	ResponseShelter:  "Take shelter in place",
	ResponseEvacuate: "Relocate",
	ResponsePrepare:  "Make preparations",
	ResponseExecute:  "Execute a pre-planned activity",
	ResponseAvoid:    "Avoid the event",
	ResponseMonitor:  "Monitor the information source",
	ResponseAssess:   "Assess the information",
	ResponseAllClear: "The event no longer poses a threat",
	ResponseNone:     "Take no action",
}

func (r Response) Description() string { return responseDescriptions[r] }

func (r Response) String() string { return string(r) }
