package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/couchcryptid/weatherkit-collector/internal/enum"
)

// Alert is a severe weather warning issued for a location.
type Alert struct {
	ID          uuid.UUID
	AreaID      string
	AreaName    string
	Certainty   enum.Certainty
	CountryCode string
	Description string
	DetailsURL  string
	AlertPeriod TimePeriod
	EventPeriod *TimePeriod
	IssuedTime  time.Time
	Responses   []enum.Response
	Severity    enum.Severity
	Source      string
	Urgency     enum.Urgency
}

// BuildAlert requires id, description, severity, certainty, urgency, source
// and issuedTime. AlertPeriod is always set, though either bound may be open;
// EventPeriod is set only when eventOnsetTime or eventEndTime is present.
func BuildAlert(raw map[string]any, tz *time.Location) (Alert, error) {
	r := newReader("alert", raw, tz)
	a := readAlert(r)
	if r.err != nil {
		return Alert{}, r.err
	}
	return a, nil
}

func readAlert(r *reader) Alert {
	a := Alert{
		ID:          alertID(r, "id"),
		AreaID:      r.optString("areaId"),
		AreaName:    r.optString("areaName"),
		Certainty:   strictEnum(r, "certainty", enum.Certainties),
		CountryCode: r.optString("countryCode"),
		Description: r.string("description"),
		DetailsURL:  r.optString("detailsUrl"),
		AlertPeriod: r.period("effectiveTime", "expireTime", false),
		IssuedTime:  r.time("issuedTime"),
		Responses:   responses(r, "responses"),
		Severity:    strictEnum(r, "severity", enum.Severities),
		Source:      r.string("source"),
		Urgency:     strictEnum(r, "urgency", enum.Urgencies),
	}
	if r.has("eventOnsetTime") || r.has("eventEndTime") {
		p := r.period("eventOnsetTime", "eventEndTime", false)
		a.EventPeriod = &p
	}
	return a
}

func alertID(r *reader, key string) uuid.UUID {
	s := r.string(key)
	if r.err != nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		r.fail(fmt.Errorf("%s.%s: %w", r.entity, key, err))
		return uuid.Nil
	}
	return id
}

func responses(r *reader, key string) []enum.Response {
	items := r.optArray(key)
	if items == nil || r.err != nil {
		return nil
	}
	out := make([]enum.Response, 0, len(items))
	for i, item := range items {
		resp := resolveStrict(r, fmt.Sprintf("%s[%d]", key, i), item, enum.Responses)
		if r.err != nil {
			return nil
		}
		out = append(out, resp)
	}
	return out
}

// IsActive reports whether the alert is in force at t.
func (a Alert) IsActive(t time.Time) bool {
	return a.AlertPeriod.Contains(t)
}

func (a Alert) Fields() []Field {
	return []Field{
		{"id", a.ID.String()},
		{"areaId", a.AreaID},
		{"areaName", a.AreaName},
		{"certainty", a.Certainty},
		{"countryCode", a.CountryCode},
		{"description", a.Description},
		{"detailsUrl", a.DetailsURL},
		{"alertPeriod", a.AlertPeriod},
		{"eventPeriod", Opt(a.EventPeriod)},
		{"issuedTime", a.IssuedTime},
		{"responses", a.Responses},
		{"severity", a.Severity},
		{"source", a.Source},
		{"urgency", a.Urgency},
	}
}

func (a Alert) MarshalJSON() ([]byte, error) { return MarshalFields(a) }

// Message is one localized text of an alert.
type Message struct {
	Language string
	Text     string
}

// BuildMessage requires language and text.
func BuildMessage(raw map[string]any, tz *time.Location) (Message, error) {
	r := newReader("message", raw, tz)
	m := Message{
		Language: r.string("language"),
		Text:     r.string("text"),
	}
	if r.err != nil {
		return Message{}, r.err
	}
	return m, nil
}

func (m Message) Fields() []Field {
	return []Field{
		{"language", m.Language},
		{"text", m.Text},
	}
}

func (m Message) MarshalJSON() ([]byte, error) { return MarshalFields(m) }

// AlertDetails is the full record of one alert: the summary fields plus the
// affected area and the alert texts.
type AlertDetails struct {
	Alert
	Area       *Area
	Importance *enum.Importance
	Messages   []Message
}

// BuildAlertDetails builds the alert summary fields plus area, messages and
// importance.
func BuildAlertDetails(raw map[string]any, tz *time.Location) (AlertDetails, error) {
	r := newReader("alert details", raw, tz)
	d := AlertDetails{
		Alert:      readAlert(r),
		Area:       child(r, "area", BuildArea),
		Importance: optStrictEnum(r, "importance", enum.Importances),
		Messages:   objects(r, "messages", false, BuildMessage),
	}
	if r.err != nil {
		return AlertDetails{}, r.err
	}
	return d, nil
}

func (d AlertDetails) Fields() []Field {
	return append(d.Alert.Fields(),
		Field{"area", Opt(d.Area)},
		Field{"importance", Opt(d.Importance)},
		Field{"messages", d.Messages},
	)
}

func (d AlertDetails) MarshalJSON() ([]byte, error) { return MarshalFields(d) }
