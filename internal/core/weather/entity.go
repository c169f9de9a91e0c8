package weather

import (
	"time"

	"wristweather.app/internal/ports"
)

// Error texts understood by the device
const (
	ErrorLocationUnavailable = "Loc unavailable"
	ErrorHTTP                = "HTTP Error"
	ErrorAPIKeyNeeded        = "API Key Needed"
)

// Update outcomes recorded in metrics
const (
	OutcomeAccepted  = "accepted"
	OutcomeDebounced = "debounced"
)

// WeatherRecord is the canonical current conditions payload sent to the device
type WeatherRecord struct {
	Condition   int
	Temperature int
	Sunrise     int64
	Sunset      int64
	Locale      string
	PubDate     string
	TZOffset    int
}

// Message converts the record to a device message
func (r *WeatherRecord) Message() ports.AppMessage {
	return ports.AppMessage{
		"condition":   r.Condition,
		"temperature": r.Temperature,
		"sunrise":     r.Sunrise,
		"sunset":      r.Sunset,
		"locale":      r.Locale,
		"pubdate":     r.PubDate,
		"tzoffset":    r.TZOffset,
	}
}

// HourlySlice is one forecast slice of the hourly record
type HourlySlice struct {
	Temperature int
	Condition   int
	Time        int64
	Pop         int
}

// HourlyRecord is the canonical two slice hourly forecast sent to the device
type HourlyRecord struct {
	First  HourlySlice
	Second HourlySlice
}

// Message converts the record to a device message
func (r *HourlyRecord) Message() ports.AppMessage {
	return ports.AppMessage{
		"h1_temp": r.First.Temperature,
		"h1_cond": r.First.Condition,
		"h1_time": r.First.Time,
		"h1_pop":  r.First.Pop,
		"h2_temp": r.Second.Temperature,
		"h2_cond": r.Second.Condition,
		"h2_time": r.Second.Time,
		"h2_pop":  r.Second.Pop,
	}
}

// Session tracks the single in-flight update cycle
type Session struct {
	InProgress  bool      `json:"inProgress"`
	LastAttempt time.Time `json:"lastAttempt"`
}

// Blocks reports whether a new cycle must be dropped at now
func (s Session) Blocks(now time.Time, cooldown time.Duration) bool {
	return s.InProgress && now.Before(s.LastAttempt.Add(cooldown))
}

// ErrorMessage builds an error message for the device
func ErrorMessage(text string) ports.AppMessage {
	return ports.AppMessage{"error": text}
}

// HourlyDisabledMessage tells the device no hourly forecast will follow
func HourlyDisabledMessage() ports.AppMessage {
	return ports.AppMessage{"hourly_enabled": 0}
}

// ReadyMessage announces the companion to the device
func ReadyMessage() ports.AppMessage {
	return ports.AppMessage{"js_ready": true}
}
