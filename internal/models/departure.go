package models

import (
	"time"
)

// Departure represents a single departure at a station
type Departure struct {
	Planned           time.Time `json:"planned"`
	Realtime          time.Time `json:"realtime"`
	RealtimeAvailable bool      `json:"realtimeAvailable"`
	DelayMinutes      int       `json:"delayMinutes"`
	TransportType     string    `json:"transportType"`
	Label             string    `json:"label"`
	Network           string    `json:"network,omitempty"`
	Destination       string    `json:"destination"`
	Cancelled         bool      `json:"cancelled"`
	Disruption        bool      `json:"disruption"`
	Platform          *int      `json:"platform,omitempty"`
	Messages          []string  `json:"messages,omitempty"`
	Occupancy         string    `json:"occupancy,omitempty"`
	StopPointID       string    `json:"stopPointId,omitempty"`
}

// DepartureResponse represents the raw JSON for a single departure entry
type DepartureResponse struct {
	PlannedDepartureTime  int64    `json:"plannedDepartureTime"` // epoch millis
	Realtime              bool     `json:"realtime"`
	DelayInMinutes        int      `json:"delayInMinutes"`
	RealtimeDepartureTime int64    `json:"realtimeDepartureTime"` // epoch millis
	TransportType         string   `json:"transportType"`         // "UBAHN"
	Label                 string   `json:"label"`                 // "U8"
	DivaID                string   `json:"divaId"`
	Network               string   `json:"network"`
	TrainType             string   `json:"trainType"`
	Destination           string   `json:"destination"`
	Cancelled             bool     `json:"cancelled"`
	Sev                   bool     `json:"sev"` // replacement service
	Platform              *int     `json:"platform"`
	Messages              []string `json:"messages"`
	BannerHash            string   `json:"bannerHash"`
	Occupancy             string   `json:"occupancy"`
	StopPointGlobalID     string   `json:"stopPointGlobalId"`
}

// ToDeparture converts the raw response to a Departure
func (r *DepartureResponse) ToDeparture() *Departure {
	dep := &Departure{
		RealtimeAvailable: r.Realtime,
		DelayMinutes:      r.DelayInMinutes,
		TransportType:     r.TransportType,
		Label:             r.Label,
		Network:           r.Network,
		Destination:       r.Destination,
		Cancelled:         r.Cancelled,
		Disruption:        r.Sev,
		Occupancy:         r.Occupancy,
		StopPointID:       r.StopPointGlobalID,
	}

	if r.PlannedDepartureTime > 0 {
		dep.Planned = time.UnixMilli(r.PlannedDepartureTime)
	}
	if r.RealtimeDepartureTime > 0 {
		dep.Realtime = time.UnixMilli(r.RealtimeDepartureTime)
	}
	if r.Platform != nil {
		p := *r.Platform
		dep.Platform = &p
	}
	if len(r.Messages) > 0 {
		dep.Messages = append([]string(nil), r.Messages...)
	}

	return dep
}

// EffectiveTime returns the real-time departure if known, otherwise the planned one
func (d *Departure) EffectiveTime() time.Time {
	if !d.Realtime.IsZero() {
		return d.Realtime
	}
	return d.Planned
}

// MinutesUntil returns whole minutes from now until the effective departure.
// Departures already in the past yield 0.
func (d *Departure) MinutesUntil(now time.Time) int {
	t := d.EffectiveTime()
	if t.IsZero() {
		return 0
	}
	mins := int(t.Sub(now).Minutes())
	if mins < 0 {
		return 0
	}
	return mins
}

// Clone returns a copy that shares no pointers or slices with d.
func (d Departure) Clone() Departure {
	if d.Platform != nil {
		p := *d.Platform
		d.Platform = &p
	}
	if d.Messages != nil {
		d.Messages = append([]string(nil), d.Messages...)
	}
	return d
}
