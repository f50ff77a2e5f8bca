package models

import "strings"

// Station represents a stop from the MVG station catalog
type Station struct {
	ID           string   `json:"id"`
	DivaID       int64    `json:"divaId,omitempty"`
	Name         string   `json:"name"`
	Place        string   `json:"place"`
	Abbreviation string   `json:"abbreviation,omitempty"`
	TariffZones  string   `json:"tariffZones"`
	Products     []string `json:"products,omitempty"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
}

// StationResponse represents one entry of the raw station catalog response
type StationResponse struct {
	Name         string   `json:"name"`
	Place        string   `json:"place"`
	ID           string   `json:"id"`
	DivaID       int64    `json:"divaId"`
	Abbreviation *string  `json:"abbreviation"` // "KA", missing for most stops
	TariffZones  string   `json:"tariffZones"`  // "m", "m|1"
	Products     []string `json:"products"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
}

// ToStation converts the raw response to a Station
func (r *StationResponse) ToStation() *Station {
	st := &Station{
		ID:          r.ID,
		DivaID:      r.DivaID,
		Name:        r.Name,
		Place:       r.Place,
		TariffZones: r.TariffZones,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
	}
	if r.Abbreviation != nil {
		st.Abbreviation = *r.Abbreviation
	}
	if len(r.Products) > 0 {
		st.Products = append([]string(nil), r.Products...)
	}
	return st
}

// Zones splits the fare-zone label into its parts ("m|1" -> ["m", "1"])
func (s *Station) Zones() []string {
	if s.TariffZones == "" {
		return nil
	}
	return strings.Split(s.TariffZones, "|")
}

// HasProduct reports whether the station is served by the given transport mode
func (s *Station) HasProduct(product string) bool {
	for _, p := range s.Products {
		if strings.EqualFold(p, product) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with s.
func (s Station) Clone() Station {
	if s.Products != nil {
		s.Products = append([]string(nil), s.Products...)
	}
	return s
}
