// Package catalog holds the spa's fixed service offering.
package catalog

import "errors"

// ErrUnknownService is returned when a service id is not in the catalog.
var ErrUnknownService = errors.New("unknown service")

// Service describes a bookable treatment.
type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration_minutes"`
	Price    int    `json:"price_eur"`
}

// services is the static offering. It is fixed at build time and never
// mutated at runtime.
var services = []Service{
	{ID: "massage", Name: "Massage Relaxant", Duration: 60, Price: 80},
	{ID: "facial", Name: "Soin du Visage", Duration: 45, Price: 65},
	{ID: "body-wrap", Name: "Enveloppement Corporel", Duration: 90, Price: 120},
	{ID: "manicure", Name: "Manucure", Duration: 30, Price: 35},
}

var servicesByID = func() map[string]Service {
	m := make(map[string]Service, len(services))
	for _, s := range services {
		m[s.ID] = s
	}
	return m
}()

// All returns the full catalog in display order.
func All() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// Get returns the service with the given id.
func Get(id string) (Service, error) {
	s, ok := servicesByID[id]
	if !ok {
		return Service{}, ErrUnknownService
	}
	return s, nil
}
