package repository

import (
	"fmt"

	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/services/quote"
)

// CatalogData is the raw content of a route catalog
type CatalogData struct {
	Locations        []models.Location
	Routes           []models.PriceRoute
	Travel           map[string]models.TravelInfo
	Extras           []models.Extra
	ExtraTimeOptions []models.ExtraTimeOption
}

// DefaultCatalogData returns the operator's fixed locations, prices and surcharges
func DefaultCatalogData() CatalogData {
	return CatalogData{
		Locations: []models.Location{
			{Name: "Airport", Latitude: 51.4700, Longitude: -0.4543},
			{Name: "City Center", Latitude: 51.5074, Longitude: -0.1278},
			{Name: "Hotel Zone", Latitude: 51.5150, Longitude: -0.1420},
			{Name: constants.HomeLocation, Latitude: 40.9294, Longitude: 9.5145},
		},
		Routes: []models.PriceRoute{
			{From: "Airport", To: "City Center", Price: 40},
			{From: "Airport", To: "Hotel Zone", Price: 55},
			{From: "City Center", To: "Hotel Zone", Price: 25},
			{From: "City Center", To: "Airport", Price: 40},
			{From: "Hotel Zone", To: "Airport", Price: 55},
			{From: "Hotel Zone", To: "City Center", Price: 25},
		},
		Travel: map[string]models.TravelInfo{
			TravelKey("Airport", "City Center"):    {Duration: "35 mins", Distance: "24 km"},
			TravelKey("Airport", "Hotel Zone"):     {Duration: "42 mins", Distance: "28 km"},
			TravelKey("City Center", "Hotel Zone"): {Duration: "15 mins", Distance: "8 km"},
			TravelKey("City Center", "Airport"):    {Duration: "38 mins", Distance: "24 km"},
			TravelKey("Hotel Zone", "Airport"):     {Duration: "40 mins", Distance: "28 km"},
			TravelKey("Hotel Zone", "City Center"): {Duration: "18 mins", Distance: "8 km"},
		},
		Extras: []models.Extra{
			{ID: "child_seat", Label: "Child seat", Surcharge: 10},
			{ID: "extra_luggage", Label: "Extra luggage", Surcharge: 5},
			{ID: "meet_greet", Label: "Meet & greet", Surcharge: 15},
		},
		ExtraTimeOptions: []models.ExtraTimeOption{
			{ID: constants.ExtraTimeNone, Label: "None", Surcharge: 0},
			{ID: "30min", Label: "+30 minutes", Surcharge: 15},
			{ID: "60min", Label: "+1 hour", Surcharge: 25},
		},
	}
}

// TravelKey builds the travel-info key of an ordered pair
func TravelKey(from, to string) string {
	return fmt.Sprintf("%s-%s", from, to)
}

type routeKey struct {
	from string
	to   string
}

// CatalogRepository is an immutable in-memory catalog
type CatalogRepository struct {
	locations     []models.Location
	locationIndex map[string]models.Location
	routes        []models.PriceRoute
	prices        map[routeKey]float64
	travel        map[string]models.TravelInfo
	extras        []models.Extra
	extraIndex    map[string]models.Extra
	extraTime     []models.ExtraTimeOption
	extraTimeIdx  map[string]models.ExtraTimeOption
}

// NewCatalogRepository creates the default catalog
func NewCatalogRepository() quote.CatalogRepo {
	return NewCatalogRepositoryFrom(DefaultCatalogData())
}

// NewCatalogRepositoryFrom creates a catalog from the given tables.
// The input is copied so later changes to data do not leak in.
func NewCatalogRepositoryFrom(data CatalogData) *CatalogRepository {
	r := &CatalogRepository{
		locations:     append([]models.Location(nil), data.Locations...),
		locationIndex: make(map[string]models.Location, len(data.Locations)),
		routes:        append([]models.PriceRoute(nil), data.Routes...),
		prices:        make(map[routeKey]float64, len(data.Routes)),
		travel:        make(map[string]models.TravelInfo, len(data.Travel)),
		extras:        append([]models.Extra(nil), data.Extras...),
		extraIndex:    make(map[string]models.Extra, len(data.Extras)),
		extraTime:     append([]models.ExtraTimeOption(nil), data.ExtraTimeOptions...),
		extraTimeIdx:  make(map[string]models.ExtraTimeOption, len(data.ExtraTimeOptions)),
	}

	for _, loc := range r.locations {
		r.locationIndex[loc.Name] = loc
	}
	for _, route := range r.routes {
		r.prices[routeKey{from: route.From, to: route.To}] = route.Price
	}
	for key, info := range data.Travel {
		r.travel[key] = info
	}
	for _, extra := range r.extras {
		r.extraIndex[extra.ID] = extra
	}
	for _, opt := range r.extraTime {
		r.extraTimeIdx[opt.ID] = opt
	}

	return r
}

// Locations returns every known location in catalog order
func (r *CatalogRepository) Locations() []models.Location {
	return append([]models.Location(nil), r.locations...)
}

// Location looks up a location by name
func (r *CatalogRepository) Location(name string) (models.Location, bool) {
	loc, ok := r.locationIndex[name]
	return loc, ok
}

// Routes returns every priced route in catalog order
func (r *CatalogRepository) Routes() []models.PriceRoute {
	return append([]models.PriceRoute(nil), r.routes...)
}

// BasePrice looks up the base price of an ordered pair
func (r *CatalogRepository) BasePrice(from, to string) (float64, bool) {
	price, ok := r.prices[routeKey{from: from, to: to}]
	return price, ok
}

// TravelInfo looks up the travel labels of an ordered pair
func (r *CatalogRepository) TravelInfo(from, to string) (models.TravelInfo, bool) {
	info, ok := r.travel[TravelKey(from, to)]
	return info, ok
}

// Extras returns the extras catalog
func (r *CatalogRepository) Extras() []models.Extra {
	return append([]models.Extra(nil), r.extras...)
}

// Extra looks up an extra by id
func (r *CatalogRepository) Extra(id string) (models.Extra, bool) {
	extra, ok := r.extraIndex[id]
	return extra, ok
}

// ExtraTimeOptions returns the extra-time options
func (r *CatalogRepository) ExtraTimeOptions() []models.ExtraTimeOption {
	return append([]models.ExtraTimeOption(nil), r.extraTime...)
}

// ExtraTimeOption looks up an extra-time option by id
func (r *CatalogRepository) ExtraTimeOption(id string) (models.ExtraTimeOption, bool) {
	opt, ok := r.extraTimeIdx[id]
	return opt, ok
}
