package quote

import (
	"github.com/piresc/olbiataxi/internal/pkg/models"
)

// CatalogRepo gives read access to the static location, price and travel tables
type CatalogRepo interface {
	// Locations
	Locations() []models.Location
	Location(name string) (models.Location, bool)

	// Route tables, keyed by the ordered (from, to) pair
	Routes() []models.PriceRoute
	BasePrice(from, to string) (float64, bool)
	TravelInfo(from, to string) (models.TravelInfo, bool)

	// Surcharges
	Extras() []models.Extra
	Extra(id string) (models.Extra, bool)
	ExtraTimeOptions() []models.ExtraTimeOption
	ExtraTimeOption(id string) (models.ExtraTimeOption, bool)
}
