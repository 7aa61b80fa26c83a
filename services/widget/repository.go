package widget

import (
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/services/mapview"
)

// Catalog resolves the locations and surcharges a widget form may reference
type Catalog interface {
	mapview.RouteCatalog
	Extra(id string) (models.Extra, bool)
	ExtraTimeOption(id string) (models.ExtraTimeOption, bool)
}
