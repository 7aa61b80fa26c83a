package mapview

import (
	"sync"

	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/internal/utils"
)

// Route drawing defaults
var (
	RouteLineStyle = models.LineStyle{
		Color:     "#667eea",
		Weight:    4,
		Opacity:   0.7,
		DashArray: "10, 10",
	}
	RouteFit = models.FitOptions{
		Padding: 80,
		MaxZoom: 13,
	}
)

// Marker popup titles
const (
	PickupTitle  = "Pickup"
	DropoffTitle = "Drop-off"
)

// LayerID identifies a drawn layer on a canvas. Zero means no layer.
type LayerID int

// Canvas is a map surface that layers can be drawn on
type Canvas interface {
	AddMarker(marker models.Marker) LayerID
	AddPolyline(line models.Polyline) LayerID
	RemoveLayer(id LayerID)
	FitBounds(bounds models.Bounds, opts models.FitOptions)
}

// DetailsPanel shows the travel details of the drawn route
type DetailsPanel interface {
	ShowRouteDetails(details models.RouteDetails)
}

// RouteCatalog resolves location coordinates and travel labels
type RouteCatalog interface {
	Location(name string) (models.Location, bool)
	TravelInfo(from, to string) (models.TravelInfo, bool)
}

// Presenter draws at most one route at a time on a canvas
type Presenter struct {
	canvas  Canvas
	panel   DetailsPanel
	catalog RouteCatalog

	mu       sync.Mutex
	pickup   LayerID
	dropoff  LayerID
	line     LayerID
	disposed bool
}

// NewPresenter creates a presenter. panel may be nil.
func NewPresenter(canvas Canvas, panel DetailsPanel, catalog RouteCatalog) *Presenter {
	return &Presenter{
		canvas:  canvas,
		panel:   panel,
		catalog: catalog,
	}
}

// RenderRoute replaces the drawn route with the one from origin to destination.
// It reports whether a route was drawn; when the pair has no travel info or an
// endpoint is unknown the map is only cleared and the panel is left unchanged.
func (p *Presenter) RenderRoute(from, to string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disposed {
		return false
	}

	p.clearLocked()

	info, ok := p.catalog.TravelInfo(from, to)
	if !ok {
		return false
	}
	origin, ok := p.catalog.Location(from)
	if !ok {
		return false
	}
	destination, ok := p.catalog.Location(to)
	if !ok {
		return false
	}

	p.pickup = p.canvas.AddMarker(routeMarker(models.MarkerPickup, PickupTitle, origin))
	p.dropoff = p.canvas.AddMarker(routeMarker(models.MarkerDropoff, DropoffTitle, destination))

	line := models.Polyline{
		Points: []models.LatLng{latLng(origin), latLng(destination)},
		Style:  RouteLineStyle,
	}
	p.line = p.canvas.AddPolyline(line)
	p.canvas.FitBounds(line.Bounds(), RouteFit)

	if p.panel != nil {
		km := utils.CalculateDistance(utils.GeoPointFromLocation(origin), utils.GeoPointFromLocation(destination))
		p.panel.ShowRouteDetails(models.RouteDetails{
			Duration:       info.Duration,
			Distance:       info.Distance,
			StraightLineKm: km,
		})
	}

	return true
}

// HasRoute reports whether a route is currently drawn
func (p *Presenter) HasRoute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.line != 0
}

// Dispose removes the drawn route. Later renders are ignored.
func (p *Presenter) Dispose() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearLocked()
	p.disposed = true
}

func (p *Presenter) clearLocked() {
	for _, id := range []*LayerID{&p.line, &p.pickup, &p.dropoff} {
		if *id != 0 {
			p.canvas.RemoveLayer(*id)
			*id = 0
		}
	}
}

func routeMarker(kind models.MarkerKind, title string, loc models.Location) models.Marker {
	return models.Marker{
		Kind:     kind,
		Position: latLng(loc),
		Title:    title,
		Subtitle: loc.Name,
	}
}

func latLng(loc models.Location) models.LatLng {
	return models.LatLng{Lat: loc.Latitude, Lng: loc.Longitude}
}
