package mapview

import (
	"sort"
	"sync"

	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/internal/utils"
)

// HomeZoom is the zoom level of the initial viewport
const HomeZoom = 12

type layer struct {
	marker *models.Marker
	line   *models.Polyline
}

// Board is an in-memory Canvas and DetailsPanel that can be serialised
type Board struct {
	mu       sync.RWMutex
	nextID   LayerID
	layers   map[LayerID]layer
	home     *models.Marker
	viewport models.Viewport
	details  *models.RouteDetails
}

// NewBoard creates a board centred on home. A nil home starts at the origin.
func NewBoard(home *models.Location) *Board {
	b := &Board{
		layers:   make(map[LayerID]layer),
		viewport: models.Viewport{Zoom: HomeZoom},
	}

	if home != nil {
		marker := routeMarker(models.MarkerHome, home.Name, *home)
		marker.Subtitle = ""
		marker.Geohash = utils.EncodeLocation(*home, utils.MarkerGeohashPrecision)
		b.home = &marker
		b.viewport.Center = marker.Position
	}

	return b
}

// NewView wires a presenter to a fresh board centred on the home landmark
func NewView(catalog RouteCatalog) (*Presenter, *Board) {
	var home *models.Location
	if loc, ok := catalog.Location(constants.HomeLocation); ok {
		home = &loc
	}

	board := NewBoard(home)
	return NewPresenter(board, board, catalog), board
}

// AddMarker draws a marker and tags it with its geohash
func (b *Board) AddMarker(marker models.Marker) LayerID {
	b.mu.Lock()
	defer b.mu.Unlock()

	marker.Geohash = utils.EncodeLocation(models.Location{
		Latitude:  marker.Position.Lat,
		Longitude: marker.Position.Lng,
	}, utils.MarkerGeohashPrecision)

	b.nextID++
	b.layers[b.nextID] = layer{marker: &marker}
	return b.nextID
}

// AddPolyline draws a line
func (b *Board) AddPolyline(line models.Polyline) LayerID {
	b.mu.Lock()
	defer b.mu.Unlock()

	line.Points = append([]models.LatLng(nil), line.Points...)

	b.nextID++
	b.layers[b.nextID] = layer{line: &line}
	return b.nextID
}

// RemoveLayer removes a layer. Unknown ids are ignored.
func (b *Board) RemoveLayer(id LayerID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.layers, id)
}

// FitBounds moves the viewport so bounds are visible
func (b *Board) FitBounds(bounds models.Bounds, opts models.FitOptions) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.viewport = models.Viewport{
		Center:  bounds.Center(),
		Zoom:    opts.MaxZoom,
		Bounds:  &bounds,
		Padding: opts.Padding,
		MaxZoom: opts.MaxZoom,
	}
}

// ShowRouteDetails fills the details panel
func (b *Board) ShowRouteDetails(details models.RouteDetails) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.details = &details
}

// Snapshot returns the current board content, layers in drawing order
func (b *Board) Snapshot() models.MapView {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]LayerID, 0, len(b.layers))
	for id := range b.layers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	view := models.MapView{
		Markers:  []models.Marker{},
		Lines:    []models.Polyline{},
		Viewport: b.viewport,
	}
	if b.viewport.Bounds != nil {
		bounds := *b.viewport.Bounds
		view.Viewport.Bounds = &bounds
	}
	if b.home != nil {
		home := *b.home
		view.Home = &home
	}
	if b.details != nil {
		details := *b.details
		view.Details = &details
	}

	for _, id := range ids {
		l := b.layers[id]
		switch {
		case l.marker != nil:
			view.Markers = append(view.Markers, *l.marker)
		case l.line != nil:
			line := *l.line
			line.Points = append([]models.LatLng(nil), l.line.Points...)
			view.Lines = append(view.Lines, line)
		}
	}

	return view
}
