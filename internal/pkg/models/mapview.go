package models

// LatLng is a coordinate pair
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is a south-west/north-east bounding box
type Bounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// Center returns the middle of the box
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

// MarkerKind identifies the role of a marker on the map
type MarkerKind string

const (
	MarkerHome    MarkerKind = "home"
	MarkerPickup  MarkerKind = "pickup"
	MarkerDropoff MarkerKind = "dropoff"
)

// Marker is a pin on the map
type Marker struct {
	Kind     MarkerKind `json:"kind"`
	Position LatLng     `json:"position"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Geohash  string     `json:"geohash,omitempty"`
}

// LineStyle describes how a polyline is drawn
type LineStyle struct {
	Color     string  `json:"color"`
	Weight    int     `json:"weight"`
	Opacity   float64 `json:"opacity"`
	DashArray string  `json:"dash_array"`
}

// Polyline is a line through a list of points
type Polyline struct {
	Points []LatLng  `json:"points"`
	Style  LineStyle `json:"style"`
}

// Bounds returns the smallest box containing every point of the line
func (p Polyline) Bounds() Bounds {
	if len(p.Points) == 0 {
		return Bounds{}
	}
	b := Bounds{SouthWest: p.Points[0], NorthEast: p.Points[0]}
	for _, pt := range p.Points[1:] {
		if pt.Lat < b.SouthWest.Lat {
			b.SouthWest.Lat = pt.Lat
		}
		if pt.Lng < b.SouthWest.Lng {
			b.SouthWest.Lng = pt.Lng
		}
		if pt.Lat > b.NorthEast.Lat {
			b.NorthEast.Lat = pt.Lat
		}
		if pt.Lng > b.NorthEast.Lng {
			b.NorthEast.Lng = pt.Lng
		}
	}
	return b
}

// FitOptions controls how the viewport is fitted to bounds
type FitOptions struct {
	Padding int `json:"padding"`
	MaxZoom int `json:"max_zoom"`
}

// Viewport is the visible part of the map
type Viewport struct {
	Center  LatLng  `json:"center"`
	Zoom    int     `json:"zoom"`
	Bounds  *Bounds `json:"bounds,omitempty"`
	Padding int     `json:"padding,omitempty"`
	MaxZoom int     `json:"max_zoom,omitempty"`
}

// RouteDetails is the content of the route details panel
type RouteDetails struct {
	Duration       string  `json:"duration"`
	Distance       string  `json:"distance"`
	StraightLineKm float64 `json:"straight_line_km"`
}

// MapView is a serialisable snapshot of the map widget
type MapView struct {
	Home     *Marker       `json:"home,omitempty"`
	Markers  []Marker      `json:"markers"`
	Lines    []Polyline    `json:"lines"`
	Viewport Viewport      `json:"viewport"`
	Details  *RouteDetails `json:"details,omitempty"`
}
