package models

// Location is a named pickup or drop-off point
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PriceRoute is the base price of an ordered (from, to) pair
type PriceRoute struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Price float64 `json:"price"`
}

// TravelInfo holds the display labels of a route's travel time and distance
type TravelInfo struct {
	Duration string `json:"duration"`
	Distance string `json:"distance"`
}

// Extra is an optional fixed-price add-on
type Extra struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Surcharge float64 `json:"surcharge"`
}

// ExtraTimeOption is a single-select surcharge for additional booked time
type ExtraTimeOption struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Surcharge float64 `json:"surcharge"`
}

// Catalog is everything a client needs to populate the booking form
type Catalog struct {
	Locations        []Location        `json:"locations"`
	Routes           []PriceRoute      `json:"routes"`
	Extras           []Extra           `json:"extras"`
	ExtraTimeOptions []ExtraTimeOption `json:"extra_time_options"`
	Home             Location          `json:"home"`
}

// BookingWindow describes which dates and times can be booked
type BookingWindow struct {
	MinDate     string   `json:"min_date"`
	DefaultDate string   `json:"default_date"`
	TimeSlots   []string `json:"time_slots"`
}
