package models

// QuoteForm is the state of the booking form
type QuoteForm struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	People    int      `json:"people"`
	Children  int      `json:"children"`
	Extras    []string `json:"extras"`
	ExtraTime string   `json:"extra_time"`
}

// QuoteMode selects how a computation reports its result
type QuoteMode struct {
	// Silent suppresses advisories
	Silent bool
	// Dispatch forwards a priced quote as a booking message
	Dispatch bool
}

var (
	// SilentMode is used for automatic recomputes
	SilentMode = QuoteMode{Silent: true}
	// ExplicitMode is used when the user asks for a quote
	ExplicitMode = QuoteMode{Silent: false, Dispatch: true}
)

// Quote is a priced route with its surcharges
type Quote struct {
	From           string   `json:"from"`
	To             string   `json:"to"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	People         int      `json:"people"`
	Children       int      `json:"children"`
	BasePrice      float64  `json:"base_price"`
	ExtrasTotal    float64  `json:"extras_total"`
	ExtraNames     []string `json:"extra_names"`
	ExtraTimeLabel string   `json:"extra_time_label"`
	ExtraTime      float64  `json:"extra_time"`
	Total          float64  `json:"total"`
}

// QuoteOutcome is the result of one quote computation
type QuoteOutcome struct {
	Quote       *Quote  `json:"quote,omitempty"`
	Total       float64 `json:"total"`
	Advisory    string  `json:"advisory,omitempty"`
	BookingLink string  `json:"booking_link,omitempty"`
}

// Priced reports whether the outcome carries a quote
func (o *QuoteOutcome) Priced() bool {
	return o != nil && o.Quote != nil
}

// QuoteResponse pairs a quote outcome with the map it produced
type QuoteResponse struct {
	Outcome *QuoteOutcome `json:"outcome"`
	MapView MapView       `json:"map_view"`
}
