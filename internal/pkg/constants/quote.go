package constants

// Advisory messages shown when an explicit quote cannot be priced
const (
	AdvisorySameLocation  = "Please choose different pickup and drop-off locations to get a price."
	AdvisoryUnpricedRoute = "This route is not priced. Please select another combination."
)

// Booking form field names
const (
	FieldFrom      = "from"
	FieldTo        = "to"
	FieldDate      = "date"
	FieldTime      = "time"
	FieldPeople    = "people"
	FieldChildren  = "children"
	FieldExtra     = "extra"
	FieldExtraTime = "extraTime"
)

// ExtraTimeNone is the id of the zero extra-time option
const ExtraTimeNone = "none"

// HomeLocation is the operator's base and the initial map centre
const HomeLocation = "Olbia via Marina, Sardegna"

// Theme toggle labels
const (
	ToggleLabelToLight = "Switch to light mode"
	ToggleLabelToDark  = "Switch to dark mode"
)

// ClientIDHeader identifies a browser for stored preferences
const ClientIDHeader = "X-Client-ID"
