package constants

import "time"

// Redis key formats
const (
	// Preference Service
	KeyThemePreference = "preference:theme:%s" // Format: preference:theme:{client_id}
)

// ThemePreferenceTTL is how long an untouched theme preference is kept
const ThemePreferenceTTL = 365 * 24 * time.Hour
