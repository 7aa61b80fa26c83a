package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var msisdnPattern = regexp.MustCompile(`^[1-9][0-9]{7,14}$`)

// NormalizeMSISDN converts a phone number written with an international
// prefix ("+39 347...", "0039347...") into the bare E.164 digits used by
// messaging deep links ("39347...").
func NormalizeMSISDN(msisdn string) (string, error) {
	stripped := strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "").Replace(msisdn)

	switch {
	case strings.HasPrefix(stripped, "+"):
		stripped = stripped[1:]
	case strings.HasPrefix(stripped, "00"):
		stripped = stripped[2:]
	}

	if !msisdnPattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid MSISDN format: %q", msisdn)
	}

	return stripped, nil
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
