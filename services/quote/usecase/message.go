package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/internal/utils"
)

// FormatAmount prints a price without trailing zeros ("40", "12.5")
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ComposeBookingMessage renders a quote as the text sent to the driver
func ComposeBookingMessage(q *models.Quote, currency string) string {
	extras := "None"
	if len(q.ExtraNames) > 0 {
		extras = strings.Join(q.ExtraNames, ", ")
	}

	lines := []string{
		"New booking request",
		fmt.Sprintf("From: %s", q.From),
		fmt.Sprintf("To: %s", q.To),
		fmt.Sprintf("Date: %s %s", q.Date, q.Time),
		fmt.Sprintf("Passengers: %d (Children: %d)", q.People, q.Children),
		fmt.Sprintf("Extras: %s", extras),
		fmt.Sprintf("Extra time: %s (%s%s)", q.ExtraTimeLabel, currency, FormatAmount(q.ExtraTime)),
		fmt.Sprintf("Base price: %s%s", currency, FormatAmount(q.BasePrice)),
		fmt.Sprintf("Extras total: %s%s", currency, FormatAmount(q.ExtrasTotal)),
		fmt.Sprintf("Total quote: %s%s", currency, FormatAmount(q.Total)),
	}

	return strings.Join(lines, "\n")
}

// BookingLink builds a messaging deep link carrying message as its text
func BookingLink(base, number, message string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return fmt.Sprintf("%s%s?text=%s", base, number, utils.EncodeURIComponent(message))
}
