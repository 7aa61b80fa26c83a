package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/logger"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/internal/pkg/requestcontext"
	"github.com/piresc/olbiataxi/internal/utils"
	"github.com/piresc/olbiataxi/services/quote"
)

const (
	slotInterval = 30 * time.Minute
	slotsPerDay  = int(24 * time.Hour / slotInterval)
)

// QuoteUC implements the quote.QuoteUC interface
type QuoteUC struct {
	repo         quote.CatalogRepo
	bookingGW    quote.BookingGW
	driverNumber string
	linkBase     string
	currency     string
}

// NewQuoteUC creates a new quote use case.
// An empty or malformed driver number disables booking dispatch.
func NewQuoteUC(cfg *models.Config, repo quote.CatalogRepo, bookingGW quote.BookingGW) quote.QuoteUC {
	uc := &QuoteUC{
		repo:      repo,
		bookingGW: bookingGW,
		linkBase:  cfg.Booking.DeepLinkBase,
		currency:  cfg.Booking.Currency,
	}

	if cfg.Booking.DriverNumber != "" {
		number, err := utils.NormalizeMSISDN(cfg.Booking.DriverNumber)
		if err != nil {
			logger.Warn("Booking dispatch disabled, driver number is invalid",
				logger.String("driver_number", utils.MaskPhoneNumber(cfg.Booking.DriverNumber)),
				logger.Err(err))
		} else {
			uc.driverNumber = number
		}
	}

	return uc
}

// ComputeQuote prices a form and renders its route
func (uc *QuoteUC) ComputeQuote(ctx context.Context, form models.QuoteForm, mode models.QuoteMode, renderer quote.RouteRenderer) (*models.QuoteOutcome, error) {
	from := utils.SanitizeString(form.From)
	to := utils.SanitizeString(form.To)

	outcome, err := uc.price(form, from, to, mode)

	// The map follows the selected pair even when pricing fails
	if renderer != nil {
		renderer.RenderRoute(from, to)
	}
	if err != nil {
		return nil, err
	}

	if outcome.Priced() && mode.Dispatch {
		outcome.BookingLink = uc.dispatch(ctx, outcome.Quote)
	}

	return outcome, nil
}

func (uc *QuoteUC) price(form models.QuoteForm, from, to string, mode models.QuoteMode) (*models.QuoteOutcome, error) {
	outcome := &models.QuoteOutcome{}

	if from == "" || to == "" {
		return outcome, nil
	}

	if from == to {
		if !mode.Silent {
			outcome.Advisory = constants.AdvisorySameLocation
		}
		return outcome, nil
	}

	base, ok := uc.repo.BasePrice(from, to)
	if !ok || base <= 0 {
		if !mode.Silent {
			outcome.Advisory = constants.AdvisoryUnpricedRoute
		}
		return outcome, nil
	}

	extraNames, extrasTotal, err := uc.sumExtras(form.Extras)
	if err != nil {
		return nil, err
	}

	extraTime, err := uc.resolveExtraTime(form.ExtraTime)
	if err != nil {
		return nil, err
	}

	q := &models.Quote{
		From:           from,
		To:             to,
		Date:           form.Date,
		Time:           form.Time,
		People:         form.People,
		Children:       form.Children,
		BasePrice:      base,
		ExtrasTotal:    extrasTotal,
		ExtraNames:     extraNames,
		ExtraTimeLabel: extraTime.Label,
		ExtraTime:      extraTime.Surcharge,
		Total:          base + extrasTotal + extraTime.Surcharge,
	}

	outcome.Quote = q
	outcome.Total = q.Total
	return outcome, nil
}

// sumExtras resolves extra ids in catalog order, ignoring duplicates
func (uc *QuoteUC) sumExtras(ids []string) ([]string, float64, error) {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := uc.repo.Extra(id); !ok {
			return nil, 0, fmt.Errorf("%w: %q", quote.ErrUnknownExtra, id)
		}
		selected[id] = true
	}

	names := []string{}
	var total float64
	for _, extra := range uc.repo.Extras() {
		if selected[extra.ID] {
			names = append(names, extra.Label)
			total += extra.Surcharge
		}
	}

	return names, total, nil
}

func (uc *QuoteUC) resolveExtraTime(id string) (models.ExtraTimeOption, error) {
	if id == "" {
		id = constants.ExtraTimeNone
	}

	opt, ok := uc.repo.ExtraTimeOption(id)
	if !ok {
		if id == constants.ExtraTimeNone {
			return models.ExtraTimeOption{ID: id, Label: "None"}, nil
		}
		return models.ExtraTimeOption{}, fmt.Errorf("%w: %q", quote.ErrUnknownExtraTime, id)
	}

	return opt, nil
}

// dispatch composes the booking message and announces it.
// Publish failures are logged and never reach the caller.
func (uc *QuoteUC) dispatch(ctx context.Context, q *models.Quote) string {
	if uc.driverNumber == "" {
		logger.Debug("Booking dispatch skipped, no driver number configured")
		return ""
	}

	message := ComposeBookingMessage(q, uc.currency)
	link := BookingLink(uc.linkBase, uc.driverNumber, message)

	req := &models.BookingRequest{
		ID:        uuid.New(),
		Quote:     *q,
		Message:   message,
		Link:      link,
		CreatedAt: models.Now(),
	}

	if uc.bookingGW != nil {
		if err := uc.bookingGW.PublishBookingRequest(ctx, req); err != nil {
			logger.Warn("Failed to publish booking request",
				logger.String("booking_id", req.ID.String()),
				logger.Err(err))
		}
	}

	logger.Info("Booking request dispatched",
		logger.String("booking_id", req.ID.String()),
		logger.String("request_id", requestcontext.GetRequestID(ctx)),
		logger.String("client_id", requestcontext.GetClientID(ctx)),
		logger.String("from", q.From),
		logger.String("to", q.To),
		logger.Float64("total", q.Total))

	return link
}

// Catalog returns the data needed to populate the booking form
func (uc *QuoteUC) Catalog() models.Catalog {
	catalog := models.Catalog{
		Locations:        uc.repo.Locations(),
		Routes:           uc.repo.Routes(),
		Extras:           uc.repo.Extras(),
		ExtraTimeOptions: uc.repo.ExtraTimeOptions(),
	}
	if home, ok := uc.repo.Location(constants.HomeLocation); ok {
		catalog.Home = home
	}
	return catalog
}

// BookingWindow returns tomorrow as the earliest date and half-hour slots
func (uc *QuoteUC) BookingWindow(now time.Time) models.BookingWindow {
	minDate := models.FormatDate(models.NextDay(now))

	slots := make([]string, 0, slotsPerDay)
	for i := 0; i < slotsPerDay; i++ {
		offset := time.Duration(i) * slotInterval
		slots = append(slots, fmt.Sprintf("%02d:%02d", int(offset.Hours()), int(offset.Minutes())%60))
	}

	return models.BookingWindow{
		MinDate:     minDate,
		DefaultDate: minDate,
		TimeSlots:   slots,
	}
}
