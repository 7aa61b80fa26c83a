package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/logger"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/internal/pkg/scheduler"
	"github.com/piresc/olbiataxi/internal/utils"
	"github.com/piresc/olbiataxi/services/mapview"
	"github.com/piresc/olbiataxi/services/quote"
	"github.com/piresc/olbiataxi/services/widget"
)

// WidgetUC implements the widget.WidgetUC interface
type WidgetUC struct {
	quoteUC quote.QuoteUC
	catalog widget.Catalog
	timings Timings
	now     func() time.Time
}

// NewWidgetUC creates a new widget use case
func NewWidgetUC(quoteUC quote.QuoteUC, catalog widget.Catalog, timings Timings) widget.WidgetUC {
	return &WidgetUC{
		quoteUC: quoteUC,
		catalog: catalog,
		timings: timings,
		now:     models.Now,
	}
}

// NewSession creates a session whose events are delivered through emit
func (uc *WidgetUC) NewSession(ctx context.Context, emit widget.Emitter) widget.Session {
	ctx, cancel := context.WithCancel(ctx)
	presenter, board := mapview.NewView(uc.catalog)

	s := &Session{
		ctx:       ctx,
		cancel:    cancel,
		quoteUC:   uc.quoteUC,
		catalog:   uc.catalog,
		presenter: presenter,
		board:     board,
		debounce:  scheduler.NewDebouncer(uc.timings.Debounce),
		emit:      emit,
		timings:   uc.timings,
		form:      uc.defaultForm(),
	}
	s.total = scheduler.NewAnimator(uc.timings.Frame, s.renderTotal)

	return s
}

// defaultForm is the form as first shown: tomorrow, first slot, one passenger
func (uc *WidgetUC) defaultForm() models.QuoteForm {
	window := uc.quoteUC.BookingWindow(uc.now())

	form := models.QuoteForm{
		Date:      window.DefaultDate,
		People:    1,
		ExtraTime: constants.ExtraTimeNone,
	}
	if len(window.TimeSlots) > 0 {
		form.Time = window.TimeSlots[0]
	}
	return form
}

// Session is one connected widget. Computations are serialised and the
// displayed total is owned by a single animator.
type Session struct {
	ctx       context.Context
	cancel    context.CancelFunc
	quoteUC   quote.QuoteUC
	catalog   widget.Catalog
	presenter *mapview.Presenter
	board     *mapview.Board
	debounce  *scheduler.Debouncer
	total     *scheduler.Animator
	emit      widget.Emitter
	timings   Timings

	mu     sync.Mutex
	form   models.QuoteForm
	closed bool
}

// Start computes the initial quote silently
func (s *Session) Start() {
	s.recompute(models.SilentMode)
}

// Apply edits one form field and schedules a silent recompute
func (s *Session) Apply(change models.FieldChange) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	err := applyChange(&s.form, change, s.catalog)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	s.debounce.Trigger(func() {
		s.recompute(models.SilentMode)
	})
	return nil
}

// Submit cancels any pending recompute and requests an explicit quote
func (s *Session) Submit() {
	s.debounce.Cancel()
	s.recompute(models.ExplicitMode)
}

// Close stops timers and clears the map
func (s *Session) Close() {
	s.debounce.Stop()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.total.Stop()
	s.presenter.Dispose()
	s.cancel()
}

// Form returns a copy of the current form
func (s *Session) Form() models.QuoteForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyForm(s.form)
}

func (s *Session) recompute(mode models.QuoteMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	outcome, err := s.quoteUC.ComputeQuote(s.ctx, copyForm(s.form), mode, s.presenter)
	if err != nil {
		logger.Warn("Widget quote failed",
			logger.String("from", s.form.From),
			logger.String("to", s.form.To),
			logger.Err(err))
		s.emit(models.WidgetEvent{
			Event: constants.EventError,
			Data:  models.WSErrorMessage{Code: constants.ErrCodeQuoteFailed, Message: err.Error()},
		})
		return
	}

	s.emit(models.WidgetEvent{Event: constants.EventQuote, Data: outcome})
	s.emit(models.WidgetEvent{Event: constants.EventMapView, Data: s.board.Snapshot()})

	duration := s.timings.ZeroAnim
	if outcome.Priced() {
		duration = s.timings.PricedAnim
	}
	s.total.Animate(outcome.Total, duration)

	if outcome.Advisory != "" {
		s.emit(models.WidgetEvent{
			Event: constants.EventAdvisory,
			Data:  models.AdvisoryMessage{Message: outcome.Advisory},
		})
	}
	if outcome.BookingLink != "" {
		s.emit(models.WidgetEvent{
			Event: constants.EventBookingLink,
			Data:  models.BookingLinkMessage{URL: outcome.BookingLink},
		})
	}
}

func (s *Session) renderTotal(value int, final bool) {
	s.emit(models.WidgetEvent{
		Event: constants.EventTotal,
		Data:  models.TotalFrame{Value: value, Final: final},
	})
}

// applyChange edits one field. Values are checked before they reach the form,
// so a rejected change leaves the form as it was.
func applyChange(form *models.QuoteForm, change models.FieldChange, catalog widget.Catalog) error {
	value := utils.SanitizeString(change.Value)

	switch change.Field {
	case constants.FieldFrom:
		form.From = value
	case constants.FieldTo:
		form.To = value
	case constants.FieldDate:
		if value != "" {
			if _, err := time.Parse(models.DateLayout, value); err != nil {
				return fmt.Errorf("%w: date %q", widget.ErrInvalidValue, value)
			}
		}
		form.Date = value
	case constants.FieldTime:
		if value != "" {
			if _, err := time.Parse("15:04", value); err != nil {
				return fmt.Errorf("%w: time %q", widget.ErrInvalidValue, value)
			}
		}
		form.Time = value
	case constants.FieldPeople, constants.FieldChildren:
		n, err := parseCount(value)
		if err != nil {
			return fmt.Errorf("%w: %s %q", widget.ErrInvalidValue, change.Field, value)
		}
		if change.Field == constants.FieldPeople {
			form.People = n
		} else {
			form.Children = n
		}
	case constants.FieldExtra:
		if change.Checked {
			if _, ok := catalog.Extra(value); !ok {
				return fmt.Errorf("%w: extra %q", widget.ErrInvalidValue, value)
			}
		}
		form.Extras = toggleExtra(form.Extras, value, change.Checked)
	case constants.FieldExtraTime:
		if value != "" {
			if _, ok := catalog.ExtraTimeOption(value); !ok {
				return fmt.Errorf("%w: extra time %q", widget.ErrInvalidValue, value)
			}
		}
		form.ExtraTime = value
	default:
		return fmt.Errorf("%w: %q", widget.ErrUnknownField, change.Field)
	}

	return nil
}

// parseCount reads a non-negative count; an empty value means zero
func parseCount(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

func toggleExtra(extras []string, id string, checked bool) []string {
	out := make([]string, 0, len(extras)+1)
	for _, e := range extras {
		if e != id {
			out = append(out, e)
		}
	}
	if checked && id != "" {
		out = append(out, id)
	}
	return out
}

func copyForm(form models.QuoteForm) models.QuoteForm {
	form.Extras = append([]string(nil), form.Extras...)
	return form
}
