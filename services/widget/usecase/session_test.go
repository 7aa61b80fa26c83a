package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/services/quote"
	"github.com/piresc/olbiataxi/services/quote/mocks"
	"github.com/piresc/olbiataxi/services/quote/repository"
	quoteusecase "github.com/piresc/olbiataxi/services/quote/usecase"
	"github.com/piresc/olbiataxi/services/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []models.WidgetEvent
}

func (r *recorder) emit(ev models.WidgetEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) byEvent(name string) []models.WidgetEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.WidgetEvent
	for _, ev := range r.events {
		if ev.Event == name {
			out = append(out, ev)
		}
	}
	return out
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *recorder) lastFrame() (models.TotalFrame, bool) {
	frames := r.byEvent(constants.EventTotal)
	if len(frames) == 0 {
		return models.TotalFrame{}, false
	}
	return frames[len(frames)-1].Data.(models.TotalFrame), true
}

func testTimings() Timings {
	return Timings{
		Debounce:   30 * time.Millisecond,
		Frame:      time.Millisecond,
		PricedAnim: 20 * time.Millisecond,
		ZeroAnim:   10 * time.Millisecond,
	}
}

func newTestSession(t *testing.T, driverNumber string) (*Session, *recorder) {
	t.Helper()

	cfg := &models.Config{
		Booking: models.BookingConfig{
			DriverNumber: driverNumber,
			DeepLinkBase: "https://wa.me/",
			Currency:     "€",
		},
	}
	repo := repository.NewCatalogRepository()
	uc := NewWidgetUC(quoteusecase.NewQuoteUC(cfg, repo, nil), repo, testTimings())

	rec := &recorder{}
	session := uc.NewSession(context.Background(), rec.emit).(*Session)
	t.Cleanup(session.Close)
	return session, rec
}

func waitForFinalTotal(t *testing.T, rec *recorder, want int) {
	t.Helper()
	assert.Eventually(t, func() bool {
		frame, ok := rec.lastFrame()
		return ok && frame.Final && frame.Value == want
	}, time.Second, 5*time.Millisecond)
}

func TestSession_DefaultForm(t *testing.T) {
	session, _ := newTestSession(t, "")

	form := session.Form()

	assert.Equal(t, models.FormatDate(models.NextDay(models.Now())), form.Date)
	assert.Equal(t, "00:00", form.Time)
	assert.Equal(t, 1, form.People)
	assert.Equal(t, constants.ExtraTimeNone, form.ExtraTime)
}

func TestSession_StartWithEmptyForm(t *testing.T) {
	session, rec := newTestSession(t, "")

	session.Start()

	quotes := rec.byEvent(constants.EventQuote)
	require.Len(t, quotes, 1)
	outcome := quotes[0].Data.(*models.QuoteOutcome)
	assert.False(t, outcome.Priced())
	assert.Zero(t, outcome.Total)

	views := rec.byEvent(constants.EventMapView)
	require.Len(t, views, 1)
	view := views[0].Data.(models.MapView)
	assert.Empty(t, view.Markers)
	require.NotNil(t, view.Home)

	waitForFinalTotal(t, rec, 0)
	assert.Empty(t, rec.byEvent(constants.EventAdvisory))
}

func TestSession_ApplyRecomputesAfterDebounce(t *testing.T) {
	session, rec := newTestSession(t, "")
	session.Start()

	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldFrom, Value: "Airport"}))
	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldTo, Value: "City Center"}))

	// Nothing is computed before the delay elapses
	assert.Len(t, rec.byEvent(constants.EventQuote), 1)

	waitForFinalTotal(t, rec, 40)

	quotes := rec.byEvent(constants.EventQuote)
	require.Len(t, quotes, 2)
	outcome := quotes[1].Data.(*models.QuoteOutcome)
	assert.Equal(t, 40.0, outcome.Total)
	assert.Empty(t, outcome.BookingLink)

	views := rec.byEvent(constants.EventMapView)
	view := views[len(views)-1].Data.(models.MapView)
	assert.Len(t, view.Markers, 2)
	assert.Len(t, view.Lines, 1)
	require.NotNil(t, view.Details)
	assert.Equal(t, "35 mins", view.Details.Duration)

	// Frames climb from the previous total to the new one
	var last int
	for _, ev := range rec.byEvent(constants.EventTotal) {
		frame := ev.Data.(models.TotalFrame)
		assert.GreaterOrEqual(t, frame.Value, last)
		last = frame.Value
	}
}

func TestSession_DebounceCoalescesBursts(t *testing.T) {
	session, rec := newTestSession(t, "")

	changes := []models.FieldChange{
		{Field: constants.FieldFrom, Value: "City Center"},
		{Field: constants.FieldTo, Value: "Hotel Zone"},
		{Field: constants.FieldExtra, Value: "child_seat", Checked: true},
		{Field: constants.FieldExtra, Value: "extra_luggage", Checked: true},
		{Field: constants.FieldExtraTime, Value: "30min"},
	}
	for _, change := range changes {
		require.NoError(t, session.Apply(change))
	}

	waitForFinalTotal(t, rec, 55)
	time.Sleep(2 * testTimings().Debounce)

	quotes := rec.byEvent(constants.EventQuote)
	require.Len(t, quotes, 1)
	outcome := quotes[0].Data.(*models.QuoteOutcome)
	assert.Equal(t, 25.0, outcome.Quote.BasePrice)
	assert.Equal(t, 15.0, outcome.Quote.ExtrasTotal)
	assert.Equal(t, 15.0, outcome.Quote.ExtraTime)
	assert.Equal(t, 55.0, outcome.Total)
}

func TestSession_SubmitCancelsPendingRecompute(t *testing.T) {
	session, rec := newTestSession(t, "00393476308563")

	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldFrom, Value: "Airport"}))
	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldTo, Value: "City Center"}))
	session.Submit()

	time.Sleep(2 * testTimings().Debounce)

	quotes := rec.byEvent(constants.EventQuote)
	require.Len(t, quotes, 1)

	links := rec.byEvent(constants.EventBookingLink)
	require.Len(t, links, 1)
	link := links[0].Data.(models.BookingLinkMessage)
	assert.Contains(t, link.URL, "https://wa.me/393476308563?text=New%20booking%20request")
}

func TestSession_SubmitSameLocation(t *testing.T) {
	session, rec := newTestSession(t, "00393476308563")

	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldFrom, Value: "Airport"}))
	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldTo, Value: "Airport"}))
	session.Submit()

	advisories := rec.byEvent(constants.EventAdvisory)
	require.Len(t, advisories, 1)
	assert.Equal(t, constants.AdvisorySameLocation, advisories[0].Data.(models.AdvisoryMessage).Message)
	assert.Empty(t, rec.byEvent(constants.EventBookingLink))

	views := rec.byEvent(constants.EventMapView)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].Data.(models.MapView).Markers)

	waitForFinalTotal(t, rec, 0)
}

func TestSession_QuoteErrorIsEmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quoteUC := mocks.NewMockQuoteUC(ctrl)
	quoteUC.EXPECT().BookingWindow(gomock.Any()).Return(models.BookingWindow{DefaultDate: "2026-10-20"}).AnyTimes()
	quoteUC.EXPECT().
		ComputeQuote(gomock.Any(), gomock.Any(), models.ExplicitMode, gomock.Any()).
		Return(nil, fmt.Errorf("%w: %q", quote.ErrUnknownExtra, "champagne"))

	rec := &recorder{}
	uc := NewWidgetUC(quoteUC, repository.NewCatalogRepository(), testTimings())
	session := uc.NewSession(context.Background(), rec.emit)
	t.Cleanup(session.Close)

	session.Submit()

	errs := rec.byEvent(constants.EventError)
	require.Len(t, errs, 1)
	msg := errs[0].Data.(models.WSErrorMessage)
	assert.Equal(t, constants.ErrCodeQuoteFailed, msg.Code)
	assert.Contains(t, msg.Message, "champagne")
	assert.Empty(t, rec.byEvent(constants.EventQuote))
}

func TestSession_RejectedExtraKeepsMapInSync(t *testing.T) {
	session, _ := newTestSession(t, "")

	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldFrom, Value: "Airport"}))
	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldTo, Value: "City Center"}))
	session.Submit()

	err := session.Apply(models.FieldChange{Field: constants.FieldExtra, Value: "champagne", Checked: true})
	assert.ErrorIs(t, err, widget.ErrInvalidValue)
	err = session.Apply(models.FieldChange{Field: constants.FieldExtraTime, Value: "90min"})
	assert.ErrorIs(t, err, widget.ErrInvalidValue)

	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldTo, Value: "Hotel Zone"}))
	session.Submit()

	form := session.Form()
	assert.Empty(t, form.Extras)
	assert.Equal(t, constants.ExtraTimeNone, form.ExtraTime)

	view := session.board.Snapshot()
	require.Len(t, view.Markers, 2)
	assert.Equal(t, models.MarkerDropoff, view.Markers[1].Kind)
	assert.Equal(t, "Hotel Zone", view.Markers[1].Subtitle)
	require.NotNil(t, view.Details)
	assert.Equal(t, "42 mins", view.Details.Duration)
	assert.Equal(t, "28 km", view.Details.Distance)
}

func TestSession_UncheckingUnknownExtraIsAllowed(t *testing.T) {
	session, _ := newTestSession(t, "")

	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldExtra, Value: "champagne", Checked: false}))
	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldExtraTime, Value: ""}))

	form := session.Form()
	assert.Empty(t, form.Extras)
	assert.Empty(t, form.ExtraTime)
}

func TestSession_ApplyValidation(t *testing.T) {
	tests := []struct {
		name    string
		change  models.FieldChange
		wantErr error
	}{
		{name: "unknown field", change: models.FieldChange{Field: "luggage", Value: "2"}, wantErr: widget.ErrUnknownField},
		{name: "non numeric people", change: models.FieldChange{Field: constants.FieldPeople, Value: "two"}, wantErr: widget.ErrInvalidValue},
		{name: "negative children", change: models.FieldChange{Field: constants.FieldChildren, Value: "-1"}, wantErr: widget.ErrInvalidValue},
		{name: "bad date", change: models.FieldChange{Field: constants.FieldDate, Value: "20/10/2026"}, wantErr: widget.ErrInvalidValue},
		{name: "bad time", change: models.FieldChange{Field: constants.FieldTime, Value: "25:00"}, wantErr: widget.ErrInvalidValue},
		{name: "unknown extra", change: models.FieldChange{Field: constants.FieldExtra, Value: "champagne", Checked: true}, wantErr: widget.ErrInvalidValue},
		{name: "unknown extra time", change: models.FieldChange{Field: constants.FieldExtraTime, Value: "90min"}, wantErr: widget.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, rec := newTestSession(t, "")

			err := session.Apply(tt.change)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			time.Sleep(2 * testTimings().Debounce)
			assert.Zero(t, rec.count())
		})
	}
}

func TestSession_ApplyUpdatesForm(t *testing.T) {
	session, _ := newTestSession(t, "")

	changes := []models.FieldChange{
		{Field: constants.FieldDate, Value: "2026-12-24"},
		{Field: constants.FieldTime, Value: "18:30"},
		{Field: constants.FieldPeople, Value: "3"},
		{Field: constants.FieldChildren, Value: "1"},
		{Field: constants.FieldExtra, Value: "child_seat", Checked: true},
		{Field: constants.FieldExtra, Value: "meet_greet", Checked: true},
		{Field: constants.FieldExtra, Value: "child_seat", Checked: false},
		{Field: constants.FieldExtraTime, Value: "60min"},
	}
	for _, change := range changes {
		require.NoError(t, session.Apply(change))
	}

	form := session.Form()
	assert.Equal(t, "2026-12-24", form.Date)
	assert.Equal(t, "18:30", form.Time)
	assert.Equal(t, 3, form.People)
	assert.Equal(t, 1, form.Children)
	assert.Equal(t, []string{"meet_greet"}, form.Extras)
	assert.Equal(t, "60min", form.ExtraTime)
}

func TestSession_Close(t *testing.T) {
	session, rec := newTestSession(t, "")

	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldFrom, Value: "Airport"}))
	require.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldTo, Value: "City Center"}))
	session.Close()

	time.Sleep(2 * testTimings().Debounce)
	assert.Zero(t, rec.count())

	// Closed sessions ignore input
	assert.NoError(t, session.Apply(models.FieldChange{Field: constants.FieldFrom, Value: "Hotel Zone"}))
	session.Submit()
	session.Start()
	assert.Zero(t, rec.count())

	// Close is idempotent
	session.Close()
}

func TestTimingsFromConfig(t *testing.T) {
	timings := TimingsFromConfig(models.WidgetConfig{DebounceMs: 50, FrameMs: 0, PricedAnimMs: 1000})

	assert.Equal(t, 50*time.Millisecond, timings.Debounce)
	assert.Equal(t, 16*time.Millisecond, timings.Frame)
	assert.Equal(t, time.Second, timings.PricedAnim)
	assert.Equal(t, 400*time.Millisecond, timings.ZeroAnim)
}
