package usecase

import (
	"time"

	"github.com/piresc/olbiataxi/internal/pkg/models"
)

// Timings controls the pacing of a widget session
type Timings struct {
	Debounce   time.Duration
	Frame      time.Duration
	PricedAnim time.Duration
	ZeroAnim   time.Duration
}

// DefaultTimings mirrors the widget's browser timings
func DefaultTimings() Timings {
	return Timings{
		Debounce:   200 * time.Millisecond,
		Frame:      16 * time.Millisecond,
		PricedAnim: 800 * time.Millisecond,
		ZeroAnim:   400 * time.Millisecond,
	}
}

// TimingsFromConfig reads timings from config, keeping defaults for unset values
func TimingsFromConfig(cfg models.WidgetConfig) Timings {
	t := DefaultTimings()
	if cfg.DebounceMs > 0 {
		t.Debounce = time.Duration(cfg.DebounceMs) * time.Millisecond
	}
	if cfg.FrameMs > 0 {
		t.Frame = time.Duration(cfg.FrameMs) * time.Millisecond
	}
	if cfg.PricedAnimMs > 0 {
		t.PricedAnim = time.Duration(cfg.PricedAnimMs) * time.Millisecond
	}
	if cfg.ZeroAnimMs > 0 {
		t.ZeroAnim = time.Duration(cfg.ZeroAnimMs) * time.Millisecond
	}
	return t
}
