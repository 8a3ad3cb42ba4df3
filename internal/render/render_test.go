package render

import (
	"math"
	"testing"
	"time"
)

func TestGeometry(t *testing.T) {
	if ScreenWidth != 1920 || ScreenHeight != 1080 {
		t.Errorf("expected 1920x1080 output, got %dx%d", ScreenWidth, ScreenHeight)
	}
	if VirtualWidth*Scale != ScreenWidth || VirtualHeight*Scale != ScreenHeight {
		t.Error("expected the virtual canvas to scale exactly onto the frame")
	}
}

func TestScreenshotName(t *testing.T) {
	ts := time.Date(2026, 8, 22, 14, 30, 45, 0, time.Local)

	if got := screenshotName(ts); got != "result_20260822_143045.png" {
		t.Errorf("expected result_20260822_143045.png, got %q", got)
	}
}

func TestTicketColor(t *testing.T) {
	if ticketColor(90) != goodColor {
		t.Error("expected positive tickets in the reward color")
	}
	if ticketColor(0) != goodColor {
		t.Error("expected break-even tickets in the reward color")
	}
	if ticketColor(-90) != badColor {
		t.Error("expected negative tickets in the loss color")
	}
}

func TestPulseRadius(t *testing.T) {
	var lo, hi float64 = math.Inf(1), math.Inf(-1)
	for tick := uint64(0); tick < 300; tick++ {
		r := pulseRadius(tick)
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}

	if lo < 14-1e-9 || hi > 22+1e-9 {
		t.Errorf("expected pulse within [14, 22], got [%v, %v]", lo, hi)
	}
	if hi-lo < 6 {
		t.Errorf("expected a visible pulse swing, got range %v", hi-lo)
	}
}
