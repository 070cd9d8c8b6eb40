package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/fieldrows/rowgen/internal/core/domain"
)

func TestNewFrameDegenerate(t *testing.T) {
	a := r2.Point{X: 10, Y: 20}
	if _, err := newFrame(a, a); !errors.Is(err, domain.ErrDegenerateBaseline) {
		t.Fatalf("expected ErrDegenerateBaseline, got %v", err)
	}

	b := r2.Point{X: 10 + 1e-8, Y: 20}
	if _, err := newFrame(a, b); !errors.Is(err, domain.ErrDegenerateBaseline) {
		t.Fatalf("expected ErrDegenerateBaseline for sub-micron baseline, got %v", err)
	}
}

func TestFrameAxisAligned(t *testing.T) {
	fr, err := newFrame(r2.Point{X: 0, Y: 0}, r2.Point{X: 10, Y: 0})
	if err != nil {
		t.Fatalf("newFrame: %v", err)
	}
	if fr.length != 10 {
		t.Errorf("length = %f, want 10", fr.length)
	}

	p := fr.to(r2.Point{X: 5, Y: 3})
	if p.X != 5 || p.Y != 3 {
		t.Errorf("to(5,3) = %+v, want (5,3)", p)
	}
}

func TestFrameRotated(t *testing.T) {
	// Baseline pointing +y: frame +x follows it, +y (the left of A→B)
	// points toward -x in the plane.
	fr, err := newFrame(r2.Point{X: 0, Y: 0}, r2.Point{X: 0, Y: 10})
	if err != nil {
		t.Fatalf("newFrame: %v", err)
	}

	p := fr.to(r2.Point{X: 3, Y: 5})
	if math.Abs(p.X-5) > 1e-12 || math.Abs(p.Y-(-3)) > 1e-12 {
		t.Errorf("to(3,5) = %+v, want (5,-3)", p)
	}
}

func TestFrameRoundTrip(t *testing.T) {
	fr, err := newFrame(r2.Point{X: 100, Y: 200}, r2.Point{X: 170, Y: 260})
	if err != nil {
		t.Fatalf("newFrame: %v", err)
	}

	for _, p := range []r2.Point{{X: 0, Y: 0}, {X: 123.4, Y: -56.7}, {X: 100, Y: 200}} {
		got := fr.from(fr.to(p))
		if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
			t.Errorf("round trip %+v -> %+v", p, got)
		}
	}
}
