package compose

import (
	"testing"

	"github.com/user/postergen/pkg/ports"
	"github.com/user/postergen/pkg/scene"
)

func TestRoundedRectPath_ZeroRadiusIsPlainRect(t *testing.T) {
	p := RoundedRectPath(10, 20, 100, 50, scene.Radius{})

	want := ports.Path{
		{Op: ports.MoveTo, X: 10, Y: 20},
		{Op: ports.LineTo, X: 110, Y: 20},
		{Op: ports.LineTo, X: 110, Y: 70},
		{Op: ports.LineTo, X: 10, Y: 70},
		{Op: ports.ClosePath},
	}
	if len(p) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(p))
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("segment %d: expected %+v, got %+v", i, want[i], p[i])
		}
	}
}

func TestRoundedRectPath_UniformRadius(t *testing.T) {
	p := RoundedRectPath(0, 0, 100, 100, scene.UniformRadius(10))

	if p[0] != (ports.Segment{Op: ports.MoveTo, X: 10, Y: 0}) {
		t.Errorf("path must start after the top-left arc, got %+v", p[0])
	}
	if p[len(p)-1].Op != ports.ClosePath {
		t.Errorf("path must close, last segment %+v", p[len(p)-1])
	}

	quads := 0
	for _, seg := range p {
		if seg.Op == ports.QuadTo {
			quads++
		}
	}
	if quads != 4 {
		t.Errorf("expected 4 corner arcs, got %d", quads)
	}
}

func TestRoundedRectPath_PerCornerRadii(t *testing.T) {
	r := scene.Radius{TopLeft: 5, BottomRight: 15}
	p := RoundedRectPath(0, 0, 100, 100, r)

	quads := 0
	for _, seg := range p {
		if seg.Op == ports.QuadTo {
			quads++
		}
	}
	if quads != 2 {
		t.Errorf("expected arcs only at rounded corners, got %d", quads)
	}
	// Top edge runs all the way to the square top-right corner.
	if p[1] != (ports.Segment{Op: ports.LineTo, X: 100, Y: 0}) {
		t.Errorf("unexpected top edge end %+v", p[1])
	}
}

func TestRoundedRectPath_ClampsOversizedRadii(t *testing.T) {
	// Radius 80 on a 100x40 rect clamps to 20 so arcs cannot overlap.
	p := RoundedRectPath(0, 0, 100, 40, scene.UniformRadius(80))

	if p[0] != (ports.Segment{Op: ports.MoveTo, X: 20, Y: 0}) {
		t.Errorf("expected clamped start at x=20, got %+v", p[0])
	}
	for _, seg := range p {
		if seg.X < 0 || seg.X > 100 || (seg.Op != ports.ClosePath && (seg.Y < 0 || seg.Y > 40)) {
			t.Errorf("segment escapes bounds: %+v", seg)
		}
	}
}
