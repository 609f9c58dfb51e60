package isoview

import (
	"fmt"
	"strings"
	"testing"
)

func TestProjector_ComputeExact(t *testing.T) {
	tests := []struct {
		o       Orientation
		x, y, z int
		wantX   int
		wantY   int
	}{
		{North, 0, 0, 0, 0, 0},
		{North, 256, 0, 0, -32, 16},
		{North, 0, 256, 0, 32, 16},
		{North, 256, 256, 0, 0, 32},
		{North, 0, 0, 256, 0, -16},
		{East, 256, 0, 0, 32, 16},
		{East, 0, 256, 0, 32, -16},
		{South, 256, 256, 0, 0, -32},
		{South, 256, 0, 0, 32, -16},
		{West, 256, 0, 0, -32, -16},
		{West, 0, 256, 0, -32, 16},
		// Arithmetic shift rounds towards negative infinity.
		{North, 1, 0, 0, -1, 0},
		{North, 0, 0, 1, 0, -1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%d_%d_%d", tt.o, tt.x, tt.y, tt.z), func(t *testing.T) {
			p := Projector{TileWidth: 64, TileHeight: 16, Orientation: tt.o}
			if got := p.ComputeX(tt.x, tt.y); got != tt.wantX {
				t.Errorf("ComputeX = %d, want %d", got, tt.wantX)
			}
			if got := p.ComputeY(tt.x, tt.y, tt.z); got != tt.wantY {
				t.Errorf("ComputeY = %d, want %d", got, tt.wantY)
			}
		})
	}
}

func TestProjector_TileCornersFormDiamond(t *testing.T) {
	// The north corner of a tile is the top of its diamond; the opposite
	// corner is half a tile width below it, for every orientation.
	for o := North; o < numOrientations; o++ {
		p := Projector{TileWidth: 64, TileHeight: 16, Orientation: o}
		var dx, dy int
		if o == South || o == West {
			dx = 1
		}
		if o == South || o == East {
			dy = 1
		}
		top := p.Project((3+dx)*WorldUnit, (5+dy)*WorldUnit, 0)
		bottom := p.Project((3+1-dx)*WorldUnit, (5+1-dy)*WorldUnit, 0)
		if bottom.X != top.X || bottom.Y != top.Y+32 {
			t.Errorf("%s: top %v bottom %v, want bottom 32px below top", o, top, bottom)
		}
	}
}

func TestProjector_UnprojectRoundTrip(t *testing.T) {
	for _, tw := range []int{32, 64, 128} {
		tol := 1536/tw + 4
		for o := North; o < numOrientations; o++ {
			p := Projector{TileWidth: tw, TileHeight: tw / 4, Orientation: o}
			for x := -1024; x <= 1024; x += 37 {
				for y := -1024; y <= 1024; y += 41 {
					for _, z := range []int{0, 512, 2048} {
						s := p.Project(x, y, z)
						ux, uy := p.Unproject(s.X, s.Y, z)
						if abs(ux-x) > tol || abs(uy-y) > tol {
							t.Fatalf("tw=%d %s: (%d,%d,%d) -> %v -> (%d,%d), tolerance %d",
								tw, o, x, y, z, s, ux, uy, tol)
						}
					}
				}
			}
		}
	}
}

func TestProjector_DepthKey(t *testing.T) {
	tests := []struct {
		o    Orientation
		want int
	}{
		{North, 1*256 + 2*256 + 3*256},
		{East, 1*256 - 2*256 + 3*256},
		{South, -1*256 - 2*256 + 3*256},
		{West, -1*256 + 2*256 + 3*256},
	}
	for _, tt := range tests {
		p := Projector{TileWidth: 64, TileHeight: 16, Orientation: tt.o}
		if got := p.DepthKey(1, 2, 3); got != tt.want {
			t.Errorf("%s: DepthKey = %d, want %d", tt.o, got, tt.want)
		}
	}
}

func TestProjector_DepthFollowsScreenY(t *testing.T) {
	// Of two tiles at the same height, the one lower on screen is nearer.
	for o := North; o < numOrientations; o++ {
		p := Projector{TileWidth: 64, TileHeight: 16, Orientation: o}
		for _, d := range [][2]int{{1, 0}, {0, 1}} {
			a := p.ComputeY(0, 0, 0)
			b := p.ComputeY(d[0]*WorldUnit, d[1]*WorldUnit, 0)
			ka := p.DepthKey(0, 0, 0)
			kb := p.DepthKey(d[0], d[1], 0)
			if (b > a) != (kb > ka) {
				t.Errorf("%s step %v: screen y %d->%d but depth %d->%d", o, d, a, b, ka, kb)
			}
		}
	}
}

func TestProjector_InvalidOrientationPanics(t *testing.T) {
	p := Projector{TileWidth: 64, TileHeight: 16, Orientation: Orientation(7)}
	for name, fn := range map[string]func(){
		"ComputeX":  func() { p.ComputeX(0, 0) },
		"ComputeY":  func() { p.ComputeY(0, 0, 0) },
		"Unproject": func() { p.Unproject(0, 0, 0) },
		"DepthKey":  func() { p.DepthKey(0, 0, 0) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if msg := fmt.Sprint(r); !strings.Contains(msg, "invalid orientation") {
					t.Errorf("panic message = %q", msg)
				}
			}()
			fn()
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
