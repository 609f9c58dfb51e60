package isoview

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and counts.
// Only populated when the viewport is in debug mode.
type frameStats struct {
	walkTime  time.Duration
	sortTime  time.Duration
	blitTime  time.Duration
	scanned   int
	visited   int
	entries   int
	blits     int
	cursorHit bool
}

// globalDebug mirrors the most recently set viewport debug flag so that
// helpers without a viewport (sprite loading) can check it cheaply.
var globalDebug bool

// SetDebugMode enables or disables per-frame stats on stderr and warnings
// about skipped assets.
func (v *Viewport) SetDebugMode(enabled bool) {
	v.debug = enabled
	globalDebug = enabled
}

// debugLog prints timing and count stats to stderr.
func (v *Viewport) debugLog(stats frameStats) {
	if !v.debug {
		return
	}
	total := stats.walkTime + stats.sortTime + stats.blitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[isoview] walk: %v | sort: %v | blit: %v | total: %v\n",
		stats.walkTime, stats.sortTime, stats.blitTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[isoview] columns: %d | voxels: %d | entries: %d | blits: %d | %s %v\n",
		stats.scanned, stats.visited, stats.entries, stats.blits, v.Camera.Orientation, v.cursorString())
}

// cursorString formats the tracked cursor voxel for debug output.
func (v *Viewport) cursorString() string {
	if !v.cursorValid {
		return "cursor: none"
	}
	return fmt.Sprintf("cursor: (%d,%d,%d)", v.cursor.X, v.cursor.Y, v.cursor.Z)
}

// countBlits returns the number of blits a draw list needs: one per entry
// plus one per cursor overlay.
func countBlits(entries []DrawEntry) int {
	n := len(entries)
	for i := range entries {
		if entries[i].Cursor != nil {
			n++
		}
	}
	return n
}
