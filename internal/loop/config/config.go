// Package config holds the host constants for terminal sessions: view size,
// frame pacing, inactivity and shutdown handling.
package config

import "time"

// View resolution - the visible viewport in logical units.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 120 // Logical viewport width
	ViewHeight = 80  // Logical viewport height (in sub-pixels, so 40 terminal rows)
)

// ViewZoom is logical pixels per world unit. The viewport spans 480 x 320
// world units, enough to see asteroids arrive from the spawn ring.
const ViewZoom = 0.25

// Max render resolution in terminal cells. Larger terminals draw the play
// area in their top-left corner.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 80
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxFrameDelta   = 250 * time.Millisecond // Longer stalls are simulated as this
)

// Inactivity
const (
	InactivityWarn       = 90 * time.Second
	InactivityDisconnect = 120 * time.Second
)

// Shutdown
const (
	ShutdownNotice = 10 * time.Second // How long the shutdown message shows before disconnect
	ShutdownWait   = 15 * time.Second // How long the SSH host waits for sessions to end
)
