package main

// Simulation defaults
const (
	// defaultEventCount covers one second of 1000 Hz polling.
	defaultEventCount = 1000

	// defaultDeltaX/Y approximate a steady medium-speed swipe.
	defaultDeltaX = 10
	defaultDeltaY = 0

	// defaultIntervalMs matches a 1000 Hz polling rate.
	defaultIntervalMs = 1.0
)
