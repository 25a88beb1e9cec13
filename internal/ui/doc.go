// Package ui implements the Bubble Tea front end for the navigation shell:
// it feeds gestures and resize events into the sidebar state machine and
// router, and renders the navigation chrome those components describe.
package ui
