// Package tui provides the preset picker shown before the live view.
// Coefficients and hue of any preset can be nudged or typed in; the
// edited table only lives for the session.
package tui
