// Package sanitizer provides small string normalization helpers intended to
// run before validation: trimming, case folding, whitespace collapsing and
// truncation.
//
// Helpers are plain func(string) string values, so they compose directly into
// field transform chains:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.CollapseWhitespace,
//	    sanitizer.ToLower,
//	)
//	clean("  Mixed CASE   Input\n") // "mixed case input"
//
// The package is stateless and safe for concurrent use. No helper returns an
// error; each falls back to the original input when there is nothing to do.
package sanitizer
