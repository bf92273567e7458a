// Package sanitizer normalizes user-supplied identity fields before they
// reach validation or storage. Normalization never rejects input; it only
// produces a canonical form so that "Alice@Example.COM " and
// "alice@example.com" validate and compare identically.
package sanitizer
