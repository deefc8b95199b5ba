// Package translation loads the game's localisation tables.
//
// Two semicolon-separated files are read:
//  1. units_weaponry.csv: weapon names (keys prefixed with "weapons/") and bullet names.
//  2. units.csv: unit names and unit types, keyed by unit id plus a two-character suffix.
//
// The result is an immutable Table passed to the record builder and renderer.
// Lookups never fail: unknown names echo the key, unknown types return "<key> is unknown".
package translation
