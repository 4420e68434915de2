// Package gps decodes the two NMEA sentence types used for track correction:
// GSV (satellites in view) and RMC (recommended minimum position).
//
// It is intentionally small:
// - Tokenize strips the checksum and splits fields without validating it
// - ParsePosition converts RMC lat/lon fields to decimal degrees
// - ParseFixGroup and IsGoodFix classify a GSV report as a good or poor fix
package gps
