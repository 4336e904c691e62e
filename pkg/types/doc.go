// Package types defines the record variants, configuration, and standard
// error types shared by the QuWaTrO modules.
//
// Records are plain values: a Location for the QuakeGuard registry, a
// WaterUsage day for WaVer, a HeatReading for TempTerra and a
// ClimateReading for EcoPulse. Parsing raw input into these types lives
// in internal/field.
package types
