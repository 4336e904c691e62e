// Package field validates raw user input before it reaches a record store.
// Every function is pure: it either returns the parsed value or a
// *types.ValidationError naming the field and the rejected input.
package field

import (
	"math"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// Delimiter separates fields in the flat-file logs. Keys of logged records
// must not contain it.
const Delimiter = ","

// Key validates an identifying key such as a location name or a date.
// Surrounding whitespace is trimmed; a blank key is rejected.
func Key(name, raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", &types.ValidationError{Field: name, Value: raw, Err: types.ErrEmptyKey}
	}
	return key, nil
}

// LogKey validates a key that is written to a delimited log.
func LogKey(name, raw string) (string, error) {
	key, err := Key(name, raw)
	if err != nil {
		return "", err
	}
	if strings.Contains(key, Delimiter) {
		return "", &types.ValidationError{Field: name, Value: raw, Err: types.ErrInvalidKey}
	}
	return key, nil
}

// Enum matches raw case-insensitively against allowed and returns the
// canonical spelling from allowed.
func Enum(name, raw string, allowed []string) (string, error) {
	v := strings.TrimSpace(raw)
	for _, a := range allowed {
		if strings.EqualFold(a, v) {
			return a, nil
		}
	}
	return "", &types.ValidationError{Field: name, Value: raw, Allowed: allowed, Err: types.ErrInvalidEnumValue}
}

// Float parses a finite decimal number. Any sign is accepted.
func Float(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &types.ValidationError{Field: name, Value: raw, Err: types.ErrInvalidNumber}
	}
	return v, nil
}

// NonNegativeFloat parses a finite decimal number that is zero or greater.
func NonNegativeFloat(name, raw string) (float64, error) {
	v, err := Float(name, raw)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, &types.ValidationError{Field: name, Value: raw, Err: types.ErrNegativeValue}
	}
	return v, nil
}

// Finite rejects NaN and infinite values that reach a service without
// passing through Float.
func Finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &types.ValidationError{Field: name, Value: formatFloat(v), Err: types.ErrInvalidNumber}
	}
	return nil
}

// NonNegative rejects values that are not finite or are below zero.
func NonNegative(name string, v float64) error {
	if err := Finite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return &types.ValidationError{Field: name, Value: formatFloat(v), Err: types.ErrNegativeValue}
	}
	return nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// Int parses a base-10 integer.
func Int(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &types.ValidationError{Field: name, Value: raw, Err: types.ErrInvalidNumber}
	}
	return v, nil
}

// NonNegativeInt parses a base-10 integer that is zero or greater.
func NonNegativeInt(name, raw string) (int, error) {
	v, err := Int(name, raw)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, &types.ValidationError{Field: name, Value: raw, Err: types.ErrNegativeValue}
	}
	return v, nil
}

// RiskLevel validates an earthquake risk level.
func RiskLevel(raw string) (types.RiskLevel, error) {
	v, err := Enum("risk level", raw, types.RiskLevels)
	return types.RiskLevel(v), err
}

// LocationKind validates a location kind. A blank value defaults to City.
func LocationKind(raw string) (types.LocationKind, error) {
	if strings.TrimSpace(raw) == "" {
		return types.KindCity, nil
	}
	v, err := Enum("location type", raw, types.LocationKinds)
	return types.LocationKind(v), err
}
