// SPDX-License-Identifier: MIT
// Package: frequent/builder
//
// id_scheme.go: node naming schemes for graph constructors.
//
// Contract:
//   • An IDFn names the node at a zero-based index or reports ErrIDOutOfRange.
//   • Constructors resolve every name before touching the graph, so an
//     exhausted scheme fails the constructor without partial output.
//   • Schemes are looked up by name with IDSchemeByName (used by the CLI).

package builder

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// IDFn names the node at index idx. It must be deterministic.
type IDFn func(idx int) (string, error)

// Registered scheme names.
const (
	SchemeDecimal = "decimal" // 0, 1, ..., 10, 11
	SchemeLetter  = "letter"  // A..Z, 26 names
	SchemeExcel   = "excel"   // A..Z, AA, AB, ...
	SchemeHex     = "hex"     // 0..9, a..f, 10, ...
	SchemeBase36  = "base36"  // 0..9, a..z, 10, ...
)

// letterCount bounds LetterIDs.
const letterCount = 26

var schemes = map[string]IDFn{
	SchemeDecimal: DecimalIDs,
	SchemeLetter:  LetterIDs,
	SchemeExcel:   ExcelIDs,
	SchemeHex:     HexIDs,
	SchemeBase36:  Base36IDs,
}

// IDSchemeByName returns the registered scheme called name or ErrUnknownIDScheme.
func IDSchemeByName(name string) (IDFn, error) {
	fn, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownIDScheme)
	}

	return fn, nil
}

// IDSchemeNames lists the registered scheme names in ascending order.
func IDSchemeNames() []string {
	return slices.Sorted(maps.Keys(schemes))
}

func outOfRange(idx int) error {
	return fmt.Errorf("index %d: %w", idx, ErrIDOutOfRange)
}

// radix formats a non-negative idx in base.
func radix(idx, base int) (string, error) {
	if idx < 0 {
		return "", outOfRange(idx)
	}

	return strconv.FormatInt(int64(idx), base), nil
}

// DecimalIDs names idx in base 10.
func DecimalIDs(idx int) (string, error) { return radix(idx, 10) }

// HexIDs names idx in lowercase base 16.
func HexIDs(idx int) (string, error) { return radix(idx, 16) }

// Base36IDs names idx in lowercase base 36.
func Base36IDs(idx int) (string, error) { return radix(idx, 36) }

// LetterIDs names idx in [0,26) with one uppercase letter.
func LetterIDs(idx int) (string, error) {
	if idx < 0 || idx >= letterCount {
		return "", outOfRange(idx)
	}

	return string(rune('A' + idx)), nil
}

// ExcelIDs names idx like spreadsheet columns: 0→A, 25→Z, 26→AA, 702→AAA.
func ExcelIDs(idx int) (string, error) {
	if idx < 0 {
		return "", outOfRange(idx)
	}

	var buf []byte
	for i := idx; i >= 0; i = i/letterCount - 1 {
		buf = append(buf, byte('A'+i%letterCount))
	}
	slices.Reverse(buf)

	return string(buf), nil
}

// PrefixedIDs returns a scheme naming idx as prefix + decimal index, e.g. "v0", "v1".
func PrefixedIDs(prefix string) IDFn {
	return func(idx int) (string, error) {
		s, err := DecimalIDs(idx)
		if err != nil {
			return "", err
		}

		return prefix + s, nil
	}
}

// WithDecimalIDs selects DecimalIDs, the default.
func WithDecimalIDs() BuilderOption { return WithIDScheme(DecimalIDs) }

// WithLetterIDs selects LetterIDs.
func WithLetterIDs() BuilderOption { return WithIDScheme(LetterIDs) }

// WithExcelIDs selects ExcelIDs.
func WithExcelIDs() BuilderOption { return WithIDScheme(ExcelIDs) }

// WithHexIDs selects HexIDs.
func WithHexIDs() BuilderOption { return WithIDScheme(HexIDs) }

// WithBase36IDs selects Base36IDs.
func WithBase36IDs() BuilderOption { return WithIDScheme(Base36IDs) }

// WithPrefixedIDs selects PrefixedIDs(prefix).
func WithPrefixedIDs(prefix string) BuilderOption { return WithIDScheme(PrefixedIDs(prefix)) }
