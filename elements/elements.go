// Package elements provides the minimal periodic-table lookup the geometry
// and basis-set packages need: atomic number, symbol, and standard atomic
// mass for the first ten elements (H through Ne), which includes every
// element the bundled basis sets cover.
package elements

import "strings"

// Error is the package's sentinel error type.
type Error string

func (e Error) Error() string { return string(e) }

// ErrUnknownElement is returned by Lookup for a symbol outside the table.
const ErrUnknownElement = Error("elements: unknown element symbol")

// Element holds one periodic-table entry.
type Element struct {
	Z      int
	Symbol string
	Mass   float64 // standard atomic weight, amu
}

var table = []Element{
	{1, "H", 1.00794},
	{2, "He", 4.002602},
	{3, "Li", 6.941},
	{4, "Be", 9.012182},
	{5, "B", 10.811},
	{6, "C", 12.0107},
	{7, "N", 14.0067},
	{8, "O", 15.9994},
	{9, "F", 18.9984032},
	{10, "Ne", 20.1797},
}

var bySymbol = func() map[string]Element {
	m := make(map[string]Element, len(table))
	for _, e := range table {
		m[e.Symbol] = e
	}
	return m
}()

// Lookup returns the Element for a case-sensitive chemical symbol, e.g.
// "He" (not "HE" or "he").
func Lookup(symbol string) (Element, error) {
	e, ok := bySymbol[symbol]
	if !ok {
		return Element{}, ErrUnknownElement
	}
	return e, nil
}

// ByNumber returns the Element with the given atomic number.
func ByNumber(z int) (Element, error) {
	if z < 1 || z > len(table) {
		return Element{}, ErrUnknownElement
	}
	return table[z-1], nil
}

// NormalizeSymbol title-cases a symbol read from user input ("he" -> "He").
func NormalizeSymbol(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
