// Package scanner provides the search primitives extractors compose over a
// projected label/value table.
//
// Disclosure sheets interleave section headers, line items, sub totals and
// blank separator rows. The primitives here find a section by its label,
// walk forward from it and add up figures until a boundary: a "Total" style
// label, or the first blank value once at least one figure has been seen.
// Cells that do not hold a usable number are skipped, never reported as
// errors.
package scanner
