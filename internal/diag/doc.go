// Package diag defines the diagnostic model shared by the lexer and
// parser: codes, severities, the Bag accumulator, and the Reporter
// contract. It deliberately has no dependencies beyond source spans so
// every phase can import it.
package diag
