// Package tabular reads and writes the flat tabular files at the two ends
// of the cleaning pipeline. The reader takes every cell verbatim as text
// with no type coercion; interpretation belongs to the cleaning stages.
package tabular
