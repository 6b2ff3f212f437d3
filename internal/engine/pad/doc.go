// Package pad inserts and removes the synthetic whitespace that lets a
// rectangle hover over ragged rows.
//
// Materialize appends rows and trailing spaces until every cell of a
// rectangle exists. A Ledger remembers which rows were padded and how many
// rows were appended, so its Retract puts each padded row back to its
// original length and removes only the appended rows. Without a record,
// Retract falls back to the EC rule: whitespace-only rows are emptied, the
// part of a row at or after the rectangle's right edge loses its trailing
// whitespace, and empty rows at the end of the buffer are removed. Callers
// always retract the previous rectangle before materializing a new one.
package pad
