// Package scoring computes tile point values.
//
// PointValue maps a single letter to its value using the standard tile table;
// TotalScore sums a board. Both are pure and total over all string input:
// anything that is not exactly one letter A-Z (in either case) scores 0.
package scoring
