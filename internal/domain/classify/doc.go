// Package classify implements the sentence classification engine.
//
// A sentence is reduced to LetterCounts, one counter per Latin letter A-Z
// after upper-casing. Each rule condition is a small boolean expression over
// those counters, for example:
//
//	(A + B) > 10 && min(C, D) < 5
//
// Conditions are parsed by a closed recursive-descent parser into a typed
// syntax tree and interpreted against the counts. Nothing in a condition can
// reach the host program: the only names are the 26 letters (any other
// identifier reads as 0) and the aggregate functions min, max and sum.
//
// Evaluation is fail-closed. A condition that does not compile or errors at
// runtime counts as not satisfied; the error is reported in the verdict's
// diagnostics so the caller can log it.
package classify
