// Package diag defines the diagnostic model shared by all pipeline
// phases.
//
// The lexer and parser themselves are total functions: they always
// produce output and at most drop informational notes here. User-facing
// failures come from the validator, which reports into the same Bag so
// the driver can answer pass/fail for a whole document with one check.
//
// Package diag performs no formatting or IO; rendering lives in
// internal/diagfmt.
package diag
