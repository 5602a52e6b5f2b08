// Package magetasks provides the build, test and lint tasks used by the
// Magefile. Tasks print section headers and results to Out.
package magetasks
