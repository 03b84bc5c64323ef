// Package quoting provides shared SQL literal quoting utilities.
package quoting

import "strings"

// SingleQuote renders s as a SQL string literal. Embedded single quotes are
// escaped by doubling them.
//
// This path is for string constants the caller placed in the statement model
// deliberately. Runtime values never come through here; they become bind
// parameters.
func SingleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
