package strategies

import (
	"fmt"

	"github.com/bawdo/fluentsql/models"
)

// NamedStrategy renders prefix-style named markers (":p1" for sqlx-like
// consumers, "@p1" for pgx named arguments). Record bindings fall back to
// sequence-based names so markers stay identifier-safe.
type NamedStrategy struct {
	prefix string
}

// Named returns a strategy rendering ":name" markers.
func Named() NamedStrategy {
	return NamedStrategy{prefix: ":"}
}

// AtNamed returns a strategy rendering "@name" markers, the syntax pgx
// rewrites through pgx.NamedArgs.
func AtNamed() NamedStrategy {
	return NamedStrategy{prefix: "@"}
}

func (s NamedStrategy) ParameterName(seq int) string {
	return fmt.Sprintf("p%d", seq)
}

func (s NamedStrategy) Placeholder(_ *models.Column, name string) string {
	return s.prefix + name
}

func (s NamedStrategy) RecordPlaceholder(_ *models.Column, _ string, seq int) (string, string) {
	name := s.ParameterName(seq)
	return s.prefix + name, name
}

func (s NamedStrategy) SupportsPaging() bool {
	return true
}
