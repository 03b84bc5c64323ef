package strategies

import (
	"fmt"

	"github.com/bawdo/fluentsql/models"
)

// PositionalStrategy renders bare "?" markers for database/sql style
// prepared statements. Parameter-map names are still sequence-generated so
// the map stays usable; the ordered map yields the positional argument list
// (see the bindings package).
type PositionalStrategy struct{}

// Positional returns the "?"-marker rendering strategy.
func Positional() PositionalStrategy {
	return PositionalStrategy{}
}

func (PositionalStrategy) ParameterName(seq int) string {
	return fmt.Sprintf("p%d", seq)
}

func (PositionalStrategy) Placeholder(_ *models.Column, _ string) string {
	return "?"
}

func (PositionalStrategy) RecordPlaceholder(_ *models.Column, _ string, seq int) (string, string) {
	return "?", fmt.Sprintf("p%d", seq)
}

func (PositionalStrategy) SupportsPaging() bool {
	return true
}
