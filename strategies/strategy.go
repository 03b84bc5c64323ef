// Package strategies provides pluggable rendering strategies: the policy
// objects that decide bind-marker syntax and parameter naming for a target
// execution framework.
package strategies

import "github.com/bawdo/fluentsql/models"

// RenderingStrategy supplies dialect-specific parameter naming and
// bind-marker syntax to the renderers.
type RenderingStrategy interface {
	// ParameterName returns the generated name for the nth sequence value
	// (1-based), e.g. "p1".
	ParameterName(seq int) string

	// Placeholder returns the bind-marker text for a sequence-bound
	// parameter. col carries the optional type annotation and may be nil
	// (paging values have no column).
	Placeholder(col *models.Column, name string) string

	// RecordPlaceholder returns marker text and parameter-map name for a
	// record-path binding (insert property mappings). path is the dotted
	// property path, e.g. "record.firstName" or "records[0].id". seq is the
	// next sequence value, for strategies whose names must stay
	// identifier-safe.
	RecordPlaceholder(col *models.Column, path string, seq int) (marker, name string)

	// SupportsPaging reports whether limit/offset fragments should render.
	// When false, a populated paging model is skipped silently.
	SupportsPaging() bool
}
