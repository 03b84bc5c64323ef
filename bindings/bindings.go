// Package bindings adapts rendered parameter maps to database driver
// argument conventions.
package bindings

import (
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/bawdo/fluentsql/renderers"
)

// NamedArgs converts a provider's parameters into pgx named arguments, for
// statements rendered with the @-prefixed named strategy.
func NamedArgs(p *renderers.StatementProvider) pgx.NamedArgs {
	params := p.Parameters()
	args := make(pgx.NamedArgs, params.Len())
	for _, name := range params.Names() {
		value, _ := params.Get(name)
		args[name] = value
	}
	return args
}

// Args returns parameter values in rendering order, for statements rendered
// with the positional strategy.
func Args(p *renderers.StatementProvider) []any {
	params := p.Parameters()
	args := make([]any, 0, params.Len())
	for _, name := range params.Names() {
		value, _ := params.Get(name)
		args = append(args, value)
	}
	return args
}

// SQLNamed returns database/sql named arguments, for drivers that accept
// sql.Named values with the :-prefixed named strategy.
func SQLNamed(p *renderers.StatementProvider) []any {
	params := p.Parameters()
	args := make([]any, 0, params.Len())
	for _, name := range params.Names() {
		value, _ := params.Get(name)
		args = append(args, sql.Named(name, value))
	}
	return args
}
