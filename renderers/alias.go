package renderers

import "github.com/bawdo/fluentsql/models"

// AliasCalculator resolves the display name qualifying a column reference in
// one render scope. Resolution order: an alias bound in this scope, then the
// enclosing scope (correlated subqueries), then — in guaranteed mode, used
// by joined queries — the table's composed name. Outside guaranteed mode an
// unaliased table yields "", and columns render unqualified.
type AliasCalculator struct {
	aliases    map[*models.Table]string
	parent     *AliasCalculator
	guaranteed bool
}

// NewAliasCalculator creates a calculator for a single-table scope.
// aliases may be nil.
func NewAliasCalculator(aliases map[*models.Table]string) *AliasCalculator {
	return &AliasCalculator{aliases: aliases}
}

// NewGuaranteedAliasCalculator creates a calculator that falls back to the
// table's composed name, for scopes where every column must be qualified
// (queries with joins).
func NewGuaranteedAliasCalculator(aliases map[*models.Table]string) *AliasCalculator {
	return &AliasCalculator{aliases: aliases, guaranteed: true}
}

// WithParent returns a copy resolving through parent when this scope has no
// binding for a table. Used when rendering correlated subqueries.
func (a *AliasCalculator) WithParent(parent *AliasCalculator) *AliasCalculator {
	return &AliasCalculator{aliases: a.aliases, parent: parent, guaranteed: a.guaranteed}
}

// AliasFor resolves the qualifier for table in this scope. Resolution is
// deterministic: the same (table, calculator) pair always yields the same
// string within one render.
func (a *AliasCalculator) AliasFor(table *models.Table) string {
	if alias, ok := a.aliases[table]; ok {
		return alias
	}
	if a.parent != nil {
		if alias := a.parent.AliasFor(table); alias != "" {
			return alias
		}
	}
	if a.guaranteed {
		return table.FullName()
	}
	return ""
}

// columnPhrase renders a column reference, qualified when the scope
// resolves a qualifier for its table.
func columnPhrase(c *models.Column, aliases *AliasCalculator) string {
	if q := aliases.AliasFor(c.Table); q != "" {
		return q + "." + c.Name
	}
	return c.Name
}

// tablePhrase renders a table in a from/join clause: the composed name,
// followed by the alias explicitly bound in this scope, if any.
func tablePhrase(t *models.Table, aliases map[*models.Table]string) string {
	if alias, ok := aliases[t]; ok {
		return t.FullName() + " " + alias
	}
	return t.FullName()
}
