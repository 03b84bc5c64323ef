// Package fluentsql provides a fluent SQL statement builder for Go.
//
// Statements are built with fluent builders, validated into immutable models,
// and rendered into SQL text plus an ordered named parameter map. This package
// re-exports commonly used types and functions from subpackages for
// convenience. Advanced users can import subpackages directly:
//   - github.com/bawdo/fluentsql/builders (statement builders)
//   - github.com/bawdo/fluentsql/models (statement models)
//   - github.com/bawdo/fluentsql/renderers (SQL generation)
//   - github.com/bawdo/fluentsql/strategies (parameter marker styles)
package fluentsql

import (
	"github.com/bawdo/fluentsql/builders"
	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/renderers"
	"github.com/bawdo/fluentsql/strategies"
)

// --- Rendering Results ---

// StatementProvider holds a rendered SQL statement and its parameter map.
type StatementProvider = renderers.StatementProvider

// ParameterMap is an ordered name-to-value parameter collection.
type ParameterMap = renderers.ParameterMap

// --- Builder Types ---

// SelectBuilder provides a fluent API for building select statements.
type SelectBuilder = builders.SelectBuilder

// InsertBuilder provides a fluent API for building single-row insert statements.
type InsertBuilder = builders.InsertBuilder

// MultiRowInsertBuilder provides a fluent API for building multi-row insert statements.
type MultiRowInsertBuilder = builders.MultiRowInsertBuilder

// InsertSelectBuilder provides a fluent API for building insert-from-select statements.
type InsertSelectBuilder = builders.InsertSelectBuilder

// UpdateBuilder provides a fluent API for building update statements.
type UpdateBuilder = builders.UpdateBuilder

// DeleteBuilder provides a fluent API for building delete statements.
type DeleteBuilder = builders.DeleteBuilder

// --- Builder Constructors ---

// Select starts a select builder over the given select list items.
func Select(items ...models.SelectItem) *builders.SelectBuilder {
	return builders.Select(items...)
}

// Insert starts a single-row insert builder for the given table.
func Insert(into *models.Table) *builders.InsertBuilder {
	return builders.Insert(into)
}

// InsertMultiple starts a multi-row insert builder for the given table.
func InsertMultiple(into *models.Table) *builders.MultiRowInsertBuilder {
	return builders.InsertMultiple(into)
}

// InsertSelect starts an insert-from-select builder for the given table and columns.
func InsertSelect(into *models.Table, cols ...*models.Column) *builders.InsertSelectBuilder {
	return builders.InsertSelect(into, cols...)
}

// Update starts an update builder for the given table.
func Update(t *models.Table) *builders.UpdateBuilder {
	return builders.Update(t)
}

// Delete starts a delete builder for the given table.
func Delete(from *models.Table) *builders.DeleteBuilder {
	return builders.Delete(from)
}

// --- Core Model Types ---

// Table represents a SQL table reference.
type Table = models.Table

// Column represents a column of a table.
type Column = models.Column

// Condition is a renderable where or having predicate.
type Condition = models.Condition

// JDBCType annotates a column with its JDBC type for MyBatis3 markers.
type JDBCType = models.JDBCType

// --- Common Model Constructors ---

// NewTable creates a table reference with a bare name.
func NewTable(name string) *models.Table {
	return models.NewTable(name)
}

// NewSchemaTable creates a schema-qualified table reference.
func NewSchemaTable(schema, name string) *models.Table {
	return models.NewSchemaTable(schema, name)
}

// NewCatalogTable creates a catalog- and schema-qualified table reference.
func NewCatalogTable(catalog, schema, name string) *models.Table {
	return models.NewCatalogTable(catalog, schema, name)
}

// On pairs two columns into a join equality criterion.
func On(left, right *models.Column) models.JoinCriterion {
	return builders.On(left, right)
}

// CountAll renders count(*) in a select list.
func CountAll() models.CountAll {
	return models.CountAll{}
}

// CountColumn renders count(col) in a select list.
func CountColumn(col *models.Column) models.Count {
	return models.Count{Column: col}
}

// CountDistinct renders count(distinct col) in a select list.
func CountDistinct(col *models.Column) models.Count {
	return models.Count{Column: col, Distinct: true}
}

// --- Condition Combinators ---

// And combines conditions with the and connector.
func And(conds ...models.Condition) models.Condition {
	return models.AndAll(conds...)
}

// Or combines conditions with the or connector.
func Or(conds ...models.Condition) models.Condition {
	return models.OrAny(conds...)
}

// Not negates a condition.
func Not(cond models.Condition) models.Condition {
	return &models.Not{Condition: cond}
}

// Exists renders an exists (subquery) predicate.
func Exists(sub *builders.SelectBuilder) models.Condition {
	return builders.Exists(sub)
}

// NotExists renders a not exists (subquery) predicate.
func NotExists(sub *builders.SelectBuilder) models.Condition {
	return builders.NotExists(sub)
}

// InSubquery renders a col in (subquery) predicate.
func InSubquery(col *models.Column, sub *builders.SelectBuilder) models.Condition {
	return builders.InSubquery(col, sub)
}

// NotInSubquery renders a col not in (subquery) predicate.
func NotInSubquery(col *models.Column, sub *builders.SelectBuilder) models.Condition {
	return builders.NotInSubquery(col, sub)
}

// --- Rendering Strategies ---

// RenderingStrategy controls parameter marker syntax.
type RenderingStrategy = strategies.RenderingStrategy

// MyBatis3 renders #{parameters.p1,jdbcType=...} markers.
func MyBatis3() strategies.MyBatis3Strategy {
	return strategies.MyBatis3()
}

// Named renders :p1 markers.
func Named() strategies.NamedStrategy {
	return strategies.Named()
}

// AtNamed renders @p1 markers.
func AtNamed() strategies.NamedStrategy {
	return strategies.AtNamed()
}

// Positional renders ? markers.
func Positional() strategies.PositionalStrategy {
	return strategies.Positional()
}
