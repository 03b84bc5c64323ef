// Package builders provides the fluent builder API that assembles immutable
// statement models and hands them to the renderers. Each statement kind has
// one flat builder validated at a single Build step.
package builders

import (
	"fmt"

	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/renderers"
	"github.com/bawdo/fluentsql/strategies"
)

// SelectBuilder builds a SelectModel.
type SelectBuilder struct {
	columns  []models.SelectItem
	distinct bool
	table    *models.Table
	aliases  map[*models.Table]string
	joins    []*models.JoinModel
	wheres   []models.Condition
	groupBy  []*models.Column
	havings  []models.Condition
	unions   []unionPart
	orderBy  []models.SortSpec
	paging   *models.PagingModel
}

type unionPart struct {
	connector models.SetConnector
	builder   *SelectBuilder
}

// Select starts a select builder with the given column list.
func Select(items ...models.SelectItem) *SelectBuilder {
	return &SelectBuilder{
		columns: items,
		aliases: make(map[*models.Table]string),
	}
}

// Distinct adds the distinct modifier.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.distinct = true
	return b
}

// From sets the table, optionally with an alias for this statement's scope.
func (b *SelectBuilder) From(t *models.Table, alias ...string) *SelectBuilder {
	b.table = t
	if len(alias) > 0 {
		b.aliases[t] = alias[0]
	}
	return b
}

// On creates an equi-join criterion for Join and friends.
func On(left, right *models.Column) models.JoinCriterion {
	return models.JoinCriterion{Left: left, Right: right}
}

// Join adds an inner join. Pass an empty alias to join under the table's
// own name.
func (b *SelectBuilder) Join(t *models.Table, alias string, on ...models.JoinCriterion) *SelectBuilder {
	return b.join(t, models.InnerJoin, alias, on)
}

// LeftJoin adds a left join.
func (b *SelectBuilder) LeftJoin(t *models.Table, alias string, on ...models.JoinCriterion) *SelectBuilder {
	return b.join(t, models.LeftJoin, alias, on)
}

// RightJoin adds a right join.
func (b *SelectBuilder) RightJoin(t *models.Table, alias string, on ...models.JoinCriterion) *SelectBuilder {
	return b.join(t, models.RightJoin, alias, on)
}

// FullJoin adds a full join.
func (b *SelectBuilder) FullJoin(t *models.Table, alias string, on ...models.JoinCriterion) *SelectBuilder {
	return b.join(t, models.FullJoin, alias, on)
}

func (b *SelectBuilder) join(t *models.Table, jt models.JoinType, alias string, on []models.JoinCriterion) *SelectBuilder {
	if alias != "" {
		b.aliases[t] = alias
	}
	b.joins = append(b.joins, &models.JoinModel{Table: t, Type: jt, On: on})
	return b
}

// Where appends conditions; multiple calls and multiple arguments are
// and-combined.
func (b *SelectBuilder) Where(conds ...models.Condition) *SelectBuilder {
	b.wheres = append(b.wheres, conds...)
	return b
}

// GroupBy appends group-by columns.
func (b *SelectBuilder) GroupBy(cols ...*models.Column) *SelectBuilder {
	b.groupBy = append(b.groupBy, cols...)
	return b
}

// Having appends having conditions, and-combined like Where.
func (b *SelectBuilder) Having(conds ...models.Condition) *SelectBuilder {
	b.havings = append(b.havings, conds...)
	return b
}

// Union appends another query expression joined with "union".
func (b *SelectBuilder) Union(other *SelectBuilder) *SelectBuilder {
	b.unions = append(b.unions, unionPart{connector: models.Union, builder: other})
	return b
}

// UnionAll appends another query expression joined with "union all".
func (b *SelectBuilder) UnionAll(other *SelectBuilder) *SelectBuilder {
	b.unions = append(b.unions, unionPart{connector: models.UnionAll, builder: other})
	return b
}

// OrderBy sets the statement-level ordering, preserving argument order.
func (b *SelectBuilder) OrderBy(specs ...models.SortSpec) *SelectBuilder {
	b.orderBy = append(b.orderBy, specs...)
	return b
}

// Limit sets the paging limit.
func (b *SelectBuilder) Limit(n int64) *SelectBuilder {
	b.ensurePaging().Limit = &n
	return b
}

// Offset sets the paging offset.
func (b *SelectBuilder) Offset(n int64) *SelectBuilder {
	b.ensurePaging().Offset = &n
	return b
}

func (b *SelectBuilder) ensurePaging() *models.PagingModel {
	if b.paging == nil {
		b.paging = &models.PagingModel{}
	}
	return b.paging
}

// Build validates the builder and produces the immutable model.
func (b *SelectBuilder) Build() (*models.SelectModel, error) {
	qe, err := b.queryExpression(nil)
	if err != nil {
		return nil, err
	}
	model := &models.SelectModel{QueryExpressions: []*models.QueryExpression{qe}}

	for _, part := range b.unions {
		connector := part.connector
		uqe, err := part.builder.queryExpression(&connector)
		if err != nil {
			return nil, fmt.Errorf("union: %w", err)
		}
		model.QueryExpressions = append(model.QueryExpressions, uqe)
	}

	if len(b.orderBy) > 0 {
		model.OrderBy = &models.OrderByModel{Columns: b.orderBy}
	}
	model.Paging = b.paging
	return model, nil
}

func (b *SelectBuilder) queryExpression(connector *models.SetConnector) (*models.QueryExpression, error) {
	if b.table == nil {
		return nil, fmt.Errorf("select: table is required")
	}
	if len(b.columns) == 0 {
		return nil, fmt.Errorf("select: at least one column is required")
	}
	for _, j := range b.joins {
		if len(j.On) == 0 {
			return nil, fmt.Errorf("select: join on %s has no criteria", j.Table.FullName())
		}
	}
	where := combine(b.wheres)
	if where != nil {
		if err := validateCondition(where); err != nil {
			return nil, fmt.Errorf("select: %w", err)
		}
	}
	having := combine(b.havings)
	if having != nil {
		if err := validateCondition(having); err != nil {
			return nil, fmt.Errorf("select: %w", err)
		}
	}
	return &models.QueryExpression{
		Connector: connector,
		Distinct:  b.distinct,
		Columns:   b.columns,
		Table:     b.table,
		Aliases:   b.aliases,
		Joins:     b.joins,
		Where:     where,
		GroupBy:   b.groupBy,
		Having:    having,
	}, nil
}

// Render builds the model and renders it with the given strategy.
func (b *SelectBuilder) Render(strategy strategies.RenderingStrategy) (*renderers.StatementProvider, error) {
	model, err := b.Build()
	if err != nil {
		return nil, err
	}
	return renderers.NewSelectRenderer(model, strategy).Render(), nil
}

// combine reduces a condition list: none is nil, one stays bare, several
// are and-grouped.
func combine(conds []models.Condition) models.Condition {
	switch len(conds) {
	case 0:
		return nil
	case 1:
		return conds[0]
	default:
		return models.AndAll(conds...)
	}
}

// validateCondition rejects predicate shapes that cannot render to valid
// SQL. Subquery models are validated when their own builders run.
func validateCondition(cond models.Condition) error {
	switch c := cond.(type) {
	case *models.In:
		if len(c.Values) == 0 {
			return fmt.Errorf("in condition on %s has no values", c.Column.Name)
		}
	case *models.Group:
		if len(c.Conditions) == 0 {
			return fmt.Errorf("condition group is empty")
		}
		for _, member := range c.Conditions {
			if err := validateCondition(member); err != nil {
				return err
			}
		}
	case *models.Not:
		return validateCondition(c.Condition)
	}
	return nil
}

// Exists creates an exists(...) condition over a subquery. The subquery
// must be valid; an invalid one is a programming error and panics, the same
// failure mode as any malformed static statement shape.
func Exists(sub *SelectBuilder) models.Condition {
	return &models.Exists{Select: mustModel(sub)}
}

// NotExists creates a not exists(...) condition over a subquery.
func NotExists(sub *SelectBuilder) models.Condition {
	return &models.Exists{Select: mustModel(sub), Negate: true}
}

// InSubquery creates "col in (select ...)".
func InSubquery(col *models.Column, sub *SelectBuilder) models.Condition {
	return &models.InSelect{Column: col, Select: mustModel(sub)}
}

// NotInSubquery creates "col not in (select ...)".
func NotInSubquery(col *models.Column, sub *SelectBuilder) models.Condition {
	return &models.InSelect{Column: col, Select: mustModel(sub), Negate: true}
}

func mustModel(sub *SelectBuilder) *models.SelectModel {
	model, err := sub.Build()
	if err != nil {
		panic(fmt.Sprintf("fluentsql: invalid subquery: %v", err))
	}
	return model
}
