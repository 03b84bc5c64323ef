package builders

import (
	"fmt"

	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/renderers"
	"github.com/bawdo/fluentsql/strategies"
)

// UpdateBuilder builds an UpdateModel.
type UpdateBuilder struct {
	table  *models.Table
	sets   []models.ColumnMapping
	wheres []models.Condition
}

// Update starts an update builder for the given table.
func Update(t *models.Table) *UpdateBuilder {
	return &UpdateBuilder{table: t}
}

// Set begins a set-clause mapping for one column.
func (b *UpdateBuilder) Set(col *models.Column) *SetContext {
	return &SetContext{builder: b, col: col}
}

// Where appends conditions; multiple conditions are and-combined.
func (b *UpdateBuilder) Where(conds ...models.Condition) *UpdateBuilder {
	b.wheres = append(b.wheres, conds...)
	return b
}

// Build validates the builder and produces the immutable model.
func (b *UpdateBuilder) Build() (*models.UpdateModel, error) {
	if b.table == nil {
		return nil, fmt.Errorf("update: table is required")
	}
	if len(b.sets) == 0 {
		return nil, fmt.Errorf("update: at least one set mapping is required")
	}
	seen := make(map[string]bool, len(b.sets))
	for _, m := range b.sets {
		if seen[m.Column.Name] {
			return nil, fmt.Errorf("update: column %s is set more than once", m.Column.Name)
		}
		seen[m.Column.Name] = true
	}
	where := combine(b.wheres)
	if where != nil {
		if err := validateCondition(where); err != nil {
			return nil, fmt.Errorf("update: %w", err)
		}
	}
	return &models.UpdateModel{Table: b.table, Sets: b.sets, Where: where}, nil
}

// Render builds the model and renders it with the given strategy.
func (b *UpdateBuilder) Render(strategy strategies.RenderingStrategy) (*renderers.StatementProvider, error) {
	model, err := b.Build()
	if err != nil {
		return nil, err
	}
	return renderers.NewUpdateRenderer(model, strategy).Render(), nil
}

// SetContext guides construction of a single set-clause mapping.
type SetContext struct {
	builder *UpdateBuilder
	col     *models.Column
}

// To binds the column to a runtime value.
func (c *SetContext) To(value any) *UpdateBuilder {
	c.builder.sets = append(c.builder.sets, models.ColumnMapping{
		Column: c.col,
		Kind:   models.MapProperty,
		Value:  value,
	})
	return c.builder
}

// ToWhenPresent binds like To, but drops the mapping when value is nil.
func (c *SetContext) ToWhenPresent(value any) *UpdateBuilder {
	if value == nil {
		return c.builder
	}
	return c.To(value)
}

// ToNull sets the column to the literal null token.
func (c *SetContext) ToNull() *UpdateBuilder {
	c.builder.sets = append(c.builder.sets, models.ColumnMapping{
		Column: c.col,
		Kind:   models.MapNull,
	})
	return c.builder
}

// ToConstant sets the column to constant text rendered verbatim.
func (c *SetContext) ToConstant(text string) *UpdateBuilder {
	c.builder.sets = append(c.builder.sets, models.ColumnMapping{
		Column:   c.col,
		Kind:     models.MapConstant,
		Constant: text,
	})
	return c.builder
}

// ToStringConstant sets the column to a single-quoted string constant.
func (c *SetContext) ToStringConstant(text string) *UpdateBuilder {
	c.builder.sets = append(c.builder.sets, models.ColumnMapping{
		Column:   c.col,
		Kind:     models.MapStringConstant,
		Constant: text,
	})
	return c.builder
}
