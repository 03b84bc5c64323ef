package builders

import (
	"fmt"

	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/renderers"
	"github.com/bawdo/fluentsql/strategies"
)

// InsertBuilder builds a single-record mapped insert.
type InsertBuilder struct {
	table    *models.Table
	mappings []models.ColumnMapping
}

// Insert starts an insert builder targeting the given table.
func Insert(into *models.Table) *InsertBuilder {
	return &InsertBuilder{table: into}
}

// Map begins a mapping for one column. The returned context selects the
// value source and hands control back to the builder.
func (b *InsertBuilder) Map(col *models.Column) *InsertMappingContext {
	return &InsertMappingContext{builder: b, col: col}
}

// Build validates the builder and produces the immutable model.
func (b *InsertBuilder) Build() (*models.InsertModel, error) {
	if b.table == nil {
		return nil, fmt.Errorf("insert: table is required")
	}
	if len(b.mappings) == 0 {
		return nil, fmt.Errorf("insert: at least one column mapping is required")
	}
	if err := validateMappings(b.mappings); err != nil {
		return nil, err
	}
	return &models.InsertModel{Table: b.table, Mappings: b.mappings}, nil
}

// validateMappings rejects a column or property mapped more than once; either
// duplicate would render an invalid column list or a colliding parameter
// name.
func validateMappings(mappings []models.ColumnMapping) error {
	cols := make(map[string]bool, len(mappings))
	props := make(map[string]bool, len(mappings))
	for _, m := range mappings {
		if cols[m.Column.Name] {
			return fmt.Errorf("insert: column %s is mapped more than once", m.Column.Name)
		}
		cols[m.Column.Name] = true
		if m.Kind != models.MapProperty {
			continue
		}
		if props[m.Property] {
			return fmt.Errorf("insert: property %q is mapped more than once", m.Property)
		}
		props[m.Property] = true
	}
	return nil
}

// Render builds the model and renders it with the given strategy.
func (b *InsertBuilder) Render(strategy strategies.RenderingStrategy) (*renderers.StatementProvider, error) {
	model, err := b.Build()
	if err != nil {
		return nil, err
	}
	return renderers.NewInsertRenderer(model, strategy).Render(), nil
}

// InsertMappingContext guides construction of a single column mapping.
type InsertMappingContext struct {
	builder *InsertBuilder
	col     *models.Column
}

// ToProperty binds the column to a runtime value under the given property
// name.
func (c *InsertMappingContext) ToProperty(property string, value any) *InsertBuilder {
	c.builder.mappings = append(c.builder.mappings, models.ColumnMapping{
		Column:   c.col,
		Kind:     models.MapProperty,
		Property: property,
		Value:    value,
	})
	return c.builder
}

// ToPropertyWhenPresent binds like ToProperty, but drops the mapping
// entirely — column and value — when value is nil.
func (c *InsertMappingContext) ToPropertyWhenPresent(property string, value any) *InsertBuilder {
	if value == nil {
		return c.builder
	}
	return c.ToProperty(property, value)
}

// ToNull maps the column to the literal null token; no parameter is
// generated.
func (c *InsertMappingContext) ToNull() *InsertBuilder {
	c.builder.mappings = append(c.builder.mappings, models.ColumnMapping{
		Column: c.col,
		Kind:   models.MapNull,
	})
	return c.builder
}

// ToConstant maps the column to constant text rendered verbatim.
func (c *InsertMappingContext) ToConstant(text string) *InsertBuilder {
	c.builder.mappings = append(c.builder.mappings, models.ColumnMapping{
		Column:   c.col,
		Kind:     models.MapConstant,
		Constant: text,
	})
	return c.builder
}

// ToStringConstant maps the column to a single-quoted string constant.
func (c *InsertMappingContext) ToStringConstant(text string) *InsertBuilder {
	c.builder.mappings = append(c.builder.mappings, models.ColumnMapping{
		Column:   c.col,
		Kind:     models.MapStringConstant,
		Constant: text,
	})
	return c.builder
}

// MultiRowInsertBuilder builds an insert of several records sharing one
// column list.
type MultiRowInsertBuilder struct {
	table    *models.Table
	mappings []models.ColumnMapping
	rows     [][]any
}

// InsertMultiple starts a multi-row insert builder.
func InsertMultiple(into *models.Table) *MultiRowInsertBuilder {
	return &MultiRowInsertBuilder{table: into}
}

// Map adds a column mapping bound to the given property name. Multi-row
// inserts support property mappings only.
func (b *MultiRowInsertBuilder) Map(col *models.Column, property string) *MultiRowInsertBuilder {
	b.mappings = append(b.mappings, models.ColumnMapping{
		Column:   col,
		Kind:     models.MapProperty,
		Property: property,
	})
	return b
}

// Row appends one record's values, positionally matching the mapped
// columns.
func (b *MultiRowInsertBuilder) Row(values ...any) *MultiRowInsertBuilder {
	b.rows = append(b.rows, values)
	return b
}

// Build validates the builder and produces the immutable model.
func (b *MultiRowInsertBuilder) Build() (*models.MultiRowInsertModel, error) {
	if b.table == nil {
		return nil, fmt.Errorf("insert: table is required")
	}
	if len(b.mappings) == 0 {
		return nil, fmt.Errorf("insert: at least one column mapping is required")
	}
	if len(b.rows) == 0 {
		return nil, fmt.Errorf("insert: at least one row is required")
	}
	if err := validateMappings(b.mappings); err != nil {
		return nil, err
	}
	for i, row := range b.rows {
		if len(row) != len(b.mappings) {
			return nil, fmt.Errorf("insert: row %d has %d values for %d columns", i, len(row), len(b.mappings))
		}
	}
	return &models.MultiRowInsertModel{Table: b.table, Mappings: b.mappings, Rows: b.rows}, nil
}

// Render builds the model and renders it with the given strategy.
func (b *MultiRowInsertBuilder) Render(strategy strategies.RenderingStrategy) (*renderers.StatementProvider, error) {
	model, err := b.Build()
	if err != nil {
		return nil, err
	}
	return renderers.NewMultiRowInsertRenderer(model, strategy).Render(), nil
}

// InsertSelectBuilder builds "insert into t (cols) select ...".
type InsertSelectBuilder struct {
	table   *models.Table
	columns []*models.Column
	sel     *SelectBuilder
}

// InsertSelect starts an insert-select builder for the given target columns.
func InsertSelect(into *models.Table, cols ...*models.Column) *InsertSelectBuilder {
	return &InsertSelectBuilder{table: into, columns: cols}
}

// From sets the source subselect.
func (b *InsertSelectBuilder) From(sel *SelectBuilder) *InsertSelectBuilder {
	b.sel = sel
	return b
}

// Build validates the builder and produces the immutable model.
func (b *InsertSelectBuilder) Build() (*models.InsertSelectModel, error) {
	if b.table == nil {
		return nil, fmt.Errorf("insert: table is required")
	}
	if len(b.columns) == 0 {
		return nil, fmt.Errorf("insert: at least one column is required")
	}
	if b.sel == nil {
		return nil, fmt.Errorf("insert: source select is required")
	}
	sel, err := b.sel.Build()
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	return &models.InsertSelectModel{Table: b.table, Columns: b.columns, Select: sel}, nil
}

// Render builds the model and renders it with the given strategy.
func (b *InsertSelectBuilder) Render(strategy strategies.RenderingStrategy) (*renderers.StatementProvider, error) {
	model, err := b.Build()
	if err != nil {
		return nil, err
	}
	return renderers.NewInsertSelectRenderer(model, strategy).Render(), nil
}
