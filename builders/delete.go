package builders

import (
	"fmt"

	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/renderers"
	"github.com/bawdo/fluentsql/strategies"
)

// DeleteBuilder builds a DeleteModel.
type DeleteBuilder struct {
	table  *models.Table
	wheres []models.Condition
}

// Delete starts a delete builder for the given table.
func Delete(from *models.Table) *DeleteBuilder {
	return &DeleteBuilder{table: from}
}

// Where appends conditions; multiple conditions are and-combined.
func (b *DeleteBuilder) Where(conds ...models.Condition) *DeleteBuilder {
	b.wheres = append(b.wheres, conds...)
	return b
}

// Build validates the builder and produces the immutable model.
func (b *DeleteBuilder) Build() (*models.DeleteModel, error) {
	if b.table == nil {
		return nil, fmt.Errorf("delete: table is required")
	}
	where := combine(b.wheres)
	if where != nil {
		if err := validateCondition(where); err != nil {
			return nil, fmt.Errorf("delete: %w", err)
		}
	}
	return &models.DeleteModel{Table: b.table, Where: where}, nil
}

// Render builds the model and renders it with the given strategy.
func (b *DeleteBuilder) Render(strategy strategies.RenderingStrategy) (*renderers.StatementProvider, error) {
	model, err := b.Build()
	if err != nil {
		return nil, err
	}
	return renderers.NewDeleteRenderer(model, strategy).Render(), nil
}
