package renderers

import (
	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/strategies"
)

// DeleteRenderer renders "delete from t [where ...]".
type DeleteRenderer struct {
	model    *models.DeleteModel
	strategy strategies.RenderingStrategy
	sequence *Sequence
}

// NewDeleteRenderer creates a renderer with a fresh parameter sequence.
func NewDeleteRenderer(model *models.DeleteModel, strategy strategies.RenderingStrategy) *DeleteRenderer {
	return &DeleteRenderer{model: model, strategy: strategy, sequence: NewSequence()}
}

// Render produces the delete statement and its parameter map.
func (r *DeleteRenderer) Render() *StatementProvider {
	fc := NewFragmentCollector()
	fc.Add(NewFragment("delete from " + r.model.Table.FullName()))

	if r.model.Where != nil {
		aliases := NewAliasCalculator(nil)
		cond := conditionRenderer{strategy: r.strategy, sequence: r.sequence, aliases: aliases}
		f := cond.render(r.model.Where)
		fc.Add(NewFragment("where "+f.Text, f.Params...))
	}

	return newStatementProvider(fc.Text(" "), fc.Parameters())
}
