package renderers

import (
	"fmt"
	"strings"

	"github.com/bawdo/fluentsql/internal/quoting"
	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/strategies"
)

// UpdateRenderer renders "update t set ... [where ...]".
type UpdateRenderer struct {
	model    *models.UpdateModel
	strategy strategies.RenderingStrategy
	sequence *Sequence
}

// NewUpdateRenderer creates a renderer with a fresh parameter sequence.
func NewUpdateRenderer(model *models.UpdateModel, strategy strategies.RenderingStrategy) *UpdateRenderer {
	return &UpdateRenderer{model: model, strategy: strategy, sequence: NewSequence()}
}

// Render produces the update statement. Set values bind under
// sequence-generated names; the where clause shares the same sequence.
func (r *UpdateRenderer) Render() *StatementProvider {
	fc := NewFragmentCollector()
	fc.Add(NewFragment("update " + r.model.Table.FullName()))
	fc.Add(r.setClause())

	if r.model.Where != nil {
		aliases := NewAliasCalculator(nil)
		cond := conditionRenderer{strategy: r.strategy, sequence: r.sequence, aliases: aliases}
		f := cond.render(r.model.Where)
		fc.Add(NewFragment("where "+f.Text, f.Params...))
	}

	return newStatementProvider(fc.Text(" "), fc.Parameters())
}

func (r *UpdateRenderer) setClause() Fragment {
	phrases := make([]string, len(r.model.Sets))
	var params []Parameter
	for i, m := range r.model.Sets {
		phrase, param := r.setPhrase(m)
		phrases[i] = phrase
		params = append(params, param...)
	}
	return NewFragment("set "+strings.Join(phrases, ", "), params...)
}

func (r *UpdateRenderer) setPhrase(m models.ColumnMapping) (string, []Parameter) {
	switch m.Kind {
	case models.MapProperty:
		name := r.strategy.ParameterName(r.sequence.Next())
		marker := r.strategy.Placeholder(m.Column, name)
		return m.Column.Name + " = " + marker, []Parameter{{Name: name, Value: m.Value}}
	case models.MapNull:
		return m.Column.Name + " = null", nil
	case models.MapConstant:
		return m.Column.Name + " = " + m.Constant, nil
	case models.MapStringConstant:
		return m.Column.Name + " = " + quoting.SingleQuote(m.Constant), nil
	default:
		panic(fmt.Sprintf("fluentsql: unknown mapping kind %d", m.Kind))
	}
}
