package renderers

import (
	"strings"

	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/strategies"
)

// SQL keywords for JoinType values.
var joinTypeSQL = [...]string{
	models.InnerJoin: "join",
	models.LeftJoin:  "left join",
	models.RightJoin: "right join",
	models.FullJoin:  "full join",
}

// SQL keywords for SetConnector values.
var setConnectorSQL = [...]string{
	models.Union:    "union",
	models.UnionAll: "union all",
}

// SelectRenderer renders one SelectModel. The model must be valid (built
// through the builders package); the renderer itself performs no
// validation.
type SelectRenderer struct {
	model    *models.SelectModel
	strategy strategies.RenderingStrategy
	sequence *Sequence
	parent   *AliasCalculator
}

// NewSelectRenderer creates a renderer with a fresh parameter sequence.
func NewSelectRenderer(model *models.SelectModel, strategy strategies.RenderingStrategy) *SelectRenderer {
	return &SelectRenderer{model: model, strategy: strategy, sequence: NewSequence()}
}

// Render produces the final statement and parameter map.
func (r *SelectRenderer) Render() *StatementProvider {
	fc := NewFragmentCollector()
	for _, qe := range r.model.QueryExpressions {
		fc.Add(r.renderQueryExpression(qe))
	}
	r.renderOrderBy(fc)
	r.renderPaging(fc)
	return newStatementProvider(fc.Text(" "), fc.Parameters())
}

// renderFragment renders the whole select as one fragment, for embedding as
// a subquery.
func (r *SelectRenderer) renderFragment() Fragment {
	fc := NewFragmentCollector()
	for _, qe := range r.model.QueryExpressions {
		fc.Add(r.renderQueryExpression(qe))
	}
	r.renderOrderBy(fc)
	r.renderPaging(fc)
	return fc.fragment(" ")
}

func (r *SelectRenderer) renderQueryExpression(qe *models.QueryExpression) Fragment {
	aliases := r.aliasCalculator(qe)
	cond := conditionRenderer{strategy: r.strategy, sequence: r.sequence, aliases: aliases}

	var sb strings.Builder
	var params []Parameter

	if qe.Connector != nil {
		sb.WriteString(setConnectorSQL[*qe.Connector])
		sb.WriteString(" ")
	}
	sb.WriteString("select ")
	if qe.Distinct {
		sb.WriteString("distinct ")
	}
	sb.WriteString(r.selectList(qe.Columns, aliases))
	sb.WriteString(" from ")
	sb.WriteString(tablePhrase(qe.Table, qe.Aliases))

	for _, join := range qe.Joins {
		sb.WriteString(" ")
		sb.WriteString(joinTypeSQL[join.Type])
		sb.WriteString(" ")
		sb.WriteString(tablePhrase(join.Table, qe.Aliases))
		sb.WriteString(" on ")
		for i, on := range join.On {
			if i > 0 {
				sb.WriteString(" and ")
			}
			sb.WriteString(columnPhrase(on.Left, aliases))
			sb.WriteString(" = ")
			sb.WriteString(columnPhrase(on.Right, aliases))
		}
	}

	if qe.Where != nil {
		f := cond.render(qe.Where)
		sb.WriteString(" where ")
		sb.WriteString(f.Text)
		params = append(params, f.Params...)
	}

	if len(qe.GroupBy) > 0 {
		phrases := make([]string, len(qe.GroupBy))
		for i, c := range qe.GroupBy {
			phrases[i] = columnPhrase(c, aliases)
		}
		sb.WriteString(" group by ")
		sb.WriteString(strings.Join(phrases, ", "))
	}

	if qe.Having != nil {
		f := cond.render(qe.Having)
		sb.WriteString(" having ")
		sb.WriteString(f.Text)
		params = append(params, f.Params...)
	}

	return NewFragment(sb.String(), params...)
}

// aliasCalculator builds the alias scope for one query expression. Joined
// queries qualify every column, falling back to the composed table name for
// unaliased tables; single-table queries leave unaliased columns bare.
func (r *SelectRenderer) aliasCalculator(qe *models.QueryExpression) *AliasCalculator {
	var ac *AliasCalculator
	if len(qe.Joins) > 0 {
		ac = NewGuaranteedAliasCalculator(qe.Aliases)
	} else {
		ac = NewAliasCalculator(qe.Aliases)
	}
	if r.parent != nil {
		ac = ac.WithParent(r.parent)
	}
	return ac
}

func (r *SelectRenderer) selectList(items []models.SelectItem, aliases *AliasCalculator) string {
	phrases := make([]string, len(items))
	for i, item := range items {
		phrases[i] = selectItemPhrase(item, aliases)
	}
	return strings.Join(phrases, ", ")
}

func selectItemPhrase(item models.SelectItem, aliases *AliasCalculator) string {
	switch it := item.(type) {
	case *models.Column:
		phrase := columnPhrase(it, aliases)
		if it.Alias != "" {
			phrase += " as " + it.Alias
		}
		return phrase
	case models.CountAll:
		return withAlias("count(*)", it.Alias)
	case models.Count:
		phrase := "count("
		if it.Distinct {
			phrase += "distinct "
		}
		phrase += columnPhrase(it.Column, aliases) + ")"
		return withAlias(phrase, it.Alias)
	default:
		panic("fluentsql: unknown select item type")
	}
}

func withAlias(phrase, alias string) string {
	if alias != "" {
		return phrase + " as " + alias
	}
	return phrase
}

func (r *SelectRenderer) renderOrderBy(fc *FragmentCollector) {
	om := r.model.OrderBy
	if om == nil || len(om.Columns) == 0 {
		return
	}
	phrases := make([]string, len(om.Columns))
	for i, spec := range om.Columns {
		phrase := spec.Column.OrderByName()
		if spec.Descending {
			phrase += " DESC"
		}
		phrases[i] = phrase
	}
	fc.Add(NewFragment("order by " + strings.Join(phrases, ", ")))
}

// renderPaging renders the limit/offset fragment. Limit and offset values
// are bound parameters drawn from the shared sequence, so paging markers
// never collide with markers from nested subqueries.
func (r *SelectRenderer) renderPaging(fc *FragmentCollector) {
	pm := r.model.Paging
	if pm == nil || !r.strategy.SupportsPaging() {
		return
	}
	switch {
	case pm.Limit != nil && pm.Offset != nil:
		limit := r.pagingParam(*pm.Limit)
		offset := r.pagingParam(*pm.Offset)
		text := "limit " + limit.Text + " offset " + offset.Text
		fc.Add(NewFragment(text, append(limit.Params, offset.Params...)...))
	case pm.Limit != nil:
		limit := r.pagingParam(*pm.Limit)
		fc.Add(NewFragment("limit "+limit.Text, limit.Params...))
	case pm.Offset != nil:
		offset := r.pagingParam(*pm.Offset)
		fc.Add(NewFragment("offset "+offset.Text+" rows", offset.Params...))
	}
}

func (r *SelectRenderer) pagingParam(value int64) Fragment {
	name := r.strategy.ParameterName(r.sequence.Next())
	return NewFragment(r.strategy.Placeholder(nil, name), Parameter{Name: name, Value: value})
}
