package renderers

import (
	"fmt"
	"strings"

	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/strategies"
)

// SQL text for CompareOp values.
var compareOpSQL = [...]string{
	models.OpEq:      "=",
	models.OpNotEq:   "<>",
	models.OpLt:      "<",
	models.OpLtEq:    "<=",
	models.OpGt:      ">",
	models.OpGtEq:    ">=",
	models.OpLike:    "like",
	models.OpNotLike: "not like",
}

// conditionRenderer renders a predicate tree to one fragment. Its sequence
// is the statement's shared sequence, so bind markers generated here never
// collide with markers from other clauses or nested subqueries.
type conditionRenderer struct {
	strategy strategies.RenderingStrategy
	sequence *Sequence
	aliases  *AliasCalculator
}

func (r conditionRenderer) render(cond models.Condition) Fragment {
	switch c := cond.(type) {
	case *models.Comparison:
		val := r.bind(c.Left, c.Value)
		text := columnPhrase(c.Left, r.aliases) + " " + compareOpSQL[c.Op] + " " + val.Text
		return NewFragment(text, val.Params...)
	case *models.ColumnComparison:
		text := columnPhrase(c.Left, r.aliases) + " " + compareOpSQL[c.Op] +
			" " + columnPhrase(c.Right, r.aliases)
		return NewFragment(text)
	case *models.NullCheck:
		keyword := " is null"
		if c.Negate {
			keyword = " is not null"
		}
		return NewFragment(columnPhrase(c.Column, r.aliases) + keyword)
	case *models.In:
		return r.renderIn(c)
	case *models.InSelect:
		return r.renderInSelect(c)
	case *models.Between:
		return r.renderBetween(c)
	case *models.Group:
		return r.renderGroup(c)
	case *models.Not:
		inner := r.render(c.Condition)
		return NewFragment("not ("+inner.Text+")", inner.Params...)
	case *models.Exists:
		return r.renderExists(c)
	default:
		panic(fmt.Sprintf("fluentsql: unknown condition type %T", cond))
	}
}

// bind renders a value leaf: nil short-circuits to the literal null token
// with no parameter; anything else becomes a marker plus one registered
// parameter.
func (r conditionRenderer) bind(col *models.Column, val any) Fragment {
	if val == nil {
		return NewFragment("null")
	}
	name := r.strategy.ParameterName(r.sequence.Next())
	return NewFragment(r.strategy.Placeholder(col, name), Parameter{Name: name, Value: val})
}

func (r conditionRenderer) renderIn(c *models.In) Fragment {
	markers := make([]string, len(c.Values))
	var params []Parameter
	for i, v := range c.Values {
		f := r.bind(c.Column, v)
		markers[i] = f.Text
		params = append(params, f.Params...)
	}
	keyword := " in ("
	if c.Negate {
		keyword = " not in ("
	}
	text := columnPhrase(c.Column, r.aliases) + keyword + strings.Join(markers, ", ") + ")"
	return NewFragment(text, params...)
}

func (r conditionRenderer) renderInSelect(c *models.InSelect) Fragment {
	sub := r.subSelect(c.Select)
	keyword := " in ("
	if c.Negate {
		keyword = " not in ("
	}
	text := columnPhrase(c.Column, r.aliases) + keyword + sub.Text + ")"
	return NewFragment(text, sub.Params...)
}

func (r conditionRenderer) renderBetween(c *models.Between) Fragment {
	low := r.bind(c.Column, c.Low)
	high := r.bind(c.Column, c.High)
	keyword := " between "
	if c.Negate {
		keyword = " not between "
	}
	text := columnPhrase(c.Column, r.aliases) + keyword + low.Text + " and " + high.Text
	params := append(low.Params, high.Params...)
	return NewFragment(text, params...)
}

func (r conditionRenderer) renderGroup(g *models.Group) Fragment {
	connector := " and "
	if g.Connector == models.Or {
		connector = " or "
	}
	parts := make([]string, len(g.Conditions))
	var params []Parameter
	for i, member := range g.Conditions {
		f := r.render(member)
		// Nested groups render parenthesized; leaves render bare.
		if _, nested := member.(*models.Group); nested {
			f.Text = "(" + f.Text + ")"
		}
		parts[i] = f.Text
		params = append(params, f.Params...)
	}
	return NewFragment(strings.Join(parts, connector), params...)
}

func (r conditionRenderer) renderExists(c *models.Exists) Fragment {
	sub := r.subSelect(c.Select)
	keyword := "exists ("
	if c.Negate {
		keyword = "not exists ("
	}
	return NewFragment(keyword+sub.Text+")", sub.Params...)
}

// subSelect renders a nested select sharing this statement's sequence, with
// the current scope as the parent alias scope so correlated column
// references resolve.
func (r conditionRenderer) subSelect(model *models.SelectModel) Fragment {
	sub := &SelectRenderer{
		model:    model,
		strategy: r.strategy,
		sequence: r.sequence,
		parent:   r.aliases,
	}
	return sub.renderFragment()
}
