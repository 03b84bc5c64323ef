package renderers

import (
	"fmt"
	"strings"

	"github.com/bawdo/fluentsql/internal/quoting"
	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/strategies"
)

// fieldValue is one rendered column mapping: the field name for the column
// list, the value phrase for the values list, and any parameter the value
// introduced.
type fieldValue struct {
	field  string
	value  string
	params []Parameter
}

// fieldValueCollector accumulates column/value phrases in strict positional
// correspondence. Like FragmentCollector it is order-preserving and
// associative under merge, so partial collectors built independently can be
// combined in the caller's order.
type fieldValueCollector struct {
	fields []string
	values []string
	params *ParameterMap
}

func newFieldValueCollector() *fieldValueCollector {
	return &fieldValueCollector{params: NewParameterMap()}
}

func (c *fieldValueCollector) add(fv fieldValue) {
	c.fields = append(c.fields, fv.field)
	c.values = append(c.values, fv.value)
	for _, p := range fv.params {
		c.params.put(p.Name, p.Value)
	}
}

func (c *fieldValueCollector) merge(other *fieldValueCollector) *fieldValueCollector {
	c.fields = append(c.fields, other.fields...)
	c.values = append(c.values, other.values...)
	for _, name := range other.params.names {
		c.params.put(name, other.params.values[name])
	}
	return c
}

// columnsPhrase renders "(c1, c2, ...)".
func (c *fieldValueCollector) columnsPhrase() string {
	return "(" + strings.Join(c.fields, ", ") + ")"
}

// groupPhrase renders one parenthesized value group "(v1, v2, ...)".
func (c *fieldValueCollector) groupPhrase() string {
	return "(" + strings.Join(c.values, ", ") + ")"
}

// valuesPhrase renders "values (v1, v2, ...)".
func (c *fieldValueCollector) valuesPhrase() string {
	return "values " + c.groupPhrase()
}

// InsertRenderer renders a single-record mapped insert.
type InsertRenderer struct {
	model    *models.InsertModel
	strategy strategies.RenderingStrategy
	sequence *Sequence
}

// NewInsertRenderer creates a renderer with a fresh parameter sequence.
func NewInsertRenderer(model *models.InsertModel, strategy strategies.RenderingStrategy) *InsertRenderer {
	return &InsertRenderer{model: model, strategy: strategy, sequence: NewSequence()}
}

// Render produces "insert into t (cols) values (...)" plus the parameter
// map. Property mappings bind under the "record" host path; null and
// constant mappings render inline with no parameter.
func (r *InsertRenderer) Render() *StatementProvider {
	collector := newFieldValueCollector()
	for _, m := range r.model.Mappings {
		collector.add(renderMapping(m, "record", r.strategy, r.sequence))
	}

	statement := "insert into " + r.model.Table.FullName() +
		" " + collector.columnsPhrase() +
		" " + collector.valuesPhrase()
	return newStatementProvider(statement, collector.params)
}

// renderMapping renders one column mapping under the given host prefix.
func renderMapping(m models.ColumnMapping, prefix string, strategy strategies.RenderingStrategy, sequence *Sequence) fieldValue {
	switch m.Kind {
	case models.MapProperty:
		path := prefix + "." + m.Property
		marker, name := strategy.RecordPlaceholder(m.Column, path, sequence.Next())
		return fieldValue{
			field:  m.Column.Name,
			value:  marker,
			params: []Parameter{{Name: name, Value: m.Value}},
		}
	case models.MapNull:
		return fieldValue{field: m.Column.Name, value: "null"}
	case models.MapConstant:
		return fieldValue{field: m.Column.Name, value: m.Constant}
	case models.MapStringConstant:
		return fieldValue{field: m.Column.Name, value: quoting.SingleQuote(m.Constant)}
	default:
		panic(fmt.Sprintf("fluentsql: unknown mapping kind %d", m.Kind))
	}
}

// MultiRowInsertRenderer renders an insert of several records.
type MultiRowInsertRenderer struct {
	model    *models.MultiRowInsertModel
	strategy strategies.RenderingStrategy
	sequence *Sequence
}

// NewMultiRowInsertRenderer creates a renderer with a fresh parameter
// sequence.
func NewMultiRowInsertRenderer(model *models.MultiRowInsertModel, strategy strategies.RenderingStrategy) *MultiRowInsertRenderer {
	return &MultiRowInsertRenderer{model: model, strategy: strategy, sequence: NewSequence()}
}

// Render produces one parenthesized value group per record, comma-joined.
// Each record renders into its own collector; merging the collectors in
// record order yields the statement's parameter map. Property paths embed
// the row index ("records[0].id") so the merged names stay distinct.
func (r *MultiRowInsertRenderer) Render() *StatementProvider {
	rows := make([]*fieldValueCollector, len(r.model.Rows))
	for row, values := range r.model.Rows {
		c := newFieldValueCollector()
		for i, m := range r.model.Mappings {
			path := fmt.Sprintf("records[%d].%s", row, m.Property)
			marker, name := r.strategy.RecordPlaceholder(m.Column, path, r.sequence.Next())
			c.add(fieldValue{
				field:  m.Column.Name,
				value:  marker,
				params: []Parameter{{Name: name, Value: values[i]}},
			})
		}
		rows[row] = c
	}

	columns := rows[0].columnsPhrase()
	groups := make([]string, len(rows))
	for i, c := range rows {
		groups[i] = c.groupPhrase()
	}

	combined := rows[0]
	for _, c := range rows[1:] {
		combined = combined.merge(c)
	}

	statement := "insert into " + r.model.Table.FullName() +
		" " + columns +
		" values " + strings.Join(groups, ", ")
	return newStatementProvider(statement, combined.params)
}

// InsertSelectRenderer renders "insert into t (cols) select ...".
type InsertSelectRenderer struct {
	model    *models.InsertSelectModel
	strategy strategies.RenderingStrategy
	sequence *Sequence
}

// NewInsertSelectRenderer creates a renderer with a fresh parameter
// sequence, shared with the subselect render.
func NewInsertSelectRenderer(model *models.InsertSelectModel, strategy strategies.RenderingStrategy) *InsertSelectRenderer {
	return &InsertSelectRenderer{model: model, strategy: strategy, sequence: NewSequence()}
}

// Render produces the insert-select statement and the subselect's
// parameters.
func (r *InsertSelectRenderer) Render() *StatementProvider {
	fields := make([]string, len(r.model.Columns))
	for i, c := range r.model.Columns {
		fields[i] = c.Name
	}

	sub := &SelectRenderer{model: r.model.Select, strategy: r.strategy, sequence: r.sequence}
	f := sub.renderFragment()

	params := NewParameterMap()
	for _, p := range f.Params {
		params.put(p.Name, p.Value)
	}

	statement := "insert into " + r.model.Table.FullName() +
		" (" + strings.Join(fields, ", ") + ") " + f.Text
	return newStatementProvider(statement, params)
}
