package renderers

// StatementProvider is the immutable result of one render: the final SQL
// text and the ordered parameter map, ready to hand to a prepared-statement
// execution API (see the bindings package for conversions).
type StatementProvider struct {
	statement string
	params    *ParameterMap
}

func newStatementProvider(statement string, params *ParameterMap) *StatementProvider {
	return &StatementProvider{statement: statement, params: params}
}

// Statement returns the rendered SQL text.
func (p *StatementProvider) Statement() string {
	return p.statement
}

// Parameters returns the ordered parameter map.
func (p *StatementProvider) Parameters() *ParameterMap {
	return p.params
}
