package models

// CompareOp identifies a binary comparison operator.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNotEq
	OpLt
	OpLtEq
	OpGt
	OpGtEq
	OpLike
	OpNotLike
)

// Connector joins the members of a condition group.
type Connector int

const (
	And Connector = iota
	Or
)

// Condition is a node of the predicate tree. Leaf nodes bind a runtime value
// (or compare two columns); internal nodes combine child conditions.
type Condition interface {
	condition()
}

// Comparison compares a column against a bound runtime value. A nil value
// renders as the literal null token and registers no parameter.
type Comparison struct {
	Left  *Column
	Op    CompareOp
	Value any
}

func (*Comparison) condition() {}

// ColumnComparison compares two columns, e.g. in join conditions or
// correlated subqueries.
type ColumnComparison struct {
	Left  *Column
	Op    CompareOp
	Right *Column
}

func (*ColumnComparison) condition() {}

// NullCheck renders "is null" or "is not null".
type NullCheck struct {
	Column *Column
	Negate bool
}

func (*NullCheck) condition() {}

// In checks membership in a list of bound values.
type In struct {
	Column *Column
	Values []any
	Negate bool
}

func (*In) condition() {}

// InSelect checks membership in the result of a subquery.
type InSelect struct {
	Column *Column
	Select *SelectModel
	Negate bool
}

func (*InSelect) condition() {}

// Between checks an inclusive range; both bounds are bound values.
type Between struct {
	Column *Column
	Low    any
	High   any
	Negate bool
}

func (*Between) condition() {}

// Group combines child conditions with a single connector. Nested groups
// render parenthesized.
type Group struct {
	Connector  Connector
	Conditions []Condition
}

func (*Group) condition() {}

// Not negates a condition, rendering "not (...)".
type Not struct {
	Condition Condition
}

func (*Not) condition() {}

// Exists tests a subquery for rows. The subquery may be correlated: column
// references to tables of the enclosing statement resolve through the parent
// alias scope.
type Exists struct {
	Select *SelectModel
	Negate bool
}

func (*Exists) condition() {}

// --- Predication helpers ---

// Eq creates column = value.
func (c *Column) Eq(val any) Condition { return &Comparison{Left: c, Op: OpEq, Value: val} }

// NotEq creates column <> value.
func (c *Column) NotEq(val any) Condition { return &Comparison{Left: c, Op: OpNotEq, Value: val} }

// Lt creates column < value.
func (c *Column) Lt(val any) Condition { return &Comparison{Left: c, Op: OpLt, Value: val} }

// LtEq creates column <= value.
func (c *Column) LtEq(val any) Condition { return &Comparison{Left: c, Op: OpLtEq, Value: val} }

// Gt creates column > value.
func (c *Column) Gt(val any) Condition { return &Comparison{Left: c, Op: OpGt, Value: val} }

// GtEq creates column >= value.
func (c *Column) GtEq(val any) Condition { return &Comparison{Left: c, Op: OpGtEq, Value: val} }

// Like creates column like value.
func (c *Column) Like(val any) Condition { return &Comparison{Left: c, Op: OpLike, Value: val} }

// NotLike creates column not like value.
func (c *Column) NotLike(val any) Condition { return &Comparison{Left: c, Op: OpNotLike, Value: val} }

// EqCol creates column = other column.
func (c *Column) EqCol(other *Column) Condition {
	return &ColumnComparison{Left: c, Op: OpEq, Right: other}
}

// IsNull creates column is null.
func (c *Column) IsNull() Condition { return &NullCheck{Column: c} }

// IsNotNull creates column is not null.
func (c *Column) IsNotNull() Condition { return &NullCheck{Column: c, Negate: true} }

// In creates column in (v1, v2, ...).
func (c *Column) In(vals ...any) Condition { return &In{Column: c, Values: vals} }

// NotIn creates column not in (v1, v2, ...).
func (c *Column) NotIn(vals ...any) Condition { return &In{Column: c, Values: vals, Negate: true} }

// InSelect creates column in (select ...).
func (c *Column) InSelect(sub *SelectModel) Condition { return &InSelect{Column: c, Select: sub} }

// Between creates column between low and high.
func (c *Column) Between(low, high any) Condition {
	return &Between{Column: c, Low: low, High: high}
}

// AndAll groups conditions with "and".
func AndAll(conds ...Condition) Condition { return &Group{Connector: And, Conditions: conds} }

// OrAny groups conditions with "or".
func OrAny(conds ...Condition) Condition { return &Group{Connector: Or, Conditions: conds} }
