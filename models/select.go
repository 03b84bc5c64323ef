package models

// JoinType identifies the SQL join keyword.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	FullJoin
)

// SetConnector joins two query expressions of one select statement.
type SetConnector int

const (
	Union SetConnector = iota
	UnionAll
)

// SelectModel is the complete model of one select statement: one or more
// query expressions (additional expressions carry a union connector), plus
// statement-level ordering and paging.
type SelectModel struct {
	QueryExpressions []*QueryExpression
	OrderBy          *OrderByModel
	Paging           *PagingModel
}

// QueryExpression models one "select ... from ..." unit. Aliases binds
// tables to their aliases within this expression's scope only; the same
// *Table may carry a different alias in a different expression or subquery.
type QueryExpression struct {
	Connector *SetConnector
	Distinct  bool
	Columns   []SelectItem
	Table     *Table
	Aliases   map[*Table]string
	Joins     []*JoinModel
	Where     Condition
	GroupBy   []*Column
	Having    Condition
}

// JoinModel is one joined table with its equi-join criteria, and-chained.
type JoinModel struct {
	Table *Table
	Type  JoinType
	On    []JoinCriterion
}

// JoinCriterion equates two columns in a join's on clause.
type JoinCriterion struct {
	Left  *Column
	Right *Column
}

// OrderByModel lists sort specifications in caller order.
type OrderByModel struct {
	Columns []SortSpec
}

// SortSpec names one order-by entry. Descending appends " DESC"; ascending
// is the default and renders bare.
type SortSpec struct {
	Column     *Column
	Descending bool
}

// Desc marks a column for descending order.
func (c *Column) Desc() SortSpec {
	return SortSpec{Column: c, Descending: true}
}

// Asc marks a column for ascending order.
func (c *Column) Asc() SortSpec {
	return SortSpec{Column: c}
}

// PagingModel holds limit/offset values. Both are optional; an absent
// PagingModel renders no paging fragment at all.
type PagingModel struct {
	Limit  *int64
	Offset *int64
}
