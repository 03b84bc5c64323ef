package models

// MappingKind discriminates the value side of a column mapping.
type MappingKind int

const (
	// MapProperty binds a runtime value under a generated parameter name.
	MapProperty MappingKind = iota
	// MapNull renders the literal null token with no parameter.
	MapNull
	// MapConstant renders the constant text verbatim (numeric, expression).
	MapConstant
	// MapStringConstant renders the constant single-quoted and escaped.
	MapStringConstant
)

// ColumnMapping pairs a column with its value source. Insert and update
// statements share this shape.
type ColumnMapping struct {
	Column   *Column
	Kind     MappingKind
	Property string // property path for record-based bindings
	Value    any    // bound runtime value (MapProperty only)
	Constant string // literal text (constant kinds only)
}

// InsertModel models a single-record mapped insert.
type InsertModel struct {
	Table    *Table
	Mappings []ColumnMapping
}

// MultiRowInsertModel models an insert of several records sharing one
// column list. Rows are positional: Rows[i][j] is the value of Mappings[j]
// for record i. Parameter names embed the row index so the flat parameter
// map resolves unambiguously across rows.
type MultiRowInsertModel struct {
	Table    *Table
	Mappings []ColumnMapping
	Rows     [][]any
}

// InsertSelectModel models "insert into t (cols) select ...". The subselect
// shares the statement's parameter sequence so marker names never collide.
type InsertSelectModel struct {
	Table   *Table
	Columns []*Column
	Select  *SelectModel
}
