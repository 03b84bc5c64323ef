package models

// JDBCType annotates a column with the driver-level type used in generated
// parameter markers (e.g. #{parameters.p1,jdbcType=INTEGER}).
type JDBCType string

// Common JDBC type annotations.
const (
	Bigint    JDBCType = "BIGINT"
	Boolean   JDBCType = "BOOLEAN"
	Char      JDBCType = "CHAR"
	Date      JDBCType = "DATE"
	Decimal   JDBCType = "DECIMAL"
	Double    JDBCType = "DOUBLE"
	Integer   JDBCType = "INTEGER"
	Smallint  JDBCType = "SMALLINT"
	Timestamp JDBCType = "TIMESTAMP"
	Varchar   JDBCType = "VARCHAR"
)

// Column references a table column, optionally with an explicit result alias
// and a JDBC type annotation.
type Column struct {
	Table *Table
	Name  string
	Alias string
	Type  JDBCType
}

func (c *Column) selectItem() {}

// As returns a copy of the column carrying an explicit alias. The receiver
// is left untouched so shared column declarations stay immutable.
func (c *Column) As(alias string) *Column {
	cp := *c
	cp.Alias = alias
	return &cp
}

// OrderByName returns the name used in order-by clauses: the explicit alias
// when present, the plain column name otherwise.
func (c *Column) OrderByName() string {
	if c.Alias != "" {
		return c.Alias
	}
	return c.Name
}

// SelectItem is an entry of a select column list: a Column or an aggregate.
type SelectItem interface {
	selectItem()
}

// CountAll is the count(*) aggregate.
type CountAll struct {
	Alias string
}

func (CountAll) selectItem() {}

// Count is the count(col) aggregate, optionally distinct.
type Count struct {
	Column   *Column
	Distinct bool
	Alias    string
}

func (Count) selectItem() {}
