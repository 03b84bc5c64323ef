// Package models defines the immutable statement models that the renderers
// consume. Models are built once (normally through the builders package) and
// never mutated afterwards.
package models

// Table identifies a database table, optionally qualified by catalog and
// schema. Tables are compared by pointer identity: a self-join uses two
// distinct *Table values for the same table name, each resolving its alias
// independently through the renderers' AliasCalculator.
type Table struct {
	Catalog string
	Schema  string
	Name    string

	fullName string
}

// NewTable creates an unqualified table reference.
func NewTable(name string) *Table {
	return newTable("", "", name)
}

// NewSchemaTable creates a schema-qualified table reference.
func NewSchemaTable(schema, name string) *Table {
	return newTable("", schema, name)
}

// NewCatalogTable creates a fully qualified table reference. An empty schema
// with a non-empty catalog composes as "catalog..table".
func NewCatalogTable(catalog, schema, name string) *Table {
	return newTable(catalog, schema, name)
}

func newTable(catalog, schema, name string) *Table {
	return &Table{
		Catalog:  catalog,
		Schema:   schema,
		Name:     name,
		fullName: composeName(catalog, schema, name),
	}
}

// composeName builds the display name for an unaliased table. The composed
// name is fixed at construction time since the parts never change.
func composeName(catalog, schema, name string) string {
	switch {
	case catalog != "" && schema != "":
		return catalog + "." + schema + "." + name
	case catalog != "":
		return catalog + ".." + name
	case schema != "":
		return schema + "." + name
	default:
		return name
	}
}

// FullName returns the composed catalog.schema.table display name.
func (t *Table) FullName() string {
	return t.fullName
}

// Col creates a column reference bound to this table.
func (t *Table) Col(name string) *Column {
	return &Column{Table: t, Name: name}
}

// TypedCol creates a column reference carrying a JDBC type annotation.
// The annotation only affects generated parameter markers, never the SQL
// text of the column itself.
func (t *Table) TypedCol(name string, jdbcType JDBCType) *Column {
	return &Column{Table: t, Name: name, Type: jdbcType}
}
