package models

// UpdateModel models "update t set ... [where ...]".
type UpdateModel struct {
	Table *Table
	Sets  []ColumnMapping
	Where Condition
}
