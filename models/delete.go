package models

// DeleteModel models "delete from t [where ...]".
type DeleteModel struct {
	Table *Table
	Where Condition
}
