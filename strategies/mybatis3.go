package strategies

import (
	"fmt"

	"github.com/bawdo/fluentsql/models"
)

// MyBatis3Strategy renders MyBatis-style markers: sequence-bound parameters
// as #{parameters.p1,jdbcType=INTEGER} with map keys p1, p2, ...; record
// bindings as #{record.firstName,jdbcType=VARCHAR} keyed by the full path.
// The "parameters" and "record" hosts name the objects the downstream
// framework binds the map and record under.
type MyBatis3Strategy struct{}

// MyBatis3 returns the MyBatis3 rendering strategy.
func MyBatis3() MyBatis3Strategy {
	return MyBatis3Strategy{}
}

func (MyBatis3Strategy) ParameterName(seq int) string {
	return fmt.Sprintf("p%d", seq)
}

func (MyBatis3Strategy) Placeholder(col *models.Column, name string) string {
	return "#{parameters." + name + typeSuffix(col) + "}"
}

func (MyBatis3Strategy) RecordPlaceholder(col *models.Column, path string, _ int) (string, string) {
	return "#{" + path + typeSuffix(col) + "}", path
}

func (MyBatis3Strategy) SupportsPaging() bool {
	return true
}

func typeSuffix(col *models.Column) string {
	if col == nil || col.Type == "" {
		return ""
	}
	return ",jdbcType=" + string(col.Type)
}
