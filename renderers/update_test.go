package renderers_test

import (
	"testing"

	"github.com/bawdo/fluentsql/internal/testutil"
	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/renderers"
	"github.com/bawdo/fluentsql/strategies"
)

func TestUpdateMappingVariety(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")
	model := &models.UpdateModel{
		Table: person,
		Sets: []models.ColumnMapping{
			{Column: person.Col("first_name"), Kind: models.MapProperty, Value: "Betty"},
			{Column: person.Col("occupation"), Kind: models.MapNull},
			{Column: person.Col("employed"), Kind: models.MapStringConstant, Constant: "Yes"},
			{Column: person.Col("version"), Kind: models.MapConstant, Constant: "version + 1"},
		},
		Where: person.Col("id").Eq(3),
	}

	provider := renderers.NewUpdateRenderer(model, strategies.Named()).Render()
	testutil.AssertStatement(t, provider,
		"update person set first_name = :p1, occupation = null, "+
			"employed = 'Yes', version = version + 1 where id = :p2")
	testutil.AssertParameters(t, provider, map[string]any{
		"p1": "Betty",
		"p2": 3,
	})
}

func TestUpdateWithoutWhere(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")
	model := &models.UpdateModel{
		Table: person,
		Sets: []models.ColumnMapping{
			{Column: person.Col("employed"), Kind: models.MapStringConstant, Constant: "No"},
		},
	}

	provider := renderers.NewUpdateRenderer(model, strategies.Named()).Render()
	testutil.AssertStatement(t, provider, "update person set employed = 'No'")
	testutil.AssertParameterNames(t, provider)
}

func TestUpdateMyBatis3TypedMarker(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")
	model := &models.UpdateModel{
		Table: person,
		Sets: []models.ColumnMapping{
			{Column: person.TypedCol("first_name", models.Varchar), Kind: models.MapProperty, Value: "Betty"},
		},
	}

	provider := renderers.NewUpdateRenderer(model, strategies.MyBatis3()).Render()
	testutil.AssertStatement(t, provider,
		"update person set first_name = #{parameters.p1,jdbcType=VARCHAR}")
	testutil.AssertParameters(t, provider, map[string]any{"p1": "Betty"})
}
