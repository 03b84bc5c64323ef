package renderers_test

import (
	"testing"

	"github.com/bawdo/fluentsql/internal/testutil"
	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/renderers"
	"github.com/bawdo/fluentsql/strategies"
)

func TestDeleteWithWhere(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")
	model := &models.DeleteModel{
		Table: person,
		Where: models.OrAny(
			person.Col("occupation").IsNull(),
			person.Col("employed").Eq("No"),
		),
	}

	provider := renderers.NewDeleteRenderer(model, strategies.Named()).Render()
	testutil.AssertStatement(t, provider,
		"delete from person where occupation is null or employed = :p1")
	testutil.AssertParameters(t, provider, map[string]any{"p1": "No"})
}

func TestDeleteWithoutWhere(t *testing.T) {
	t.Parallel()
	person := models.NewSchemaTable("dbo", "person")
	model := &models.DeleteModel{Table: person}

	provider := renderers.NewDeleteRenderer(model, strategies.Named()).Render()
	testutil.AssertStatement(t, provider, "delete from dbo.person")
	testutil.AssertParameterNames(t, provider)
}
