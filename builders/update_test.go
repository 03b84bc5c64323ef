package builders_test

import (
	"testing"

	"github.com/bawdo/fluentsql/builders"
	"github.com/bawdo/fluentsql/internal/testutil"
	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/strategies"
)

func TestUpdateRequiresTable(t *testing.T) {
	t.Parallel()
	_, err := builders.Update(nil).Build()
	testutil.AssertError(t, err)
}

func TestUpdateRequiresSetMapping(t *testing.T) {
	t.Parallel()
	_, err := builders.Update(models.NewTable("person")).Build()
	testutil.AssertError(t, err)
}

func TestUpdateRejectsDuplicateSetColumn(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")

	_, err := builders.Update(person).
		Set(person.Col("first_name")).To("Betty").
		Set(person.Col("first_name")).To("Wilma").
		Build()
	testutil.AssertError(t, err)
}

func TestUpdateRejectsEmptyInList(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")

	_, err := builders.Update(person).
		Set(person.Col("first_name")).To("Betty").
		Where(person.Col("id").In()).
		Build()
	testutil.AssertError(t, err)
}

func TestUpdateSetContexts(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")

	provider, err := builders.Update(person).
		Set(person.Col("first_name")).To("Betty").
		Set(person.Col("occupation")).ToNull().
		Set(person.Col("version")).ToConstant("version + 1").
		Set(person.Col("employed")).ToStringConstant("Yes").
		Where(person.Col("id").Eq(3)).
		Render(strategies.Named())
	testutil.AssertNoError(t, err)
	testutil.AssertStatement(t, provider,
		"update person set first_name = :p1, occupation = null, "+
			"version = version + 1, employed = 'Yes' where id = :p2")
	testutil.AssertParameters(t, provider, map[string]any{
		"p1": "Betty",
		"p2": 3,
	})
}

func TestUpdateToWhenPresentSkipsNil(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")

	provider, err := builders.Update(person).
		Set(person.Col("first_name")).To("Betty").
		Set(person.Col("occupation")).ToWhenPresent(nil).
		Render(strategies.Named())
	testutil.AssertNoError(t, err)
	testutil.AssertStatement(t, provider, "update person set first_name = :p1")
}
