package builders_test

import (
	"testing"

	"github.com/bawdo/fluentsql/builders"
	"github.com/bawdo/fluentsql/internal/testutil"
	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/strategies"
)

func TestInsertRequiresMappings(t *testing.T) {
	t.Parallel()
	_, err := builders.Insert(models.NewTable("person")).Build()
	testutil.AssertError(t, err)
}

func TestInsertRejectsDuplicateColumn(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")
	id := person.Col("id")

	_, err := builders.Insert(person).
		Map(id).ToProperty("id", 1).
		Map(id).ToProperty("id", 2).
		Build()
	testutil.AssertError(t, err)
}

func TestInsertRejectsDuplicateProperty(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")

	_, err := builders.Insert(person).
		Map(person.Col("id")).ToProperty("id", 1).
		Map(person.Col("first_name")).ToProperty("id", "Fred").
		Build()
	testutil.AssertError(t, err)
}

func TestInsertMappingContexts(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")

	provider, err := builders.Insert(person).
		Map(person.Col("id")).ToProperty("id", 1).
		Map(person.Col("occupation")).ToNull().
		Map(person.Col("version")).ToConstant("1").
		Map(person.Col("employed")).ToStringConstant("Yes").
		Render(strategies.Named())
	testutil.AssertNoError(t, err)
	testutil.AssertStatement(t, provider,
		"insert into person (id, occupation, version, employed) "+
			"values (:p1, null, 1, 'Yes')")
	testutil.AssertParameters(t, provider, map[string]any{"p1": 1})
}

func TestInsertToPropertyWhenPresentSkipsNil(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")

	provider, err := builders.Insert(person).
		Map(person.Col("id")).ToProperty("id", 1).
		Map(person.Col("occupation")).ToPropertyWhenPresent("occupation", nil).
		Render(strategies.Named())
	testutil.AssertNoError(t, err)
	testutil.AssertStatement(t, provider,
		"insert into person (id) values (:p1)")
}

func TestMultiRowInsertRowArityChecked(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")

	_, err := builders.InsertMultiple(person).
		Map(person.Col("id"), "id").
		Map(person.Col("first_name"), "firstName").
		Row(1, "Fred").
		Row(2).
		Build()
	testutil.AssertError(t, err)
}

func TestMultiRowInsertRejectsDuplicateProperty(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")

	_, err := builders.InsertMultiple(person).
		Map(person.Col("id"), "id").
		Map(person.Col("first_name"), "id").
		Row(1, "Fred").
		Build()
	testutil.AssertError(t, err)
}

func TestMultiRowInsertRequiresRows(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")
	_, err := builders.InsertMultiple(person).
		Map(person.Col("id"), "id").
		Build()
	testutil.AssertError(t, err)
}

func TestMultiRowInsertRender(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")

	provider, err := builders.InsertMultiple(person).
		Map(person.Col("id"), "id").
		Map(person.Col("first_name"), "firstName").
		Row(1, "Fred").
		Row(2, "Wilma").
		Render(strategies.Named())
	testutil.AssertNoError(t, err)
	testutil.AssertStatement(t, provider,
		"insert into person (id, first_name) values (:p1, :p2), (:p3, :p4)")
	testutil.AssertParameters(t, provider, map[string]any{
		"p1": 1, "p2": "Fred", "p3": 2, "p4": "Wilma",
	})
}

func TestInsertSelectRequiresSource(t *testing.T) {
	t.Parallel()
	person := models.NewTable("person")
	_, err := builders.InsertSelect(person, person.Col("id")).Build()
	testutil.AssertError(t, err)
}

func TestInsertSelectRender(t *testing.T) {
	t.Parallel()
	archive := models.NewTable("person_archive")
	person := models.NewTable("person")

	provider, err := builders.InsertSelect(archive, archive.Col("id"), archive.Col("first_name")).
		From(builders.Select(person.Col("id"), person.Col("first_name")).
			From(person).
			Where(person.Col("employed").Eq("No"))).
		Render(strategies.Named())
	testutil.AssertNoError(t, err)
	testutil.AssertStatement(t, provider,
		"insert into person_archive (id, first_name) "+
			"select id, first_name from person where employed = :p1")
}
