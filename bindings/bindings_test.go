package bindings_test

import (
	"database/sql"
	"testing"

	"github.com/bawdo/fluentsql/bindings"
	"github.com/bawdo/fluentsql/builders"
	"github.com/bawdo/fluentsql/internal/testutil"
	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/renderers"
	"github.com/bawdo/fluentsql/strategies"
)

func renderSample(t *testing.T, strategy strategies.RenderingStrategy) *renderers.StatementProvider {
	t.Helper()
	person := models.NewTable("person")
	provider, err := builders.Select(person.Col("id")).
		From(person).
		Where(person.Col("id").Gt(5), person.Col("first_name").Eq("Fred")).
		Render(strategy)
	testutil.AssertNoError(t, err)
	return provider
}

func TestNamedArgs(t *testing.T) {
	t.Parallel()
	provider := renderSample(t, strategies.AtNamed())

	testutil.AssertStatement(t, provider,
		"select id from person where id > @p1 and first_name = @p2")

	args := bindings.NamedArgs(provider)
	testutil.AssertEqual(t, len(args), 2)
	testutil.AssertEqual[any](t, args["p1"], 5)
	testutil.AssertEqual[any](t, args["p2"], "Fred")
}

func TestArgs(t *testing.T) {
	t.Parallel()
	provider := renderSample(t, strategies.Positional())

	args := bindings.Args(provider)
	testutil.AssertEqual(t, len(args), 2)
	testutil.AssertEqual[any](t, args[0], 5)
	testutil.AssertEqual[any](t, args[1], "Fred")
}

func TestSQLNamed(t *testing.T) {
	t.Parallel()
	provider := renderSample(t, strategies.Named())

	args := bindings.SQLNamed(provider)
	testutil.AssertEqual(t, len(args), 2)

	first, ok := args[0].(sql.NamedArg)
	if !ok {
		t.Fatalf("expected sql.NamedArg, got %T", args[0])
	}
	testutil.AssertEqual(t, first.Name, "p1")
	testutil.AssertEqual[any](t, first.Value, 5)
}
