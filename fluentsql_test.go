package fluentsql_test

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/bawdo/fluentsql"
	"github.com/bawdo/fluentsql/internal/testutil"
	"github.com/bawdo/fluentsql/models"
)

func personTable() *fluentsql.Table {
	return fluentsql.NewTable("person")
}

// TestSelectRoundTrip demonstrates the basic build-then-render flow through
// the convenience package.
func TestSelectRoundTrip(t *testing.T) {
	t.Parallel()
	person := personTable()
	id := person.TypedCol("id", models.Integer)
	firstName := person.TypedCol("first_name", models.Varchar)

	provider, err := fluentsql.Select(id, firstName).
		From(person).
		Where(id.Eq(3)).
		OrderBy(firstName.Asc()).
		Limit(10).
		Render(fluentsql.MyBatis3())
	testutil.AssertNoError(t, err)

	testutil.AssertStatement(t, provider,
		"select id, first_name from person "+
			"where id = #{parameters.p1,jdbcType=INTEGER} "+
			"order by first_name limit #{parameters.p2}")
	testutil.AssertParameters(t, provider, map[string]any{
		"p1": 3,
		"p2": int64(10),
	})
}

func TestInsertRoundTrip(t *testing.T) {
	t.Parallel()
	person := personTable()

	provider, err := fluentsql.Insert(person).
		Map(person.TypedCol("id", models.Integer)).ToProperty("id", 1).
		Map(person.TypedCol("first_name", models.Varchar)).ToProperty("firstName", "Fred").
		Render(fluentsql.MyBatis3())
	testutil.AssertNoError(t, err)

	testutil.AssertStatement(t, provider,
		"insert into person (id, first_name) "+
			"values (#{record.id,jdbcType=INTEGER}, #{record.firstName,jdbcType=VARCHAR})")
	testutil.AssertParameters(t, provider, map[string]any{
		"record.id":        1,
		"record.firstName": "Fred",
	})
}

func TestUpdateRoundTrip(t *testing.T) {
	t.Parallel()
	person := personTable()
	id := person.Col("id")

	provider, err := fluentsql.Update(person).
		Set(person.Col("first_name")).To("Betty").
		Set(person.Col("occupation")).ToNull().
		Where(id.Eq(7)).
		Render(fluentsql.Named())
	testutil.AssertNoError(t, err)

	testutil.AssertStatement(t, provider,
		"update person set first_name = :p1, occupation = null where id = :p2")
	testutil.AssertParameters(t, provider, map[string]any{
		"p1": "Betty",
		"p2": 7,
	})
}

func TestDeleteRoundTrip(t *testing.T) {
	t.Parallel()
	person := personTable()

	provider, err := fluentsql.Delete(person).
		Where(person.Col("occupation").IsNull()).
		Render(fluentsql.Positional())
	testutil.AssertNoError(t, err)

	testutil.AssertStatement(t, provider,
		"delete from person where occupation is null")
	testutil.AssertParameterNames(t, provider)
}

func TestJoinWithAliases(t *testing.T) {
	t.Parallel()
	order := fluentsql.NewTable("orders")
	line := fluentsql.NewTable("order_line")
	orderID := order.Col("order_id")

	provider, err := fluentsql.Select(orderID, line.Col("quantity")).
		From(order, "o").
		Join(line, "ol", fluentsql.On(orderID, line.Col("order_id"))).
		Where(line.Col("quantity").Gt(5)).
		Render(fluentsql.Named())
	testutil.AssertNoError(t, err)

	testutil.AssertStatement(t, provider,
		"select o.order_id, ol.quantity from orders o "+
			"join order_line ol on o.order_id = ol.order_id "+
			"where ol.quantity > :p1")
}

func TestNotAndCombinators(t *testing.T) {
	t.Parallel()
	person := personTable()
	id := person.Col("id")

	provider, err := fluentsql.Select(id).
		From(person).
		Where(fluentsql.Not(fluentsql.Or(id.Eq(1), id.Eq(2)))).
		Render(fluentsql.Positional())
	testutil.AssertNoError(t, err)

	testutil.AssertStatement(t, provider,
		"select id from person where not (id = ? or id = ?)")
}

func TestCountAggregates(t *testing.T) {
	t.Parallel()
	person := personTable()

	provider, err := fluentsql.Select(fluentsql.CountAll(), fluentsql.CountDistinct(person.Col("last_name"))).
		From(person).
		Render(fluentsql.Positional())
	testutil.AssertNoError(t, err)

	testutil.AssertStatement(t, provider,
		"select count(*), count(distinct last_name) from person")
}

// TestPreparedAgainstSQLite renders representative statements with the
// positional strategy and prepares them against an in-memory database, so
// the generated text is checked by a real SQL parser.
func TestPreparedAgainstSQLite(t *testing.T) {
	t.Parallel()
	db, err := sql.Open("sqlite", ":memory:")
	testutil.AssertNoError(t, err)
	defer db.Close()

	_, err = db.Exec(`create table person (id integer, first_name text, last_name text, occupation text)`)
	testutil.AssertNoError(t, err)

	person := personTable()
	id := person.Col("id")
	firstName := person.Col("first_name")

	providers := make([]*fluentsql.StatementProvider, 0, 4)

	p, err := fluentsql.Insert(person).
		Map(id).ToProperty("id", 1).
		Map(firstName).ToProperty("firstName", "Fred").
		Render(fluentsql.Positional())
	testutil.AssertNoError(t, err)
	providers = append(providers, p)

	p, err = fluentsql.Select(id, firstName).
		From(person).
		Where(id.Between(1, 10)).
		OrderBy(firstName.Asc()).
		Limit(5).
		Render(fluentsql.Positional())
	testutil.AssertNoError(t, err)
	providers = append(providers, p)

	p, err = fluentsql.Update(person).
		Set(firstName).To("Betty").
		Where(id.Eq(1)).
		Render(fluentsql.Positional())
	testutil.AssertNoError(t, err)
	providers = append(providers, p)

	p, err = fluentsql.Delete(person).
		Where(person.Col("occupation").IsNull()).
		Render(fluentsql.Positional())
	testutil.AssertNoError(t, err)
	providers = append(providers, p)

	for _, provider := range providers {
		stmt, err := db.Prepare(provider.Statement())
		if err != nil {
			t.Errorf("prepare failed for %q: %v", provider.Statement(), err)
			continue
		}
		stmt.Close()
	}
}
