package strategies_test

import (
	"testing"

	"github.com/bawdo/fluentsql/internal/testutil"
	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/strategies"
)

func TestMyBatis3Markers(t *testing.T) {
	t.Parallel()
	s := strategies.MyBatis3()
	person := models.NewTable("person")

	testutil.AssertEqual(t, s.ParameterName(1), "p1")
	testutil.AssertEqual(t, s.Placeholder(person.TypedCol("id", models.Integer), "p1"),
		"#{parameters.p1,jdbcType=INTEGER}")
	testutil.AssertEqual(t, s.Placeholder(person.Col("id"), "p1"), "#{parameters.p1}")
	testutil.AssertEqual(t, s.Placeholder(nil, "p2"), "#{parameters.p2}")

	marker, name := s.RecordPlaceholder(person.TypedCol("first_name", models.Varchar), "record.firstName", 1)
	testutil.AssertEqual(t, marker, "#{record.firstName,jdbcType=VARCHAR}")
	testutil.AssertEqual(t, name, "record.firstName")
}

func TestNamedMarkers(t *testing.T) {
	t.Parallel()
	s := strategies.Named()

	testutil.AssertEqual(t, s.Placeholder(nil, "p1"), ":p1")

	marker, name := s.RecordPlaceholder(nil, "record.firstName", 3)
	testutil.AssertEqual(t, marker, ":p3")
	testutil.AssertEqual(t, name, "p3")
}

func TestAtNamedMarkers(t *testing.T) {
	t.Parallel()
	s := strategies.AtNamed()
	testutil.AssertEqual(t, s.Placeholder(nil, "p1"), "@p1")
}

func TestPositionalMarkers(t *testing.T) {
	t.Parallel()
	s := strategies.Positional()

	testutil.AssertEqual(t, s.Placeholder(nil, "p1"), "?")

	marker, name := s.RecordPlaceholder(nil, "records[0].id", 4)
	testutil.AssertEqual(t, marker, "?")
	testutil.AssertEqual(t, name, "p4")
}
