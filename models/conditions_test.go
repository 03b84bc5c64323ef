package models_test

import (
	"testing"

	"github.com/bawdo/fluentsql/internal/testutil"
	"github.com/bawdo/fluentsql/models"
)

func TestComparisonPredications(t *testing.T) {
	t.Parallel()
	id := models.NewTable("person").Col("id")

	cases := []struct {
		name string
		cond models.Condition
		op   models.CompareOp
	}{
		{"eq", id.Eq(1), models.OpEq},
		{"not eq", id.NotEq(1), models.OpNotEq},
		{"lt", id.Lt(1), models.OpLt},
		{"lt eq", id.LtEq(1), models.OpLtEq},
		{"gt", id.Gt(1), models.OpGt},
		{"gt eq", id.GtEq(1), models.OpGtEq},
		{"like", id.Like("a%"), models.OpLike},
		{"not like", id.NotLike("a%"), models.OpNotLike},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cmp, ok := tc.cond.(*models.Comparison)
			if !ok {
				t.Fatalf("expected *Comparison, got %T", tc.cond)
			}
			testutil.AssertEqual(t, cmp.Op, tc.op)
			testutil.AssertEqual(t, cmp.Left, id)
		})
	}
}

func TestNullChecks(t *testing.T) {
	t.Parallel()
	occupation := models.NewTable("person").Col("occupation")

	isNull := occupation.IsNull().(*models.NullCheck)
	testutil.AssertEqual(t, isNull.Negate, false)

	isNotNull := occupation.IsNotNull().(*models.NullCheck)
	testutil.AssertEqual(t, isNotNull.Negate, true)
}

func TestInPredications(t *testing.T) {
	t.Parallel()
	id := models.NewTable("person").Col("id")

	in := id.In(1, 2, 3).(*models.In)
	testutil.AssertEqual(t, len(in.Values), 3)
	testutil.AssertEqual(t, in.Negate, false)

	notIn := id.NotIn(1).(*models.In)
	testutil.AssertEqual(t, notIn.Negate, true)
}

func TestBetweenPredication(t *testing.T) {
	t.Parallel()
	id := models.NewTable("person").Col("id")
	between := id.Between(1, 10).(*models.Between)
	testutil.AssertEqual[any](t, between.Low, 1)
	testutil.AssertEqual[any](t, between.High, 10)
}

func TestCombinators(t *testing.T) {
	t.Parallel()
	id := models.NewTable("person").Col("id")

	and := models.AndAll(id.Eq(1), id.Eq(2)).(*models.Group)
	testutil.AssertEqual(t, and.Connector, models.And)
	testutil.AssertEqual(t, len(and.Conditions), 2)

	or := models.OrAny(id.Eq(1)).(*models.Group)
	testutil.AssertEqual(t, or.Connector, models.Or)
}
