package main

import (
	"io"
	"testing"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"'Fred'", "Fred"},
		{`"Fred"`, "Fred"},
		{"42", int64(42)},
		{"3.14", 3.14},
		{"true", true},
		{"false", false},
		{"null", nil},
		{"NULL", nil},
	}
	for _, tc := range cases {
		got, err := parseValue(tc.in)
		if err != nil {
			t.Errorf("parseValue(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseValue(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseValueRejectsBareWords(t *testing.T) {
	if _, err := parseValue("Fred"); err == nil {
		t.Fatal("expected an error for an unquoted string")
	}
}

func TestParseColumnSpec(t *testing.T) {
	name, jt, err := parseColumnSpec("id:integer")
	if err != nil {
		t.Fatalf("parseColumnSpec: %v", err)
	}
	if name != "id" || string(jt) != "INTEGER" {
		t.Errorf("got (%q, %q)", name, jt)
	}

	name, jt, err = parseColumnSpec("note")
	if err != nil {
		t.Fatalf("parseColumnSpec: %v", err)
	}
	if name != "note" || jt != "" {
		t.Errorf("got (%q, %q)", name, jt)
	}

	if _, _, err := parseColumnSpec("x:blob5"); err == nil {
		t.Fatal("expected an error for an unknown type")
	}
}

func TestPropertyName(t *testing.T) {
	cases := map[string]string{
		"first_name":    "firstName",
		"id":            "id",
		"order_line_id": "orderLineId",
	}
	for in, want := range cases {
		if got := propertyName(in); got != want {
			t.Errorf("propertyName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCutFold(t *testing.T) {
	before, after, found := cutFold("address a ON person.id = address.person_id", " on ")
	if !found || before != "address a" || after != "person.id = address.person_id" {
		t.Errorf("got (%q, %q, %v)", before, after, found)
	}
}

func TestParseConditionForms(t *testing.T) {
	sess := NewSession(io.Discard)
	mustExecute(t, sess, "table person id:integer first_name:varchar occupation:varchar")
	mustExecute(t, sess, "from person")

	valid := []string{
		"id = 1",
		"id != 1",
		"id <> 1",
		"id >= 2",
		"id between 1 and 10",
		"id in 1, 2, 3",
		"id not in 4",
		"first_name like 'F%'",
		"first_name not like 'F%'",
		"occupation is null",
		"occupation is not null",
	}
	for _, c := range valid {
		if _, err := sess.parseCondition(c); err != nil {
			t.Errorf("parseCondition(%q): %v", c, err)
		}
	}

	invalid := []string{"id", "id ~ 1", "id between 1"}
	for _, c := range invalid {
		if _, err := sess.parseCondition(c); err == nil {
			t.Errorf("parseCondition(%q): expected an error", c)
		}
	}
}
