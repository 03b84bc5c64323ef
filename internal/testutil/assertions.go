package testutil

import (
	"testing"

	"github.com/bawdo/fluentsql/renderers"
)

// AssertEqual checks that got == want and reports a descriptive error if not.
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("expected:\n  %v\ngot:\n  %v", want, got)
	}
}

// AssertStatement compares the provider's SQL text with the expected string.
func AssertStatement(t *testing.T, p *renderers.StatementProvider, expected string) {
	t.Helper()
	if p.Statement() != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, p.Statement())
	}
}

// AssertParameters compares the provider's parameter map, in insertion order,
// with the expected name/value pairs.
func AssertParameters(t *testing.T, p *renderers.StatementProvider, want map[string]any) {
	t.Helper()
	params := p.Parameters()
	if params.Len() != len(want) {
		t.Errorf("expected %d parameters, got %d (%v)", len(want), params.Len(), params.Names())
		return
	}
	for _, name := range params.Names() {
		wantValue, ok := want[name]
		if !ok {
			t.Errorf("unexpected parameter %q", name)
			continue
		}
		got, _ := params.Get(name)
		if got != wantValue {
			t.Errorf("parameter %q: expected %v, got %v", name, wantValue, got)
		}
	}
}

// AssertParameterNames compares the ordered parameter names of the provider.
func AssertParameterNames(t *testing.T, p *renderers.StatementProvider, want ...string) {
	t.Helper()
	names := p.Parameters().Names()
	if len(names) != len(want) {
		t.Errorf("expected parameter names %v, got %v", want, names)
		return
	}
	for i := range names {
		if names[i] != want[i] {
			t.Errorf("expected parameter names %v, got %v", want, names)
			return
		}
	}
}

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
}
