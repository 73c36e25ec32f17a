package peekable

import "testing"

func TestOptionalSomeAndNone(t *testing.T) {
	some := Some(1)
	none := None[int]()
	if !some.IsSome() || none.IsSome() {
		t.Error("expected Some to have a value and None not to")
	}
	if some.Unwrap() != 1 {
		t.Errorf("expected 1, got %d", some.Unwrap())
	}
	if some.UnwrapOr(2) != 1 || none.UnwrapOr(2) != 2 {
		t.Error("expected UnwrapOr to fall back only for None")
	}
}

func TestOptionalUnwrapEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Unwrap on empty optional to panic")
		}
	}()
	None[int]().Unwrap()
}

func TestOptionalTake(t *testing.T) {
	opt := Some(1)
	taken := opt.Take()
	if !taken.IsSome() || taken.Unwrap() != 1 {
		t.Error("expected Take to return the value")
	}
	if opt.IsSome() {
		t.Error("expected Take to empty the original")
	}
}

func TestOptionalGetAllowsMutation(t *testing.T) {
	opt := Some(1)
	*opt.Get() = 2
	if opt.Unwrap() != 2 {
		t.Errorf("expected mutation through Get to persist, got %d", opt.Unwrap())
	}
}

func TestOptionalThenElse(t *testing.T) {
	ran := ""
	Some(1).Then(func(int) { ran += "then" })
	Some(1).Else(func() { ran += "else" })
	None[int]().Then(func(int) { ran += "then" })
	None[int]().Else(func() { ran += "else" })
	if ran != "thenelse" {
		t.Errorf("unexpected call sequence %q", ran)
	}
}
