package query

import (
	"errors"
	"testing"
)

func TestTranslateNullComparisons(t *testing.T) {
	ctx := NewContext(fakeFactory{}, fakeLabels{})
	ctx.Scope.CurrentAlias = "n"
	prop := Prop(RoleCurrent, "Email")

	got, err := translateExpr(ctx, prop.IsNull())
	if err != nil {
		t.Fatalf("IsNull: %v", err)
	}
	if got != "n.Email IS NULL" {
		t.Errorf("IsNull = %q, want %q", got, "n.Email IS NULL")
	}

	got, err = translateExpr(ctx, prop.IsNotNull())
	if err != nil {
		t.Fatalf("IsNotNull: %v", err)
	}
	if got != "n.Email IS NOT NULL" {
		t.Errorf("IsNotNull = %q, want %q", got, "n.Email IS NOT NULL")
	}
}

func TestTranslateLogicalNesting(t *testing.T) {
	ctx := NewContext(fakeFactory{}, fakeLabels{})
	ctx.Scope.CurrentAlias = "n"

	age := Prop(RoleCurrent, "Age").Gt(Param(18))
	name := Prop(RoleCurrent, "Name").Eq(Param("Ada"))
	combined := age.And(name).Not()

	got, err := translateExpr(ctx, combined)
	if err != nil {
		t.Fatalf("translateExpr error = %v", err)
	}
	want := "NOT ((n.Age > $p0 AND n.Name = $p1))"
	if got != want {
		t.Errorf("translateExpr(combined) = %q, want %q", got, want)
	}
}

func TestTranslateParamFuncEvaluatesOnce(t *testing.T) {
	ctx := NewContext(fakeFactory{}, fakeLabels{})
	calls := 0
	p := ParamFunc(func() (any, error) {
		calls++
		return 42, nil
	})

	got, err := translateExpr(ctx, p)
	if err != nil {
		t.Fatalf("translateExpr error = %v", err)
	}
	if got != "$p0" {
		t.Errorf("translateExpr(ParamFunc) = %q, want \"$p0\"", got)
	}
	if calls != 1 {
		t.Errorf("eval called %d times, want 1", calls)
	}
	if ctx.Builder.Parameters.Values()["p0"] != 42 {
		t.Errorf("registered param = %v, want 42", ctx.Builder.Parameters.Values()["p0"])
	}
}

func TestTranslateParamFuncPropagatesError(t *testing.T) {
	ctx := NewContext(fakeFactory{}, fakeLabels{})
	boom := errors.New("boom")
	p := ParamFunc(func() (any, error) { return nil, boom })

	_, err := translateExpr(ctx, p)
	if err == nil {
		t.Fatal("translateExpr error = nil, want non-nil")
	}
	if !errors.Is(err, boom) {
		t.Errorf("translateExpr error = %v, want wrapping %v", err, boom)
	}
}

func TestTranslateDotExprForDateField(t *testing.T) {
	ctx := NewContext(fakeFactory{}, fakeLabels{})
	ctx.Scope.CurrentAlias = "n"
	createdAt := Prop(RoleCurrent, "CreatedAt")

	got, err := translateExpr(ctx, DateField(createdAt, "year"))
	if err != nil {
		t.Fatalf("translateExpr error = %v", err)
	}
	want := "datetime(n.CreatedAt).year"
	if got != want {
		t.Errorf("translateExpr(DateField) = %q, want %q", got, want)
	}
}
