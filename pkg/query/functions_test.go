package query

import "testing"

func TestStringFunctionCombinators(t *testing.T) {
	name := Prop(RoleCurrent, "Name")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ToLower", ToLower(name).String(), "toLower(<0>.Name)"},
		{"ToUpper", ToUpper(name).String(), "toUpper(<0>.Name)"},
		{"Trim", Trim(name).String(), "trim(<0>.Name)"},
		{"Length", Length(name).String(), "size(<0>.Name)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestCollectionContainsTranslation(t *testing.T) {
	ctx := NewContext(fakeFactory{}, fakeLabels{})
	ctx.Scope.CurrentAlias = "n"
	col := Prop(RoleCurrent, "Tags")
	item := Param("urgent")

	got, err := translateExpr(ctx, CollectionContains(col, item))
	if err != nil {
		t.Fatalf("translateExpr error = %v", err)
	}
	want := "$p0 IN n.Tags"
	if got != want {
		t.Errorf("translateExpr(CollectionContains) = %q, want %q", got, want)
	}
}

func TestAnyPredicateTranslation(t *testing.T) {
	ctx := NewContext(fakeFactory{}, fakeLabels{})
	ctx.Scope.CurrentAlias = "n"
	col := Prop(RoleCurrent, "Friends")

	any := Any("f", col, Prop(RoleCurrent, "Active").Eq(Param(true)))
	got, err := translateExpr(ctx, any)
	if err != nil {
		t.Fatalf("translateExpr error = %v", err)
	}
	want := "ANY(f IN n.Friends WHERE n.Active = $p0)"
	if got != want {
		t.Errorf("translateExpr(Any) = %q, want %q", got, want)
	}
}

func TestCountPredTranslation(t *testing.T) {
	ctx := NewContext(fakeFactory{}, fakeLabels{})
	ctx.Scope.CurrentAlias = "n"
	pred := Prop(RoleCurrent, "Age").Gt(Param(21))

	got, err := translateExpr(ctx, CountPred(pred))
	if err != nil {
		t.Fatalf("translateExpr error = %v", err)
	}
	want := "count(CASE WHEN n.Age > $p0 THEN 1 ELSE NULL END)"
	if got != want {
		t.Errorf("translateExpr(CountPred) = %q, want %q", got, want)
	}
}
