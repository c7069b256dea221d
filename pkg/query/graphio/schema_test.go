package graphio

import "testing"

func TestHasComplexPropertiesNilSchema(t *testing.T) {
	var s *EntitySchema
	if s.HasComplexProperties() {
		t.Errorf("nil schema should report HasComplexProperties() = false")
	}
}

func TestHasComplexPropertiesEmpty(t *testing.T) {
	s := &EntitySchema{Labels: []string{"Person"}}
	if s.HasComplexProperties() {
		t.Errorf("schema with no complex properties should report false")
	}
}

func TestHasComplexPropertiesPopulated(t *testing.T) {
	s := &EntitySchema{
		Labels: []string{"Person"},
		ComplexProperties: map[string]PropertyInfo{
			"employer": {Name: "employer", IsComplex: true},
		},
	}
	if !s.HasComplexProperties() {
		t.Errorf("schema with complex properties should report true")
	}
}
