package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/jx/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("org.springframework")
	is2 := domain.NewInternedString("org.springframework")

	if is1.Value() != is2.Value() {
		t.Errorf("Expected handles to be equal for identical strings, got %v and %v", is1.Value(), is2.Value())
	}

	if is1.String() != "org.springframework" {
		t.Errorf("Expected String() to return %q, got %q", "org.springframework", is1.String())
	}

	if is1 != is2 {
		t.Error("Expected interned strings with the same value to compare equal")
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString

	if zero.String() != "" {
		t.Errorf("Expected empty string for zero value, got %q", zero.String())
	}
	if !zero.IsZero() {
		t.Error("Expected zero value to report IsZero")
	}

	data, err := json.Marshal(zero)
	if err != nil {
		t.Fatalf("Failed to marshal zero InternedString: %v", err)
	}
	if string(data) != `""` {
		t.Errorf("Expected JSON %q, got %q", `""`, string(data))
	}
}

func TestInternedStringJSON(t *testing.T) {
	type TestStruct struct {
		Group domain.InternedString `json:"group"`
	}

	original := TestStruct{Group: domain.NewInternedString("com.fasterxml.jackson.core")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal struct: %v", err)
	}

	expectedJSON := `{"group":"com.fasterxml.jackson.core"}`
	if string(data) != expectedJSON {
		t.Errorf("Expected JSON %q, got %q", expectedJSON, string(data))
	}

	var unmarshaled TestStruct
	if err := json.Unmarshal(data, &unmarshaled); err != nil {
		t.Fatalf("Failed to unmarshal struct: %v", err)
	}

	if unmarshaled.Group != original.Group {
		t.Errorf("Expected unmarshaled group %q, got %q", original.Group.String(), unmarshaled.Group.String())
	}
}
