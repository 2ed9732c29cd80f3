package entity

import (
	"encoding/json"
	"testing"
)

func TestOptionalUnmarshal(t *testing.T) {
	var p struct {
		A Optional[string]  `json:"a"`
		B Optional[*string] `json:"b"`
		C Optional[int]     `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":"x","b":null}`), &p); err != nil {
		t.Fatal(err)
	}
	if !p.A.Set || p.A.Null || p.A.Value != "x" {
		t.Fatalf("a = %+v", p.A)
	}
	if !p.B.Set || !p.B.Null || p.B.Value != nil {
		t.Fatalf("b = %+v", p.B)
	}
	if p.C.Set {
		t.Fatalf("absent field reported as set: %+v", p.C)
	}
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var p struct {
		C Optional[int] `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"c":"seven"}`), &p); err == nil {
		t.Fatal("expected type error")
	}
}
