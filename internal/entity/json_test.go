package entity

import (
	"reflect"
	"testing"
)

func TestJSONMapScan(t *testing.T) {
	var m JSONMap
	if err := m.Scan([]byte(`{"percentage": 91.5, "student_name": "Priya"}`)); err != nil {
		t.Fatal(err)
	}
	want := JSONMap{"percentage": 91.5, "student_name": "Priya"}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("scanned = %v", m)
	}

	if err := m.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Fatalf("nil source should clear the map, got %v", m)
	}

	if err := m.Scan(42); err == nil {
		t.Fatal("expected an error for an unsupported source type")
	}
}

func TestJSONMapValue(t *testing.T) {
	v, err := JSONMap{"gpa": 8.2}.Value()
	if err != nil {
		t.Fatal(err)
	}
	if string(v.([]byte)) != `{"gpa":8.2}` {
		t.Fatalf("value = %s", v)
	}

	nv, err := JSONMap(nil).Value()
	if err != nil {
		t.Fatal(err)
	}
	if nv != nil {
		t.Fatalf("nil map should store NULL, got %v", nv)
	}
}

func TestStringListValueNeverNull(t *testing.T) {
	v, err := StringList(nil).Value()
	if err != nil {
		t.Fatal(err)
	}
	if string(v.([]byte)) != "[]" {
		t.Fatalf("nil list = %s, want empty json array", v)
	}
}

func TestStringListRoundTrip(t *testing.T) {
	orig := StringList{"a", "b"}
	v, err := orig.Value()
	if err != nil {
		t.Fatal(err)
	}
	var back StringList
	if err := back.Scan(v); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, orig) {
		t.Fatalf("round trip = %v", back)
	}
}
