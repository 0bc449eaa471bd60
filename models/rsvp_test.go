package models

import "testing"

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"João", "Ana"}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var out StringList
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(out) != 2 || out[0] != "João" || out[1] != "Ana" {
		t.Errorf("round trip got %v", out)
	}
}

func TestStringListNilValue(t *testing.T) {
	var l StringList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "[]" {
		t.Errorf("nil list stored as %v, want []", v)
	}
}

func TestStringListScanNil(t *testing.T) {
	var l StringList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Errorf("Scan(nil) got %v, want empty list", l)
	}
}

func TestStringListScanBytes(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["Pedro"]`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(l) != 1 || l[0] != "Pedro" {
		t.Errorf("got %v", l)
	}
}

func TestStringListScanUnsupported(t *testing.T) {
	var l StringList
	if err := l.Scan(42); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}
