package types

import (
	"encoding/json"
	"testing"
)

// TestFlexInt tests numeric and string decoding
func TestFlexInt(t *testing.T) {
	var v struct {
		Order FlexInt `json:"order"`
	}

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{`{"order":5}`, 5, false},
		{`{"order":"7"}`, 7, false},
		{`{"order":" 12 "}`, 12, false},
		{`{"order":""}`, 0, false},
		{`{"order":"first"}`, 0, true},
		{`{"order":true}`, 0, true},
	}

	for _, tt := range tests {
		v.Order = 0
		err := json.Unmarshal([]byte(tt.raw), &v)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.raw, err)
			continue
		}
		if v.Order.Int() != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.raw, tt.want, v.Order.Int())
		}
	}
}

// TestFlexStrings tests single string and array decoding
func TestFlexStrings(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{`"https://img/1.jpg"`, []string{"https://img/1.jpg"}},
		{`["a", " b ", "", "  "]`, []string{"a", "b"}},
		{`[]`, []string{}},
		{`"   "`, []string{}},
	}

	for _, tt := range tests {
		var f FlexStrings
		if err := json.Unmarshal([]byte(tt.raw), &f); err != nil {
			t.Fatalf("%s: unexpected error %v", tt.raw, err)
		}
		got := f.Slice()
		if len(got) != len(tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.raw, tt.want, got)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: expected %v, got %v", tt.raw, tt.want, got)
			}
		}
	}

	var f FlexStrings
	if err := json.Unmarshal([]byte(`null`), &f); err != nil || f != nil {
		t.Errorf("Expected null to decode as nil, got %v (%v)", f, err)
	}
	if err := json.Unmarshal([]byte(`42`), &f); err == nil {
		t.Error("Expected a number to be rejected")
	}
}

// TestLooseNumber tests the blank and non-numeric cases
func TestLooseNumber(t *testing.T) {
	type payload struct {
		BHK LooseNumber `json:"bhk"`
	}

	tests := []struct {
		raw     string
		present bool
		valid   bool
		value   float64
	}{
		{`{}`, false, false, 0},
		{`{"bhk":null}`, true, false, 0},
		{`{"bhk":""}`, true, false, 0},
		{`{"bhk":"three"}`, true, false, 0},
		{`{"bhk":"3"}`, true, true, 3},
		{`{"bhk":4.5}`, true, true, 4.5},
		{`{"bhk":" 2 "}`, true, true, 2},
	}

	for _, tt := range tests {
		var p payload
		if err := json.Unmarshal([]byte(tt.raw), &p); err != nil {
			t.Fatalf("%s: unexpected error %v", tt.raw, err)
		}
		if p.BHK.Present != tt.present || p.BHK.Valid != tt.valid || p.BHK.Value != tt.value {
			t.Errorf("%s: expected present=%v valid=%v value=%v, got %+v", tt.raw, tt.present, tt.valid, tt.value, p.BHK)
		}
		if !tt.valid && (p.BHK.Float() != nil || p.BHK.Int() != nil) {
			t.Errorf("%s: expected nil pointers without a value", tt.raw)
		}
	}

	n := LooseNumber{Present: true, Valid: true, Value: 3.9}
	if *n.Int() != 3 || *n.Float() != 3.9 {
		t.Errorf("Unexpected conversions %d/%v", *n.Int(), *n.Float())
	}
}

// TestCustomError tests kind checks through wrapping
func TestCustomError(t *testing.T) {
	err := error(NewNotFoundError("listing", "abc"))
	wrapped := wrap{err}

	if !IsKind(wrapped, KindNotFound) {
		t.Error("Expected wrapped error to keep its kind")
	}
	ce, ok := AsCustomError(wrapped)
	if !ok || ce.Code != 404 || ce.Type != "listing.notFound" {
		t.Errorf("Unexpected error %+v", ce)
	}
	if ce.Message != "listing 'abc' not found" {
		t.Errorf("Unexpected message %s", ce.Message)
	}

	if v := NewValidationError("phone", "Valid phone number is required"); v.Field != "phone" || v.Type != "validation.phone" || v.Code != 400 {
		t.Errorf("Unexpected validation error %+v", v)
	}
	if IsKind(nil, KindConflict) {
		t.Error("Expected nil to be no kind")
	}
}

type wrap struct{ err error }

func (w wrap) Error() string { return "wrapped: " + w.err.Error() }
func (w wrap) Unwrap() error { return w.err }
