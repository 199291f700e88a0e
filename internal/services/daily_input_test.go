package services

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestOptionalDistinguishesOmittedNullAndValue(t *testing.T) {
	t.Parallel()

	input := DailyLogInput{}
	if err := json.Unmarshal([]byte(`{"energy": 2, "nausea": null}`), &input); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !input.Energy.Present || !input.Energy.Valid || input.Energy.Value != 2 {
		t.Fatalf("expected energy to carry 2, got %+v", input.Energy)
	}
	if !input.Nausea.Present || input.Nausea.Valid {
		t.Fatalf("explicit null must be present but invalid, got %+v", input.Nausea)
	}
	if input.Appetite.Present {
		t.Fatalf("omitted field must not be present, got %+v", input.Appetite)
	}

	if pointer := input.Energy.Ptr(); pointer == nil || *pointer != 2 {
		t.Fatalf("expected pointer to 2, got %v", pointer)
	}
	if input.Nausea.Ptr() != nil {
		t.Fatalf("null field must yield nil pointer")
	}
}

func TestOptionalMarshalEmitsEveryKey(t *testing.T) {
	t.Parallel()

	input := DailyLogInput{Energy: Some(1), Fever: Some(true), TempC: Null[float64]()}
	encoded, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	for _, key := range []string{"energy", "nausea", "temp_c", "note", "is_tough_day"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("expected key %q in payload %s", key, encoded)
		}
	}
	if decoded["energy"] != float64(1) {
		t.Fatalf("unexpected energy: %v", decoded["energy"])
	}
	if decoded["nausea"] != nil || decoded["temp_c"] != nil {
		t.Fatalf("unset and null fields must encode as null: %s", encoded)
	}
}

func TestDailyLogInputValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   DailyLogInput
		wantErr bool
	}{
		{"all bounds ok", DailyLogInput{Energy: Some(4), Nausea: Some(3), Appetite: Some(5), SleepQuality: Some(3), Diarrhea: Some(3), StoolCount: Some(12)}, false},
		{"nulls skip validation", DailyLogInput{Energy: Null[int](), Diarrhea: Null[int]()}, false},
		{"energy above scale", DailyLogInput{Energy: Some(5)}, true},
		{"negative nausea", DailyLogInput{Nausea: Some(-1)}, true},
		{"negative stool count", DailyLogInput{StoolCount: Some(-2)}, true},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			err := testCase.input.Validate()
			if testCase.wantErr && !errors.Is(err, ErrDailyValueOutOfRange) {
				t.Fatalf("expected out-of-range error, got %v", err)
			}
			if !testCase.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
