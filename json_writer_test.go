package finpulse

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("simple object", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("b", 1)
		w.Append("a", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"b":1,"a":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // assess that a zero value is actually added.
		w.Optional("b", "")
		w.Optional("c", 0)
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"d":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("marshal error", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 1)
		w.Append("ch", make(chan int))
		if _, err := w.MarshalJSON(); err == nil {
			t.Errorf("expected an error for an unsupported value")
		}
	})
}

func TestPosition_JSON(t *testing.T) {
	pos := Position{
		ID:           "a1",
		Symbol:       "TCS",
		BuyPrice:     M(3000),
		Quantity:     Q(10),
		CurrentPrice: M(3185.25),
		Sector:       IT,
	}
	data, err := json.Marshal(pos)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"a1","symbol":"TCS","buyPrice":3000,"quantity":10,"currentPrice":3185.25,"sector":"IT"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var got Position
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != pos.ID || got.Symbol != pos.Symbol || got.Sector != pos.Sector ||
		!got.BuyPrice.Equal(pos.BuyPrice) || !got.Quantity.Equal(pos.Quantity) || !got.CurrentPrice.Equal(pos.CurrentPrice) {
		t.Errorf("Unmarshal() = %+v, want %+v", got, pos)
	}
}

func TestEncodePositions(t *testing.T) {
	got, err := encodePositions(nil)
	if err != nil || got != "[]" {
		t.Errorf("encodePositions(nil) = %q, %v, want []", got, err)
	}

	// Full precision survives the round trip.
	pos := Position{ID: "x", Symbol: "A", BuyPrice: M(0.1), Quantity: Q(3), CurrentPrice: M(0.123456789012345), Sector: Pharma}
	payload, err := encodePositions([]Position{pos})
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := decodePositions(payload)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded[0].CurrentPrice.Equal(pos.CurrentPrice) {
		t.Errorf("CurrentPrice = %v, want %v", decoded[0].CurrentPrice, pos.CurrentPrice)
	}

	for _, payload := range []string{`[] []`, `[]]`, `[]}`, `[] x`} {
		if _, err := decodePositions(payload); err == nil {
			t.Errorf("decodePositions(%q) accepted trailing data", payload)
		}
	}
	if _, err := decodePositions("[]\n"); err != nil {
		t.Errorf("decodePositions() rejected a trailing newline: %v", err)
	}
}

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		money    Money
		currency string
		want     string
	}{
		{M(3300), "USD", "$3,300.00"},
		{M(1234.567), "USD", "$1,234.57"},
		{M(12.5), "XYZ", "12.50 XYZ"},
	}
	for _, tc := range testCases {
		if got := tc.money.Format(tc.currency); got != tc.want {
			t.Errorf("%v.Format(%q) = %q, want %q", tc.money, tc.currency, got, tc.want)
		}
	}
	if got := M(0).SignedFormat("USD"); got != "-" {
		t.Errorf("SignedFormat(0) = %q, want %q", got, "-")
	}
	if got := M(5).SignedFormat("USD"); got != "+$5.00" {
		t.Errorf("SignedFormat(5) = %q, want %q", got, "+$5.00")
	}
}
