package folio

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestQuotes_RoundTrip(t *testing.T) {
	quotes := Quotes{
		"BTC": {Symbol: "BTC", Name: "Bitcoin", Price: USD(48000.5), At: day(3)},
		"ETH": {Symbol: "ETH", Price: USD(2000), At: day(3)},
	}

	var buf bytes.Buffer
	if err := EncodeQuotes(&buf, quotes); err != nil {
		t.Fatalf("EncodeQuotes() error = %v", err)
	}

	got, err := DecodeQuotes(&buf)
	if err != nil {
		t.Fatalf("DecodeQuotes() error = %v", err)
	}

	if len(got) != len(quotes) {
		t.Fatalf("round trip quotes = %d, want %d", len(got), len(quotes))
	}
	for asset, want := range quotes {
		q, ok := got[asset]
		if !ok {
			t.Fatalf("round trip lost asset %s", asset)
		}
		if q.Symbol != want.Symbol || q.Name != want.Name {
			t.Errorf("%s identity = (%q, %q), want (%q, %q)", asset, q.Symbol, q.Name, want.Symbol, want.Name)
		}
		if !q.Price.Equal(want.Price) {
			t.Errorf("%s price = %s, want %s", asset, q.Price.value, want.Price.value)
		}
		if !q.At.Equal(want.At) {
			t.Errorf("%s at = %s, want %s", asset, q.At, want.At)
		}
	}
}

func TestEncodeQuotes_SortedByAssetID(t *testing.T) {
	quotes := Quotes{
		"ZEC": quoted("ZEC", 30),
		"ADA": quoted("ADA", 1),
		"BTC": quoted("BTC", 48000),
	}

	var buf bytes.Buffer
	if err := EncodeQuotes(&buf, quotes); err != nil {
		t.Fatalf("EncodeQuotes() error = %v", err)
	}

	out := buf.String()
	if a, b := strings.Index(out, "ADA"), strings.Index(out, "BTC"); a > b {
		t.Errorf("ADA after BTC in %s", out)
	}
	if b, z := strings.Index(out, "BTC"), strings.Index(out, "ZEC"); b > z {
		t.Errorf("BTC after ZEC in %s", out)
	}
}

func TestDecodeQuotes_RequiresAssetID(t *testing.T) {
	doc := `[{"symbol":"BTC","price":"48000","currency":"USD"}]`

	if _, err := DecodeQuotes(strings.NewReader(doc)); err == nil {
		t.Error("DecodeQuotes() accepted a record without assetId, want error")
	}
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
		want string
	}{
		{"number leaf", `{"price": 48000.5}`, "$.price", "48000.5"},
		{"string leaf", `{"data": {"last": "2000.25"}}`, "$.data.last", "2000.25"},
		{"list of one", `{"quotes": [{"p": 31.5}]}`, `$.quotes[*].p`, "31.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc any
			if err := json.Unmarshal([]byte(tt.doc), &doc); err != nil {
				t.Fatal(err)
			}
			got, err := ExtractPrice(doc, tt.path)
			if err != nil {
				t.Fatalf("ExtractPrice() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ExtractPrice() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExtractPrice_RejectsNonScalar(t *testing.T) {
	var doc any
	if err := json.Unmarshal([]byte(`{"price": {"bid": 1, "ask": 2}}`), &doc); err != nil {
		t.Fatal(err)
	}

	if _, err := ExtractPrice(doc, "$.price"); err == nil {
		t.Error("ExtractPrice() accepted an object leaf, want error")
	}
}

func TestQuotes_Prices(t *testing.T) {
	quotes := Quotes{
		"BTC": quoted("BTC", 48000),
		"ETH": quoted("ETH", 2000),
	}

	prices := quotes.Prices()
	if len(prices) != 2 {
		t.Fatalf("Prices() = %d entries, want 2", len(prices))
	}
	if !prices["BTC"].Equal(USD(48000)) {
		t.Errorf("BTC price = %s, want 48000", prices["BTC"].value)
	}
}
