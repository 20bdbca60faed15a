package domain

import (
	"reflect"
	"testing"
)

func TestNormalizeTicker(t *testing.T) {
	cases := map[string]string{
		"BTC_USD":   "btc_usd",
		" eth_usd ": "eth_usd",
		"Btc_Usd":   "btc_usd",
		"":          "",
	}
	for in, want := range cases {
		if got := NormalizeTicker(in); got != want {
			t.Errorf("NormalizeTicker(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTickerSet(t *testing.T) {
	// дубликаты и регистр схлопываются, порядок — отсортированный
	set := NewTickerSet([]string{"ETH_USD", "btc_usd", "eth_usd", " ", ""})

	if set.Len() != 2 {
		t.Fatalf("expected 2 tickers, got %d", set.Len())
	}
	if !reflect.DeepEqual(set.Tickers(), []string{"btc_usd", "eth_usd"}) {
		t.Fatalf("unexpected tickers: %v", set.Tickers())
	}

	if !set.Contains("BTC_USD") || !set.Contains("btc_usd") {
		t.Error("membership must be case-insensitive")
	}
	if set.Contains("doge_usd") {
		t.Error("doge_usd must not be a member")
	}
}
