package domain

import (
	"sort"
	"strings"
)

// NormalizeTicker — приводит тикер к канонической форме: нижний регистр, без пробелов.
func NormalizeTicker(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TickerSet — закрытый набор допустимых тикеров (btc_usd, eth_usd, ...).
// Строится один раз из конфигурации и передаётся в сервисы.
type TickerSet struct {
	canonical []string
	members   map[string]struct{}
}

// NewTickerSet — строит набор из списка тикеров, нормализуя и убирая дубликаты.
func NewTickerSet(tickers []string) TickerSet {
	set := TickerSet{members: make(map[string]struct{}, len(tickers))}
	for _, t := range tickers {
		c := NormalizeTicker(t)
		if c == "" {
			continue
		}
		if _, ok := set.members[c]; ok {
			continue
		}
		set.members[c] = struct{}{}
		set.canonical = append(set.canonical, c)
	}
	sort.Strings(set.canonical)
	return set
}

// Contains — входит ли тикер в набор (без учёта регистра).
func (s TickerSet) Contains(ticker string) bool {
	_, ok := s.members[NormalizeTicker(ticker)]
	return ok
}

// Tickers — отсортированный список канонических тикеров.
func (s TickerSet) Tickers() []string {
	out := make([]string, len(s.canonical))
	copy(out, s.canonical)
	return out
}

func (s TickerSet) Len() int { return len(s.canonical) }
