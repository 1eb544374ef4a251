package normalize

import (
	"net"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"
)

// UnknownStore is the canonical name for listings whose store cannot be resolved.
const UnknownStore = "Unknown"

// Canonical store display names.
const (
	StoreAmazon       = "Amazon"
	StoreCoolmod      = "Coolmod"
	StoreStradivarius = "Stradivarius"
	StoreUlanka       = "Ulanka"
	StoreWestwing     = "Westwing"
)

// storeAliases maps lowercase store labels and scraper categories to the
// canonical store. The Amazon scraper files its rows under "bestseller".
var storeAliases = map[string]string{
	"amazon":       StoreAmazon,
	"bestseller":   StoreAmazon,
	"coolmod":      StoreCoolmod,
	"stradivarius": StoreStradivarius,
	"ulanka":       StoreUlanka,
	"westwing":     StoreWestwing,
}

var knownStores = map[string]struct{}{
	StoreAmazon:       {},
	StoreCoolmod:      {},
	StoreStradivarius: {},
	StoreUlanka:       {},
	StoreWestwing:     {},
}

// KnownStores lists the canonical stores in display order.
func KnownStores() []string {
	return []string{StoreAmazon, StoreCoolmod, StoreStradivarius, StoreUlanka, StoreWestwing}
}

// NormalizeStoreName maps a raw store label to its canonical name, or UnknownStore.
func NormalizeStoreName(raw string) string {
	if store := lookupAlias(raw); store != "" {
		return store
	}
	return UnknownStore
}

// StoreFromCategory resolves a store from a scraper category. It returns ""
// rather than UnknownStore so callers can tell "no signal" from a resolved name.
func StoreFromCategory(category string) string {
	return lookupAlias(category)
}

// IsKnownStore reports whether store is one of the canonical store names.
func IsKnownStore(store string) bool {
	_, ok := knownStores[store]
	return ok
}

// DeriveStoreName guesses a store name from a page URL: the registrable domain
// label with its first letter upper-cased ("https://www.amazon.es/x" gives
// "Amazon"). Returns UnknownStore for empty or malformed URLs and bare IPs.
func DeriveStoreName(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return UnknownStore
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return UnknownStore
	}

	host := strings.ToLower(u.Hostname())
	if host == "" || net.ParseIP(host) != nil {
		return UnknownStore
	}
	host = strings.TrimPrefix(host, "www.")

	domain := host
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		domain = etld1
	}

	label, _, _ := strings.Cut(domain, ".")
	if label == "" {
		return UnknownStore
	}

	first, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(first)) + label[size:]
}

func lookupAlias(raw string) string {
	return storeAliases[strings.ToLower(strings.TrimSpace(raw))]
}
