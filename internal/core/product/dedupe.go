package product

// Dedupe drops every product whose identity key was already seen earlier in the
// slice. Order is preserved and the input is left untouched.
func Dedupe(products []Product) []Product {
	seen := make(map[IdentityKey]struct{}, len(products))
	out := make([]Product, 0, len(products))

	for _, p := range products {
		key := p.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}

	return out
}
