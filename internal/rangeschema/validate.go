package rangeschema

// Validate reports whether candidate matches the canonical payload shape
// for the given kind. It is a predicate, not a parser: any structural
// deviation (missing key, extra key, non-map node, non-string leaf) makes
// it return false, and the caller decides how to report that. Leaf values
// may be empty strings; the range notation itself is treated as opaque.
func Validate(kind Kind, candidate map[string]any) bool {
	if !ValidKind(kind) || candidate == nil {
		return false
	}
	if !exactKeys(candidate, Stages) {
		return false
	}
	for _, stage := range Stages {
		positions, ok := asMap(candidate[stage])
		if !ok || !exactKeys(positions, Positions) {
			return false
		}
		for _, pos := range Positions {
			node := positions[pos]
			if kind == KindOpponent {
				strengths, ok := asMap(node)
				if !ok || !exactKeys(strengths, Strengths) {
					return false
				}
				for _, str := range Strengths {
					if !validStyles(strengths[str]) {
						return false
					}
				}
			} else if !validStyles(node) {
				return false
			}
		}
	}
	return true
}

func validStyles(v any) bool {
	styles, ok := asMap(v)
	if !ok || !exactKeys(styles, PlayStyles) {
		return false
	}
	for _, style := range PlayStyles {
		buckets, ok := asMap(styles[style])
		if !ok || !exactKeys(buckets, StackBuckets) {
			return false
		}
		for _, bucket := range StackBuckets {
			actions, ok := asMap(buckets[bucket])
			if !ok || !exactKeys(actions, BucketActions(bucket)) {
				return false
			}
			for _, action := range BucketActions(bucket) {
				if _, ok := actions[action].(string); !ok {
					return false
				}
			}
		}
	}
	return true
}

// exactKeys checks that m contains exactly the given keys: none missing,
// none extra.
func exactKeys(m map[string]any, keys []string) bool {
	if len(m) != len(keys) {
		return false
	}
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}
