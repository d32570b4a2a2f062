package rangeschema

import "testing"

func TestBucketActions(t *testing.T) {
	counts := map[string]int{
		"very_short": 6,
		"short":      8,
		"medium":     9,
		"big":        10,
	}

	prev := 0
	for _, bucket := range StackBuckets {
		actions := BucketActions(bucket)
		if len(actions) != counts[bucket] {
			t.Errorf("BucketActions(%q) has %d entries, want %d", bucket, len(actions), counts[bucket])
		}
		// Deeper buckets extend shallower ones, never diverge from them
		if len(actions) < prev {
			t.Errorf("bucket %q has fewer actions than a shallower bucket", bucket)
		}
		prev = len(actions)
	}

	shortActions := BucketActions("short")
	bigActions := BucketActions("big")
	for i, a := range shortActions {
		if bigActions[i] != a {
			t.Errorf("big bucket action %d = %q, want %q (prefix mismatch)", i, bigActions[i], a)
		}
	}

	if BucketActions("bottomless") != nil {
		t.Error("unknown bucket should return nil")
	}
}

func TestBucketActionsReturnsCopy(t *testing.T) {
	a := BucketActions("big")
	a[0] = "mutated"
	if BucketActions("big")[0] == "mutated" {
		t.Error("BucketActions returned shared backing storage")
	}
}

func TestSkeletonValidates(t *testing.T) {
	for _, kind := range []Kind{KindHero, KindOpponent} {
		if !Validate(kind, Skeleton(kind)) {
			t.Errorf("Skeleton(%q) does not validate against its own kind", kind)
		}
	}
}

func TestSkeletonKindsDiffer(t *testing.T) {
	// A hero payload must not pass as an opponent payload and vice versa;
	// the opponent shape carries the extra strength axis.
	if Validate(KindOpponent, Skeleton(KindHero)) {
		t.Error("hero skeleton validated as opponent")
	}
	if Validate(KindHero, Skeleton(KindOpponent)) {
		t.Error("opponent skeleton validated as hero")
	}
}

func TestSkeletonUnknownKind(t *testing.T) {
	if Skeleton(Kind("villain")) != nil {
		t.Error("Skeleton should return nil for an unknown kind")
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{
			name:   "missing stage",
			mutate: func(m map[string]any) { delete(m, "early") },
		},
		{
			name:   "extra top-level key",
			mutate: func(m map[string]any) { m["post-flop"] = map[string]any{} },
		},
		{
			name: "missing position",
			mutate: func(m map[string]any) {
				delete(m["final"].(map[string]any), "BTN")
			},
		},
		{
			name: "stage not a map",
			mutate: func(m map[string]any) {
				m["middle"] = "not a map"
			},
		},
		{
			name: "extra action in bucket",
			mutate: func(m map[string]any) {
				bucket := dig(m, "early", "UTG", "tight", "very_short")
				bucket["5bet"] = ""
			},
		},
		{
			name: "missing action in bucket",
			mutate: func(m map[string]any) {
				bucket := dig(m, "early", "UTG", "tight", "big")
				delete(bucket, "defense_vs_5bet")
			},
		},
		{
			name: "non-string leaf",
			mutate: func(m map[string]any) {
				bucket := dig(m, "late", "SB", "aggressor", "medium")
				bucket["open_raise"] = 42
			},
		},
		{
			name: "nil leaf",
			mutate: func(m map[string]any) {
				bucket := dig(m, "late", "SB", "balanced", "short")
				bucket["push_range"] = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := Skeleton(KindHero)
			tt.mutate(payload)
			if Validate(KindHero, payload) {
				t.Error("mutated payload validated, want rejection")
			}
		})
	}
}

func TestValidateEmptyAndNil(t *testing.T) {
	if Validate(KindHero, nil) {
		t.Error("nil payload validated")
	}
	if Validate(KindHero, map[string]any{}) {
		t.Error("empty payload validated")
	}
}

func TestValidateAcceptsFilledLeaves(t *testing.T) {
	payload := Skeleton(KindOpponent)
	bucket := dig(payload, "pre-bubble", "CO", "regular", "balanced", "big")
	bucket["3bet"] = "TT+, AQs+, AKo"
	if !Validate(KindOpponent, payload) {
		t.Error("payload with range notation rejected")
	}
}

// dig walks nested payload maps in tests
func dig(m map[string]any, path ...string) map[string]any {
	cur := m
	for _, k := range path {
		cur = cur[k].(map[string]any)
	}
	return cur
}
