package rangeschema

// Kind discriminates the two range-set payload shapes. Hero charts index
// stage/position/playStyle directly; opponent charts carry an extra
// opponent-strength axis between position and playStyle.
type Kind string

const (
	KindHero     Kind = "hero"
	KindOpponent Kind = "opponent"
)

// ValidKind reports whether k is a known payload kind.
func ValidKind(k Kind) bool {
	return k == KindHero || k == KindOpponent
}

// TableTypes are the supported table formats for a range set.
var TableTypes = []string{"6-max", "8-max", "cash"}

// ValidTableType reports whether t is a supported table format.
func ValidTableType(t string) bool {
	for _, v := range TableTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Axis values, outermost to innermost.
var (
	Stages     = []string{"early", "middle", "pre-bubble", "late", "pre-final", "final"}
	Positions  = []string{"UTG", "UTG+1", "MP", "HJ", "CO", "BTN", "SB", "BB"}
	Strengths  = []string{"fish", "amateur", "regular"}
	PlayStyles = []string{"tight", "balanced", "aggressor"}
)

// StackBuckets in increasing depth order. Deeper stacks allow more raising
// rounds before an all-in is forced, so each bucket's action list is a
// longer prefix of the escalation order below.
var StackBuckets = []string{"very_short", "short", "medium", "big"}

// escalationOrder lists every chart action from the first raising round to
// the last. Bucket action sets are prefixes of this list.
var escalationOrder = []string{
	"open_raise",
	"push_range",
	"call_vs_shove",
	"defense_vs_open",
	"3bet",
	"defense_vs_3bet",
	"4bet",
	"defense_vs_4bet",
	"5bet",
	"defense_vs_5bet",
}

var bucketActionCounts = map[string]int{
	"very_short": 6,
	"short":      8,
	"medium":     9,
	"big":        10,
}

// BucketActions returns the ordered action keys legal for a stack bucket.
// Unknown buckets return nil.
func BucketActions(bucket string) []string {
	n, ok := bucketActionCounts[bucket]
	if !ok {
		return nil
	}
	out := make([]string, n)
	copy(out, escalationOrder[:n])
	return out
}

// Skeleton produces the canonical empty payload for a range-set kind:
// every axis key present, every leaf an empty string ("not yet defined").
func Skeleton(kind Kind) map[string]any {
	if !ValidKind(kind) {
		return nil
	}
	root := make(map[string]any, len(Stages))
	for _, stage := range Stages {
		positions := make(map[string]any, len(Positions))
		for _, pos := range Positions {
			if kind == KindOpponent {
				strengths := make(map[string]any, len(Strengths))
				for _, str := range Strengths {
					strengths[str] = skeletonStyles()
				}
				positions[pos] = strengths
			} else {
				positions[pos] = skeletonStyles()
			}
		}
		root[stage] = positions
	}
	return root
}

func skeletonStyles() map[string]any {
	styles := make(map[string]any, len(PlayStyles))
	for _, style := range PlayStyles {
		buckets := make(map[string]any, len(StackBuckets))
		for _, bucket := range StackBuckets {
			actions := make(map[string]any, bucketActionCounts[bucket])
			for _, action := range BucketActions(bucket) {
				actions[action] = ""
			}
			buckets[bucket] = actions
		}
		styles[style] = buckets
	}
	return styles
}
