// Package inference derives business facts from an extraction result. Each
// estimator is a pure function structured as an ordered cascade of fallback
// tiers: the first tier that recognizes a usable signal wins, values are never
// averaged across tiers, and when every tier fails the documented default is
// returned. No estimator errors or panics; input shapes an estimator does not
// recognize simply count as "no signal".
package inference

// tier is one prioritized alternative within an estimator. run reports
// whether the tier found a usable signal along with the value it computed.
type tier[T any] struct {
	name string
	run  func() (T, bool)
}

// firstHit evaluates tiers in order and returns the first successful value,
// or fallback when no tier applies. Keeping the tiers as an explicit ordered
// list lets new fallbacks slot in without disturbing the priority of the
// existing ones.
func firstHit[T any](tiers []tier[T], fallback T) T {
	for _, t := range tiers {
		if v, ok := t.run(); ok {
			return v
		}
	}
	return fallback
}
