// Package cache provides process-lifetime memoization for compiled message
// plans and constructed formatter handles.
//
// Unlike a general-purpose cache there is no TTL and no eviction: the key
// space is bounded by the distinct (locale, option-set) combinations an
// application actually uses, which is small and static in practice. Entries
// live until the process exits or Clear is called.
//
//	plans := cache.NewMemo[*icu.Message]()
//	msg, err := plans.GetOrCompute(cache.Key("msg", locale, template), func() (*icu.Message, error) {
//	    return icu.Compile(template)
//	})
//
// Concurrent misses for the same key are collapsed with singleflight so the
// computation runs once; redundant recomputation would be safe regardless,
// since compilation is deterministic and side-effect-free.
package cache
