/*
Package iteratable provides the structhash-based content keying used to
dedup state sets: NFA-state subsets during subset construction
(dfa/subset.go), leaf-position sets during direct construction
(regextree/leafset.go). A value's Key is independent of how it was built, so
two sets reached by different paths but equal in content collapse onto the
same map entry.
*/
package iteratable

import "github.com/cnf/structhash"

// Key returns the canonical structhash-based key x would be stored under in
// a content-keyed map. Callers render their set as a stable-ordered slice
// (sorted member indices, for instance) before calling Key, since map
// iteration order is not stable and would make equal sets hash unequally.
func Key(x interface{}) string {
	return string(structhash.Dump(x, 1))
}
