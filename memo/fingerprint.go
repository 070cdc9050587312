package memo

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the shape of the retained storage tree: the addresses of
// every value slot and the keys of every scope, not the values themselves.
// Two storages holding the same slots and scopes fingerprint identically, so
// a host can cheaply detect whether a run changed the shape of its retained
// state. Keys are folded in through their fmt representation; keys that
// format alike are not distinguished.
func (s *Storage) Fingerprint() uint64 {
	d := xxhash.New()
	s.fingerprintNode(d, s.root)
	return d.Sum64()
}

func (s *Storage) fingerprintNode(d *xxhash.Digest, id nodeID) {
	n := s.arena.node(id)

	addrs := make([]string, 0, len(n.values))
	for addr := range n.values {
		addrs = append(addrs, addr.String())
	}
	sort.Strings(addrs)
	for _, a := range addrs {
		_, _ = d.WriteString("v:" + a + ";")
	}

	keys := make([]string, 0, len(n.scopes))
	byKey := make(map[string]nodeID, len(n.scopes))
	for key, tr := range n.scopes {
		k := fmt.Sprintf("%v", key)
		keys = append(keys, k)
		byKey[k] = tr.val
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = d.WriteString("s:" + k + "{")
		s.fingerprintNode(d, byKey[k])
		_, _ = d.WriteString("}")
	}
}
