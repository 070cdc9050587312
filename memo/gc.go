package memo

// sweep is the post-run garbage collection pass: it deletes every value slot
// and scope entry not marked used during the run, rearms the survivors' flags
// and recurses into surviving child scopes. Returns the number of deleted
// slots and scopes.
func (s *Storage) sweep() (slots, scopes int) {
	return s.sweepNode(s.root)
}

func (s *Storage) sweepNode(id nodeID) (slots, scopes int) {
	n := s.arena.node(id)
	for addr, tr := range n.values {
		if !tr.used {
			delete(n.values, addr)
			slots++
			continue
		}
		tr.used = false
	}
	for key, tr := range n.scopes {
		if !tr.used {
			s.arena.release(tr.val)
			delete(n.scopes, key)
			scopes++
			continue
		}
		tr.used = false
		childSlots, childScopes := s.sweepNode(tr.val)
		slots += childSlots
		scopes += childScopes
	}
	return slots, scopes
}

// clearFlags rearms every usage flag without deleting anything. It runs
// instead of the sweep when evaluation fails, so the next run against the
// same storage starts from a consistent, fully unmarked state with all
// previously cached values intact.
func (s *Storage) clearFlags() {
	s.clearNode(s.root)
}

func (s *Storage) clearNode(id nodeID) {
	n := s.arena.node(id)
	for _, tr := range n.values {
		tr.used = false
	}
	for _, tr := range n.scopes {
		tr.used = false
		s.clearNode(tr.val)
	}
}
