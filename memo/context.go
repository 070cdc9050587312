package memo

// Context is the ephemeral execution state of one run: the storage node
// currently in scope and the position marker of the most recently evaluated
// sequencing step. One Context value is shared mutably by all steps of a
// scope; entering a child scope builds a fresh Context so the parent's marker
// is untouched.
type Context struct {
	storage *Storage
	node    nodeID
	pos     position
}
