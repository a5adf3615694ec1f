package proof

import "github.com/Cubix1729/fitch-proof/syntax"

// Registry is the shared set of previously proved inferences a document's
// proofs may cite through Apply (§4.H). A driver typically builds one
// Registry per document (seeded by any #import), then hands every Proof in
// that document the same Registry so each successfully verified proof
// becomes available to the ones that follow it.
type Registry struct {
	proved []*syntax.Inference
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add records goal as proved. Callers should only add a goal once its
// Proof has been verified.
func (r *Registry) Add(goal *syntax.Inference) {
	r.proved = append(r.proved, goal)
}

// Contains reports whether an inference equal to goal has already been
// added.
func (r *Registry) Contains(goal *syntax.Inference) bool {
	for _, p := range r.proved {
		if syntax.EqualsInference(p, goal) {
			return true
		}
	}
	return false
}

// All returns every inference added so far, in addition order. The
// returned slice is owned by the caller.
func (r *Registry) All() []*syntax.Inference {
	out := make([]*syntax.Inference, len(r.proved))
	copy(out, r.proved)
	return out
}
