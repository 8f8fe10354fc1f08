package topics

// CuratedResource is a hand-picked reference shipped with the catalog.
type CuratedResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// Node is one data-science concept in the catalog. Tier 1 is the broadest
// grouping, tier 3 the most specific. The catalog is compiled in and never
// mutated at runtime.
type Node struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Tier        int               `json:"tier"`
	Color       string            `json:"color,omitempty"`
	Resources   []CuratedResource `json:"resources"`
}

// Link is a parent-to-child relation between nodes (source tier < target tier).
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// NodeRef is the reduced shape handed out as the tag vocabulary.
type NodeRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tier  int    `json:"tier"`
}

var byID = func() map[string]Node {
	m := make(map[string]Node, len(Nodes))
	for _, n := range Nodes {
		m[n.ID] = n
	}
	return m
}()

// ByID looks up a node.
func ByID(id string) (Node, bool) {
	n, ok := byID[id]
	return n, ok
}

// ByTier returns the catalog nodes of one tier, in catalog order.
func ByTier(tier int) []NodeRef {
	var refs []NodeRef
	for _, n := range Nodes {
		if n.Tier == tier {
			refs = append(refs, NodeRef{ID: n.ID, Title: n.Title, Tier: n.Tier})
		}
	}
	return refs
}

// All returns the reduced catalog in order.
func All() []NodeRef {
	refs := make([]NodeRef, 0, len(Nodes))
	for _, n := range Nodes {
		refs = append(refs, NodeRef{ID: n.ID, Title: n.Title, Tier: n.Tier})
	}
	return refs
}

// TitleOr resolves a tag id to the node title, or returns the id verbatim
// when it isn't in the catalog. Unknown tags are never an error.
func TitleOr(id string) string {
	if n, ok := byID[id]; ok {
		return n.Title
	}
	return id
}
