package presenter

// NodeKind identifies what a render node displays
type NodeKind string

const (
	NodeBanner      NodeKind = "banner"
	NodeTitle       NodeKind = "title"
	NodeAnimal      NodeKind = "animal"
	NodePlaceholder NodeKind = "placeholder"
)

// String returns the string representation of NodeKind
func (k NodeKind) String() string {
	return string(k)
}

// Node is one renderable element. Fields are populated per kind:
// banner and animal nodes carry Image and Label, title carries Text,
// the placeholder carries ID. Only animal nodes have an OnActivate handler.
type Node struct {
	Kind       NodeKind
	ID         string
	Label      string
	Image      string
	Text       string
	OnActivate func(label string)
}

// RenderTree is the ordered composite produced by Initialize:
// optional banner, title, animal nodes, placeholder.
type RenderTree struct {
	Nodes []Node
}

// Count returns the number of nodes of the given kind
func (t RenderTree) Count(kind NodeKind) int {
	n := 0
	for _, node := range t.Nodes {
		if node.Kind == kind {
			n++
		}
	}
	return n
}

// Animals returns the animal nodes in render order
func (t RenderTree) Animals() []Node {
	var animals []Node
	for _, node := range t.Nodes {
		if node.Kind == NodeAnimal {
			animals = append(animals, node)
		}
	}
	return animals
}

// Title returns the title text, or "" if the tree has no title node
func (t RenderTree) Title() string {
	for _, node := range t.Nodes {
		if node.Kind == NodeTitle {
			return node.Text
		}
	}
	return ""
}

// Banner returns the banner node and whether the tree has one
func (t RenderTree) Banner() (Node, bool) {
	for _, node := range t.Nodes {
		if node.Kind == NodeBanner {
			return node, true
		}
	}
	return Node{}, false
}
