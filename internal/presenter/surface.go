package presenter

// TextNode is a display element whose content can be replaced
type TextNode interface {
	SetText(text string)
	Text() string
}

// Surface is the host display the presenter renders into
type Surface interface {
	// Mount replaces whatever is displayed with tree
	Mount(tree RenderTree) error

	// Lookup finds a mounted text node by its identifier
	Lookup(id string) (TextNode, bool)
}
