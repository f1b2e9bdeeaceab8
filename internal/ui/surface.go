package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/animal-facts/internal/model"
	"github.com/ytget/animal-facts/internal/presenter"
)

// labelNode adapts a widget.Label to presenter.TextNode
type labelNode struct {
	label *widget.Label
}

func (n labelNode) SetText(text string) { n.label.SetText(text) }
func (n labelNode) Text() string        { return n.label.Text }

// FyneSurface renders a presenter.RenderTree into Fyne canvas objects.
// Each Mount replaces the previous content and registry.
type FyneSurface struct {
	baseDir string
	mobile  *MobileUI
	onMount func(fyne.CanvasObject)

	content    fyne.CanvasObject
	banner     fyne.CanvasObject
	title      *widget.Label
	tiles      []*AnimalTile
	textNodes  map[string]*widget.Label
	mountCount int
}

// NewFyneSurface creates a surface resolving images against baseDir.
// onMount receives the built content every time a tree is mounted.
func NewFyneSurface(baseDir string, onMount func(fyne.CanvasObject)) *FyneSurface {
	return &FyneSurface{
		baseDir:   baseDir,
		mobile:    NewMobileUI(),
		onMount:   onMount,
		textNodes: make(map[string]*widget.Label),
	}
}

// Mount implements presenter.Surface
func (s *FyneSurface) Mount(tree presenter.RenderTree) error {
	var (
		header    []fyne.CanvasObject
		tiles     []fyne.CanvasObject
		fact      *widget.Label
		banner    fyne.CanvasObject
		title     *widget.Label
		animals   []*AnimalTile
		textNodes = make(map[string]*widget.Label)
	)

	for _, node := range tree.Nodes {
		switch node.Kind {
		case presenter.NodeBanner:
			banner = newBannerObject(s.baseDir, node.Image)
			header = append(header, banner)
		case presenter.NodeTitle:
			title = widget.NewLabelWithStyle(node.Text, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
			title.SizeName = theme.SizeNameHeadingText
			header = append(header, title)
		case presenter.NodeAnimal:
			res, _ := loadImage(s.baseDir, node.Image)
			tile := NewAnimalTile(node.Label, model.AnimalEntry{Name: node.Label}.GetDisplayName(), res, node.OnActivate)
			animals = append(animals, tile)
			tiles = append(tiles, tile)
		case presenter.NodePlaceholder:
			if _, exists := textNodes[node.ID]; exists {
				return fmt.Errorf("duplicate text node id: %s", node.ID)
			}
			fact = widget.NewLabel(node.Text)
			fact.Alignment = fyne.TextAlignCenter
			fact.Wrapping = fyne.TextWrapWord
			textNodes[node.ID] = fact
		default:
			return fmt.Errorf("unsupported node kind: %s", node.Kind)
		}
	}

	body := []fyne.CanvasObject{}
	body = append(body, header...)
	if len(tiles) > 0 {
		body = append(body, s.mobile.CreateAnimalGrid(tiles...))
	}
	if fact != nil {
		body = append(body, widget.NewSeparator(), fact)
	}

	s.content = container.NewVBox(body...)
	s.banner = banner
	s.title = title
	s.tiles = animals
	s.textNodes = textNodes
	s.mountCount++

	if s.onMount != nil {
		s.onMount(s.content)
	}
	return nil
}

// Lookup implements presenter.Surface
func (s *FyneSurface) Lookup(id string) (presenter.TextNode, bool) {
	label, exists := s.textNodes[id]
	if !exists {
		return nil, false
	}
	return labelNode{label: label}, true
}

// Content returns the most recently mounted content
func (s *FyneSurface) Content() fyne.CanvasObject {
	return s.content
}

// Banner returns the banner object, nil when the tree had none
func (s *FyneSurface) Banner() fyne.CanvasObject {
	return s.banner
}

// TitleText returns the rendered title
func (s *FyneSurface) TitleText() string {
	if s.title == nil {
		return ""
	}
	return s.title.Text
}

// Tiles returns the animal tiles in render order
func (s *FyneSurface) Tiles() []*AnimalTile {
	return s.tiles
}

// Tile returns the tile for an animal label
func (s *FyneSurface) Tile(label string) (*AnimalTile, bool) {
	for _, tile := range s.tiles {
		if tile.Label() == label {
			return tile, true
		}
	}
	return nil, false
}

// FactText returns the placeholder content
func (s *FyneSurface) FactText() string {
	if node, ok := s.Lookup(presenter.PlaceholderID); ok {
		return node.Text()
	}
	return ""
}

// MountCount returns how many trees have been mounted
func (s *FyneSurface) MountCount() int {
	return s.mountCount
}
