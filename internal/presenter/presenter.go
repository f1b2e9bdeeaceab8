// Package presenter renders an animal dataset as a tree of clickable nodes and
// answers activations with a uniformly random fact written into a single
// placeholder node on the host surface.
package presenter

import (
	"errors"
	"fmt"
	"log"

	"github.com/ytget/animal-facts/internal/model"
)

// Defaults
const (
	DefaultTitle       = "Click an animal for a fun fact"
	DefaultBannerImage = "/images/ocean.jpg"
	DefaultBannerLabel = "ocean"

	// PlaceholderID identifies the node that shows the selected fact
	PlaceholderID = "fact"
)

// Banner describes the optional background image
type Banner struct {
	Image string
	Label string
}

// Options configures the render tree
type Options struct {
	// Title replaces the default title. Empty means unset.
	Title string
	// FallbackTitle is used when Title is unset; empty means DefaultTitle.
	FallbackTitle string
	// ShowBackground controls whether the banner node is emitted at all
	ShowBackground bool
	Banner         Banner
}

// DefaultOptions returns options with the background shown
func DefaultOptions() Options {
	return Options{
		ShowBackground: true,
		Banner: Banner{
			Image: DefaultBannerImage,
			Label: DefaultBannerLabel,
		},
	}
}

// ResolveTitle returns the title text to render
func (o Options) ResolveTitle() string {
	if o.Title != "" {
		return o.Title
	}
	if o.FallbackTitle != "" {
		return o.FallbackTitle
	}
	return DefaultTitle
}

// FactPresenter renders the dataset and handles activations
type FactPresenter struct {
	dataset *model.Dataset
	surface Surface
	opts    Options
	picker  Picker

	onFact  func(model.SelectedFact)     // called after a fact is displayed
	onError func(name string, err error) // called when an activation from the UI fails
}

// New creates a presenter. A nil picker selects a crypto-seeded one.
func New(dataset *model.Dataset, surface Surface, opts Options, picker Picker) (*FactPresenter, error) {
	if dataset == nil {
		return nil, errors.New("presenter: nil dataset")
	}
	if surface == nil {
		return nil, errors.New("presenter: nil surface")
	}
	if picker == nil {
		p, err := NewRandomPicker()
		if err != nil {
			return nil, fmt.Errorf("presenter: %w", err)
		}
		picker = p
	}
	if opts.Banner.Image == "" {
		opts.Banner.Image = DefaultBannerImage
	}
	if opts.Banner.Label == "" {
		opts.Banner.Label = DefaultBannerLabel
	}

	return &FactPresenter{
		dataset: dataset,
		surface: surface,
		opts:    opts,
		picker:  picker,
	}, nil
}

// SetCallbacks sets the observers for displayed facts and failed activations
func (p *FactPresenter) SetCallbacks(onFact func(model.SelectedFact), onError func(name string, err error)) {
	p.onFact = onFact
	p.onError = onError
}

// Options returns the effective options
func (p *FactPresenter) Options() Options {
	return p.opts
}

// Dataset returns the dataset the presenter reads from
func (p *FactPresenter) Dataset() *model.Dataset {
	return p.dataset
}

// Build produces the render tree without mounting it
func (p *FactPresenter) Build() RenderTree {
	nodes := make([]Node, 0, p.dataset.Len()+3)

	if p.opts.ShowBackground {
		nodes = append(nodes, Node{
			Kind:  NodeBanner,
			Label: p.opts.Banner.Label,
			Image: p.opts.Banner.Image,
		})
	}

	nodes = append(nodes, Node{
		Kind: NodeTitle,
		Text: p.opts.ResolveTitle(),
	})

	handler := p.Handler()
	for _, entry := range p.dataset.Entries() {
		nodes = append(nodes, Node{
			Kind:       NodeAnimal,
			ID:         entry.Name,
			Label:      entry.Name,
			Image:      entry.Image,
			OnActivate: handler,
		})
	}

	nodes = append(nodes, Node{
		Kind: NodePlaceholder,
		ID:   PlaceholderID,
	})

	return RenderTree{Nodes: nodes}
}

// Initialize builds the render tree and mounts it on the surface
func (p *FactPresenter) Initialize() (RenderTree, error) {
	tree := p.Build()
	if err := p.surface.Mount(tree); err != nil {
		return RenderTree{}, fmt.Errorf("mount render tree: %w", err)
	}

	log.Printf("Rendered %d animals (background=%v, title=%q)", p.dataset.Len(), p.opts.ShowBackground, tree.Title())
	return tree, nil
}

// Activate selects a random fact for name and writes it into the placeholder.
// On error the placeholder keeps its previous content.
func (p *FactPresenter) Activate(name string) (model.SelectedFact, error) {
	entry, err := p.dataset.Lookup(name)
	if err != nil {
		return model.SelectedFact{}, fmt.Errorf("activate: %w", err)
	}
	if !entry.HasFacts() {
		return model.SelectedFact{}, fmt.Errorf("activate: %w: %s", model.ErrNoFactsAvailable, name)
	}

	node, found := p.surface.Lookup(PlaceholderID)
	if !found {
		return model.SelectedFact{}, fmt.Errorf("activate: %w: %s", model.ErrPlaceholderMissing, PlaceholderID)
	}

	index := p.picker.IntN(len(entry.Facts))
	text, err := entry.Fact(index)
	if err != nil {
		return model.SelectedFact{}, fmt.Errorf("activate: %w", err)
	}

	node.SetText(text)

	fact := model.NewSelectedFact(name, index, text)
	if p.onFact != nil {
		p.onFact(fact)
	}
	return fact, nil
}

// Handler returns the activation handler shared by all animal nodes.
// It dispatches on the node label and reports failures through the error callback.
func (p *FactPresenter) Handler() func(label string) {
	return func(label string) {
		fact, err := p.Activate(label)
		if err != nil {
			if model.IsActivationError(err) {
				log.Printf("Activation rejected for %q: %v", label, err)
			} else {
				log.Printf("Activation failed for %q: %v", label, err)
			}
			if p.onError != nil {
				p.onError(label, err)
			}
			return
		}
		log.Printf("Fact %s for %s: index=%d", fact.ID, fact.Animal, fact.Index)
	}
}
