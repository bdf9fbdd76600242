package scoring

import (
	"errors"
	"fmt"
)

// Dimension identifies one of the five trait axes. N is repurposed as
// risk aversion rather than clinical neuroticism.
type Dimension string

const (
	DimOpenness          Dimension = "O"
	DimConscientiousness Dimension = "C"
	DimExtraversion      Dimension = "E"
	DimAgreeableness     Dimension = "A"
	DimRiskAversion      Dimension = "N"
)

// ItemKind distinguishes Likert scale items from the visual slider item.
type ItemKind string

const (
	KindScale  ItemKind = "scale"
	KindVisual ItemKind = "visual"
)

// Item is one questionnaire item. Reverse items are sign-flipped before
// scoring; ControlPairID links the two halves of a consistency pair.
type Item struct {
	ID            string    `json:"id"`
	Dimension     Dimension `json:"dimension"`
	Reverse       bool      `json:"reverse"`
	ControlPairID string    `json:"control_pair_id,omitempty"`
	Kind          ItemKind  `json:"kind"`
	Prompt        string    `json:"prompt"`
}

var (
	ErrEmptyCatalog   = errors.New("catalog has no items")
	ErrInvalidCatalog = errors.New("catalog is structurally invalid")
)

// Catalog is the fixed, ordered item set. Both evaluators (API and preview
// CLI) must be built from the same catalog; it is immutable after
// construction.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

// NewCatalog validates the item list and freezes it. Validation failures are
// the only structural errors the scoring package produces.
func NewCatalog(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	byID := make(map[string]Item, len(items))
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("%w: item with empty id", ErrInvalidCatalog)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate item id %q", ErrInvalidCatalog, it.ID)
		}
		switch it.Dimension {
		case DimOpenness, DimConscientiousness, DimExtraversion, DimAgreeableness, DimRiskAversion:
		default:
			return nil, fmt.Errorf("%w: item %q has unknown dimension %q", ErrInvalidCatalog, it.ID, it.Dimension)
		}
		switch it.Kind {
		case KindScale, KindVisual:
		default:
			return nil, fmt.Errorf("%w: item %q has unknown kind %q", ErrInvalidCatalog, it.ID, it.Kind)
		}
		byID[it.ID] = it
	}

	// Control pairs must resolve and be symmetric (A->B implies B->A).
	for _, it := range items {
		if it.ControlPairID == "" {
			continue
		}
		pair, ok := byID[it.ControlPairID]
		if !ok {
			return nil, fmt.Errorf("%w: item %q pairs with missing item %q", ErrInvalidCatalog, it.ID, it.ControlPairID)
		}
		if pair.ControlPairID != it.ID {
			return nil, fmt.Errorf("%w: control pair %q/%q is not symmetric", ErrInvalidCatalog, it.ID, it.ControlPairID)
		}
	}

	frozen := make([]Item, len(items))
	copy(frozen, items)
	return &Catalog{items: frozen, byID: byID}, nil
}

// Lookup returns the item with the given id.
func (c *Catalog) Lookup(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Items returns the items in catalog order. The caller gets a copy.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int { return len(c.items) }

// defaultItems is the production questionnaire: 18 scale items across the
// five dimensions plus one visual slider item. Each dimension carries one
// reverse-phrased control pair.
var defaultItems = []Item{
	{ID: "O1", Dimension: DimOpenness, Kind: KindScale, ControlPairID: "O1b",
		Prompt: "I get excited touring homes with bold or unconventional design."},
	{ID: "O1b", Dimension: DimOpenness, Kind: KindScale, Reverse: true, ControlPairID: "O1",
		Prompt: "I prefer a home that looks like every other home on the street."},
	{ID: "O2", Dimension: DimOpenness, Kind: KindScale,
		Prompt: "Walking through a space, I immediately imagine how I would reinvent it."},
	{ID: "O3", Dimension: DimOpenness, Kind: KindScale,
		Prompt: "A neighborhood with new restaurants, galleries and oddball shops appeals to me."},
	{ID: "O4", Dimension: DimOpenness, Kind: KindScale,
		Prompt: "I would consider an unusual property, like a loft or a converted firehouse."},

	{ID: "C1", Dimension: DimConscientiousness, Kind: KindScale, ControlPairID: "C1b",
		Prompt: "I keep a detailed budget and checklist for my home search."},
	{ID: "C1b", Dimension: DimConscientiousness, Kind: KindScale, Reverse: true, ControlPairID: "C1",
		Prompt: "I tend to make big decisions on impulse."},
	{ID: "C2", Dimension: DimConscientiousness, Kind: KindScale,
		Prompt: "I research a neighborhood thoroughly before I ever book a showing."},
	{ID: "C3", Dimension: DimConscientiousness, Kind: KindScale,
		Prompt: "I read every line of a contract before signing."},

	{ID: "E1", Dimension: DimExtraversion, Kind: KindScale, ControlPairID: "E1b",
		Prompt: "I look forward to hosting friends and family in my new home."},
	{ID: "E1b", Dimension: DimExtraversion, Kind: KindScale, Reverse: true, ControlPairID: "E1",
		Prompt: "After a crowded open house I need time alone to recover."},
	{ID: "E2", Dimension: DimExtraversion, Kind: KindScale,
		Prompt: "I would rather live near the action than somewhere quiet."},

	{ID: "A1", Dimension: DimAgreeableness, Kind: KindScale, ControlPairID: "A1b",
		Prompt: "My family's needs come before my personal wish list."},
	{ID: "A1b", Dimension: DimAgreeableness, Kind: KindScale, Reverse: true, ControlPairID: "A1",
		Prompt: "I hold firm on what I want even when the people moving with me disagree."},
	{ID: "A2", Dimension: DimAgreeableness, Kind: KindScale,
		Prompt: "I would give up a feature I love to keep everyone else happy."},

	{ID: "N1", Dimension: DimRiskAversion, Kind: KindScale, ControlPairID: "N1b",
		Prompt: "I worry about overpaying or buying at the wrong moment in the market."},
	{ID: "N1b", Dimension: DimRiskAversion, Kind: KindScale, Reverse: true, ControlPairID: "N1",
		Prompt: "I stay calm even when a deal gets complicated."},
	{ID: "N2", Dimension: DimRiskAversion, Kind: KindScale,
		Prompt: "Unexpected repair costs would keep me up at night."},

	{ID: "V1", Dimension: DimOpenness, Kind: KindVisual,
		Prompt: "Slide to show how move-in ready your ideal home should be."},
}

var defaultCatalog = mustCatalog(defaultItems)

func mustCatalog(items []Item) *Catalog {
	c, err := NewCatalog(items)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog returns the shared production catalog. It is loaded once and
// never mutated, so concurrent callers may hold references freely.
func DefaultCatalog() *Catalog { return defaultCatalog }
