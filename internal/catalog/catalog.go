package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed elements.toml
var embeddedElements []byte

var (
	// ErrInvalidCatalog wraps every data-shape violation that makes a dataset unusable.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrNotFound is returned by Lookup when no element matches the query.
	ErrNotFound = errors.New("element not found")
)

// Position is an element's place in the table. Periods 8 and 9 are the
// lanthanide and actinide breakout rows.
type Position struct {
	Period int
	Group  int
}

// Element is one immutable record of the catalog.
type Element struct {
	AtomicNumber   int
	Symbol         string
	Name           string
	AtomicMass     string
	Category       Category
	ElectronConfig string
	Phase          Phase
	Discovered     string
	Position       Position
}

// Summary is a single-line description used by the clipboard copy and the CLI.
func (e Element) Summary() string {
	return fmt.Sprintf("%s (%s), atomic number %d, mass %s, %s, %s",
		e.Name, e.Symbol, e.AtomicNumber, e.AtomicMass, Label(e.Category), e.ElectronConfig)
}

// Catalog is the ordered, read-only element dataset.
type Catalog struct {
	elements []Element
}

type rawElement struct {
	Number     int    `toml:"number"`
	Symbol     string `toml:"symbol"`
	Name       string `toml:"name"`
	Mass       string `toml:"mass"`
	Category   string `toml:"category"`
	Config     string `toml:"config"`
	Phase      string `toml:"phase"`
	Discovered string `toml:"discovered"`
	Period     int    `toml:"period"`
	Group      int    `toml:"group"`
}

type rawCatalog struct {
	Elements []rawElement `toml:"elements"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embeddedElements)
}

// Load reads a catalog override file. An empty path returns the embedded dataset.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML dataset and checks that keys are unique.
// Records with positions outside the table are kept; placing them is the
// grid's concern.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(raw.Elements) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrInvalidCatalog)
	}

	numbers := make(map[int]struct{}, len(raw.Elements))
	symbols := make(map[string]struct{}, len(raw.Elements))
	names := make(map[string]struct{}, len(raw.Elements))

	elements := make([]Element, 0, len(raw.Elements))
	for i, r := range raw.Elements {
		el := Element{
			AtomicNumber:   r.Number,
			Symbol:         strings.TrimSpace(r.Symbol),
			Name:           strings.TrimSpace(r.Name),
			AtomicMass:     strings.TrimSpace(r.Mass),
			Category:       Category(strings.TrimSpace(r.Category)),
			ElectronConfig: strings.TrimSpace(r.Config),
			Phase:          ParsePhase(r.Phase),
			Discovered:     strings.TrimSpace(r.Discovered),
			Position:       Position{Period: r.Period, Group: r.Group},
		}
		if el.AtomicNumber <= 0 {
			return nil, fmt.Errorf("%w: entry %d has atomic number %d", ErrInvalidCatalog, i, el.AtomicNumber)
		}
		if el.Symbol == "" || el.Name == "" {
			return nil, fmt.Errorf("%w: element %d is missing a symbol or name", ErrInvalidCatalog, el.AtomicNumber)
		}
		if _, dup := numbers[el.AtomicNumber]; dup {
			return nil, fmt.Errorf("%w: duplicate atomic number %d", ErrInvalidCatalog, el.AtomicNumber)
		}
		symbolKey := strings.ToLower(el.Symbol)
		if _, dup := symbols[symbolKey]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidCatalog, el.Symbol)
		}
		nameKey := strings.ToLower(el.Name)
		if _, dup := names[nameKey]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidCatalog, el.Name)
		}
		numbers[el.AtomicNumber] = struct{}{}
		symbols[symbolKey] = struct{}{}
		names[nameKey] = struct{}{}
		elements = append(elements, el)
	}

	return &Catalog{elements: elements}, nil
}

// Elements returns a copy of the records in catalog order.
func (c *Catalog) Elements() []Element {
	if c == nil {
		return nil
	}
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// Len reports the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.elements)
}

// Lookup resolves an atomic number, a symbol or a name. Symbol and name
// matching ignore case.
func (c *Catalog) Lookup(query string) (Element, error) {
	q := strings.TrimSpace(query)
	if c == nil || q == "" {
		return Element{}, fmt.Errorf("%w: %q", ErrNotFound, query)
	}
	if n, err := strconv.Atoi(q); err == nil {
		for _, el := range c.elements {
			if el.AtomicNumber == n {
				return el, nil
			}
		}
		return Element{}, fmt.Errorf("%w: %q", ErrNotFound, query)
	}
	for _, el := range c.elements {
		if strings.EqualFold(el.Symbol, q) || strings.EqualFold(el.Name, q) {
			return el, nil
		}
	}
	return Element{}, fmt.Errorf("%w: %q", ErrNotFound, query)
}

// CountByCategory tallies records per category tag.
func (c *Catalog) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	if c == nil {
		return counts
	}
	for _, el := range c.elements {
		counts[el.Category]++
	}
	return counts
}
