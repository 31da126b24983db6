package roi

import (
	"fmt"

	"roimark/internal/config"
	"roimark/internal/selection"
)

// Definition describes one region of interest. The two concrete variants,
// Distal and Proximal, carry differently-shaped offset parameters and their
// own range formula; the sealed method keeps the set closed so the formulas
// cannot be cross-applied.
type Definition interface {
	// Label returns the region name, which doubles as its output subfolder.
	Label() string
	// Anchor names the junction the region is measured from.
	Anchor() string
	// Compute derives the half-open slice range for the given selection.
	Compute(sel selection.Selection) Range

	sealed()
}

// Distal is a region counted forward from the distal junction: Skip slices
// are passed over after the junction, then Copy slices are taken.
type Distal struct {
	Name string
	Skip int
	Copy int
}

func (d Distal) Label() string  { return d.Name }
func (d Distal) Anchor() string { return config.AnchorDistal }

func (d Distal) Compute(sel selection.Selection) Range {
	start := sel.Distal + d.Skip + 1
	return Range{Start: start, End: start + d.Copy}
}

func (Distal) sealed() {}

// Proximal is a region counted backward from the proximal junction: the range
// ends Skip slices before the junction (inclusive of it when Skip is 0) and
// extends Count slices back.
type Proximal struct {
	Name  string
	Skip  int
	Count int
}

func (p Proximal) Label() string  { return p.Name }
func (p Proximal) Anchor() string { return config.AnchorProximal }

func (p Proximal) Compute(sel selection.Selection) Range {
	end := sel.Proximal + 1 - p.Skip
	return Range{Start: end - p.Count, End: end}
}

func (Proximal) sealed() {}

// FromConfig converts validated configuration entries into definitions,
// preserving their declared order.
func FromConfig(entries []config.ROI) ([]Definition, error) {
	defs := make([]Definition, 0, len(entries))
	for _, entry := range entries {
		switch entry.Anchor {
		case config.AnchorDistal:
			defs = append(defs, Distal{Name: entry.Name, Skip: entry.Skip, Copy: entry.Copy})
		case config.AnchorProximal:
			defs = append(defs, Proximal{Name: entry.Name, Skip: entry.Skip, Count: entry.Count})
		default:
			return nil, fmt.Errorf("roi %q: unknown anchor %q", entry.Name, entry.Anchor)
		}
	}
	return defs, nil
}
