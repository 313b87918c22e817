// Package assets holds the fixed catalogue of parametric 2-D mech art that
// the puzzle families draw from, plus a deterministic SVG renderer for it.
//
// The catalogues are authored at build time and never mutated. Rendering the
// same asset with the same transform always yields byte-identical output.
package assets

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Viewport is the coordinate space an asset's paths are authored in.
type Viewport struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

// VectorAsset is one immutable catalogue entry: an ordered list of closed
// path descriptions inside a viewport.
type VectorAsset struct {
	ID          string
	DisplayName string
	Viewport    Viewport
	Paths       []string
}

// Archetype is a unit archetype. LoadoutID names the entry in the loadout
// catalogue that is the correct match for this archetype.
type Archetype struct {
	VectorAsset
	LoadoutID string
}

// Transform describes how to render an asset. The zero value renders the
// asset at its default size with a black fill.
type Transform struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	// Opacity is the group opacity. Zero means fully opaque.
	Opacity float64
	// Rotate is applied in degrees about the viewport center, so all paths
	// of the asset rotate together rigidly.
	Rotate float64
	// Size is the output width in pixels. Height scales proportionally.
	// Zero means DefaultSize.
	Size int
}

// DefaultSize is the output width used when Transform.Size is zero.
const DefaultSize = 96

// Render emits a standalone SVG document for the asset.
func Render(a VectorAsset, tr Transform) string {
	return renderPaths(a, a.Paths, tr)
}

// RenderPaths emits a standalone SVG document for the first n paths of the
// asset. The rotation family uses this to show a part (e.g. head and torso)
// instead of the whole silhouette.
func RenderPaths(a VectorAsset, n int, tr Transform) string {
	if n > len(a.Paths) {
		n = len(a.Paths)
	}
	return renderPaths(a, a.Paths[:n], tr)
}

func renderPaths(a VectorAsset, paths []string, tr Transform) string {
	width := tr.Size
	if width <= 0 {
		width = DefaultSize
	}
	height := float64(width) * a.Viewport.Height / a.Viewport.Width

	fill := tr.Fill
	if fill == "" {
		fill = "#000000"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%s" viewBox="%s %s %s %s">`,
		width, num(height),
		num(a.Viewport.MinX), num(a.Viewport.MinY), num(a.Viewport.Width), num(a.Viewport.Height))

	sb.WriteString(`<g fill="` + fill + `"`)
	if tr.Stroke != "" {
		sb.WriteString(` stroke="` + tr.Stroke + `"`)
	}
	if tr.StrokeWidth > 0 {
		sb.WriteString(` stroke-width="` + num(tr.StrokeWidth) + `"`)
	}
	if tr.Opacity > 0 && tr.Opacity < 1 {
		sb.WriteString(` opacity="` + num(tr.Opacity) + `"`)
	}
	if tr.Rotate != 0 {
		cx := a.Viewport.MinX + a.Viewport.Width/2
		cy := a.Viewport.MinY + a.Viewport.Height/2
		sb.WriteString(` transform="rotate(` + num(tr.Rotate) + ` ` + num(cx) + ` ` + num(cy) + `)"`)
	}
	sb.WriteString(`>`)

	for _, p := range paths {
		sb.WriteString(`<path d="` + p + `"/>`)
	}

	sb.WriteString(`</g></svg>`)
	return sb.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Silhouettes returns the mech silhouette catalogue.
func Silhouettes() []VectorAsset {
	return slices.Clone(silhouettes)
}

// Archetypes returns the unit archetype catalogue, including each archetype's
// linked loadout id.
func Archetypes() []Archetype {
	return slices.Clone(archetypes)
}

// Loadouts returns the weapon loadout catalogue.
func Loadouts() []VectorAsset {
	return slices.Clone(loadouts)
}

// LoadoutByID looks up a loadout catalogue entry.
func LoadoutByID(id string) (VectorAsset, bool) {
	for _, l := range loadouts {
		if l.ID == id {
			return l, true
		}
	}
	return VectorAsset{}, false
}
