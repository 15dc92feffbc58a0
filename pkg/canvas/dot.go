package canvas

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/kintree/pkg/layout"
	"github.com/matzehuels/kintree/pkg/tree"
)

// DOTOptions configures DOT export.
type DOTOptions struct {
	// Pinned emits computed coordinates as pos attributes with pinned
	// positions, so Graphviz keeps the layout instead of computing its
	// own. Requires rendering with the neato engine.
	Pinned bool
}

// ToDOT converts a tree and its layout to Graphviz DOT format. Spousal
// edges are drawn undirected (dir=none, dashed); parent edges point from
// parent to child. People without a position are skipped.
//
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(t *tree.Tree, result layout.Result, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph family {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	placed := make(map[string]bool, len(result.Positions))
	for _, id := range t.IDs() {
		pos, ok := result.Positions[id]
		if !ok {
			continue
		}
		placed[id] = true
		attrs := []string{fmt.Sprintf("label=%q", nodeLabel(t, id))}
		if opts.Pinned {
			// Graphviz pos units are points; y grows upward there, so
			// flip the canvas coordinate.
			attrs = append(attrs, fmt.Sprintf("pos=\"%.0f,%.0f!\"", pos.X, -pos.Y))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range t.Edges() {
		if !placed[e.From] || !placed[e.To] {
			continue
		}
		switch e.Kind {
		case tree.EdgeSpouse:
			fmt.Fprintf(&buf, "  %q -> %q [dir=none, style=dashed];\n", e.From, e.To)
		case tree.EdgeCustom:
			fmt.Fprintf(&buf, "  %q -> %q [style=dotted, label=%q];\n", e.From, e.To, e.Label)
		default:
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the viewBox starts at
// the origin, which keeps downstream embedding simple.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
