// Package render draws the optimal tour found by a Coordinator run as a
// small cycle graph PNG via goccy/go-graphviz, the way the teacher pack's
// pkg/render/nodelink package renders a DAG: build a DOT string, then hand
// it to Graphviz for layout and rasterization. Purely a "show me the
// answer" companion — nothing here feeds back into the solver.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT renders path (a closed tour, path[0] == path[len(path)-1]) as a
// Graphviz DOT digraph, labeling each city with its visit order.
func ToDOT(path []int, cost int64) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tour {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("optimal tour, cost %d", cost))
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=lightyellow, fontsize=14];\n\n")

	for order, city := range path {
		if order == len(path)-1 {
			break // closing edge back to path[0], not a new node
		}
		fmt.Fprintf(&buf, "  c%d [label=%q];\n", city, fmt.Sprintf("%d\\n(#%d)", city, order))
	}

	buf.WriteString("\n")
	for i := 0; i+1 < len(path); i++ {
		fmt.Fprintf(&buf, "  c%d -> c%d;\n", path[i], path[i+1])
	}
	buf.WriteString("}\n")

	return buf.String()
}

// RenderPNG renders path as a PNG file at outPath, appending a ".png"
// extension when outPath does not already end in one.
func RenderPNG(path []int, cost int64, outPath string) error {
	dot := ToDOT(path, cost)

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("render: parse dot: %w", err)
	}
	defer g.Close()

	if !strings.HasSuffix(outPath, ".png") {
		outPath += ".png"
	}

	if err := gv.RenderFilename(ctx, g, graphviz.PNG, outPath); err != nil {
		return fmt.Errorf("render: render png: %w", err)
	}

	return nil
}
