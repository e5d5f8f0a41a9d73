// Package render produces visual output for constraint graphs and page plans.
//
// # Overview
//
// This package converts constraint graphs to Graphviz DOT source and renders
// them to SVG in-process. Photos appear as rounded boxes arranged in
// precedence waves from top to bottom; pages appear as clusters when a plan
// is rendered.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := render.ToDOT(g, render.Options{})
//	svg, err := render.SVG(dot)
//
// Render a page assignment as clustered pages:
//
//	dot := render.PlanToDOT(g, plan, render.Options{})
//	svg, err := render.SVG(dot)
//
// For PDF or PNG output, convert the SVG:
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package render
