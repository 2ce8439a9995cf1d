// Package pkg provides the core libraries for seaviz SEA diagram generation.
//
// # Overview
//
// Seaviz turns lssea diagnostic logs from a VIOS (Virtual I/O Server) into
// tiered box-and-line diagrams of the Shared Ethernet Adapter wiring. The
// pkg directory is organized into five main areas:
//
//  1. [lssea] / [topology] - Log parsing and the host topology model
//  2. [diagram] - Tiered layout engine (sizing, placement, routing)
//  3. [render] - Drawing surfaces and output sinks (PNG, SVG, JSON, DOT)
//  4. [pipeline] - Orchestration (parse → layout → render) with caching
//  5. [cache] / [errors] / [observability] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through seaviz:
//
//	lssea log file(s)
//	         ↓
//	    [lssea] package (extract host topologies)
//	         ↓
//	    [topology] package (SEA sections, adapters, etherchannels)
//	         ↓
//	    [diagram] package (tier assignment, box sizing, edge routing)
//	         ↓
//	    [render] package (surfaces + sinks)
//	         ↓
//	    PNG/SVG/JSON/DOT output
//
// # Quick Start
//
// Run the full pipeline through a Runner:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Inputs:  []string{"lssea_vios1.log"},
//	    Formats: []string{"png"},
//	})
//
// Or use the pieces directly:
//
//	topo, err := lssea.ParseFile("lssea_vios1.log")
//	layout, err := diagram.Build(topo, diagram.DefaultConfig(), nil)
//	png, err := sink.RenderPNG(layout)
package pkg
