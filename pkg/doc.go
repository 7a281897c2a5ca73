// Package pkg provides the core libraries for treemark document rendering.
//
// # Overview
//
// Treemark turns nested data into an indented tree rendering, the kind that
// resembles a filesystem listing. The pkg directory is organized into:
//
//  1. [tree] - Node data model and the pure branch-line renderer
//  2. [source] - Loaders: JSON, YAML, and TS/JS constant extraction
//  3. [render] - Output sinks: markdown code fence, Graphviz node-link
//  4. [pipeline] - Orchestration (load → render → emit)
//  5. [errors] - Structured error codes and input validation
//
// # Quick Start
//
// Load a document and render it:
//
//	import (
//	    "treemark/pkg/render/markdown"
//	    "treemark/pkg/source"
//	    "treemark/pkg/tree"
//	)
//
//	root, _ := source.LoadJSON("messages.json")
//	lines := tree.Render("root", root, tree.Options{IndexLabels: true})
//	fmt.Println(markdown.Fence(lines))
//
// Extract a constant from TS/JS source instead:
//
//	root, _ := source.LoadConst("messages.ts", "japanese")
//	lines := tree.Render("japanese", root, tree.Options{IndexLabels: true})
//
// Or run the whole pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Source: pipeline.SourceJSON,
//	    File:   "messages.json",
//	})
//
// [tree]: https://pkg.go.dev/treemark/pkg/tree
// [source]: https://pkg.go.dev/treemark/pkg/source
// [render]: https://pkg.go.dev/treemark/pkg/render
// [pipeline]: https://pkg.go.dev/treemark/pkg/pipeline
// [errors]: https://pkg.go.dev/treemark/pkg/errors
package pkg
