// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/cassowary/layout"
	"github.com/katalvlaran/cassowary/layoutlog"
)

// frameDoc is one widget's solved geometry, printed by its document id.
type frameDoc struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

func main() {
	in := flag.String("in", "", "layout description JSON file (required)")
	out := flag.String("out", "", "output file for solved frames JSON (default stdout)")
	verbose := flag.Bool("v", false, "log layout pass diagnostics to stderr")
	flag.Parse()

	if *in == "" {
		log.Fatal("-in is required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read %s: %v", *in, err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		log.Fatal(err)
	}

	arena, ids, err := build(doc)
	if err != nil {
		log.Fatal(err)
	}

	opts := []layout.Option{}
	if *verbose {
		opts = append(opts, layout.WithLogger(layoutlog.Default()))
	}
	if len(doc.Optimizations) > 0 {
		mask, err := parseOptimizations(doc.Optimizations)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, layout.WithOptimizations(mask))
	}

	container := layout.NewContainer(arena, opts...)
	if err := container.Layout(context.Background()); err != nil {
		log.Fatalf("layout: %v", err)
	}

	frames := make(map[string]frameDoc, len(ids))
	for name, id := range ids {
		if name == "" {
			continue // synthetic root entry, not part of the document's widget list
		}
		l, t, r, b, ok := arena.Widget(id).Frame()
		if !ok {
			continue
		}
		frames[name] = frameDoc{Left: l, Top: t, Right: r, Bottom: b}
	}

	encoded, err := json.MarshalIndent(frames, "", "  ")
	if err != nil {
		log.Fatalf("encode frames: %v", err)
	}

	if *out == "" {
		fmt.Println(string(encoded))
		return
	}
	if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}
