package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ameya/pathserve/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		nodes       = flag.Int("nodes", cfg.NumNodes, "number of nodes to generate")
		maxDegree   = flag.Int("max-degree", cfg.MaxOutDegree, "maximum random outgoing edges per node")
		maxWeight   = flag.Float64("max-weight", cfg.MaxWeight, "maximum edge weight")
		edgeList    = flag.Bool("edge-list", false, "emit edge-list entries instead of weight mappings")
		seed        = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		outputDir   = flag.String("output-dir", "data", "directory to write graph.json")
		writeStdout = flag.Bool("stdout", false, "write the dataset to stdout instead of a file")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumNodes:     *nodes,
		MaxOutDegree: *maxDegree,
		MaxWeight:    *maxWeight,
		EdgeListForm: *edgeList,
		Seed:         *seed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(genCfg)
	dataset, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *writeStdout {
		if err := json.NewEncoder(os.Stdout).Encode(dataset); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write dataset to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteDataset(dataset, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d nodes into %s\n", len(dataset), *outputDir)
}
