package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/abelbrown/sentiscope/internal/analysis"
	"github.com/abelbrown/sentiscope/internal/dataset"
)

func runStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	dbPath := fs.String("db", "", "Corpus database (default from config)")
	analyze := fs.Bool("analyze", false, "Include the sentiment split per timeframe")
	fs.Parse(os.Args[1:])

	st, path := openCorpus(*dbPath)
	defer st.Close()
	ctx := context.Background()

	counts, err := st.Counts(ctx)
	if err != nil {
		log.Fatalf("failed to count comments: %v", err)
	}

	names := make([]string, 0, len(counts))
	total := 0
	for name, n := range counts {
		names = append(names, name)
		total += n
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Printf("Corpus:        %s\n", path)
	fmt.Printf("Comments:      %d\n", total)
	fmt.Printf("Subreddits:    %d\n\n", len(names))
	for _, name := range names {
		fmt.Printf("  r/%-30s %d\n", name, counts[name])
	}

	if !*analyze {
		return
	}

	fmt.Println()
	fmt.Println("=== Sentiment (positive/negative/neutral %) ===")
	lex := analysis.NewLexicon(st, 0)
	for _, name := range names {
		tables, err := analysis.Fetch(ctx, lex, name)
		if err != nil {
			fmt.Printf("  r/%-30s %v\n", name, err)
			continue
		}
		fmt.Printf("  r/%-30s", name)
		for _, tf := range dataset.Timeframes() {
			s := tables.Snapshot(tf)
			fmt.Printf("  %s %3d/%3d/%3d", tf, s.Value(dataset.Positive), s.Value(dataset.Negative), s.Value(dataset.Neutral))
		}
		fmt.Println()
	}
}
