package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/abelbrown/sentiscope/internal/sentiment"
)

func runClassify() {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	showClean := fs.Bool("clean", false, "Print the cleaned text the score was computed on")
	fs.Parse(os.Args[1:])

	if fs.NArg() > 0 {
		printClassified(strings.Join(fs.Args(), " "), *showClean)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		printClassified(line, *showClean)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printClassified(text string, showClean bool) {
	score, label := sentiment.Classify(text)
	fmt.Printf("%-8s %+.3f  %s\n", label, score, truncate(text, 80))
	if showClean {
		fmt.Printf("         clean: %s\n", sentiment.Clean(text))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
