// Command scope is the sentiscope maintenance CLI.
//
// Usage:
//
//	scope                       Show help
//	scope import <file>...      Load comments into the corpus
//	scope stats                 Corpus size per subreddit
//	scope stats -analyze        ... plus the sentiment split per timeframe
//	scope classify [text]       Score text (or stdin lines) with the lexicon
//	scope events                JSONL event log viewer
package main

import (
	"fmt"
	"os"
)

const usage = `scope - sentiscope corpus & debug CLI

Usage:
  scope <command> [flags]

Commands:
  import      Load comments (JSON array or JSON lines) into the corpus
  stats       Corpus size per subreddit, optionally with sentiment split
  classify    Score text with the lexicon classifier
  events      JSONL event log viewer

Environment:
  SENTISCOPE_CORPUS  Corpus database path (default: ~/.sentiscope/corpus.db)

Run 'scope <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name so flag sets see only their flags.
	os.Args = os.Args[1:]

	switch cmd {
	case "import":
		runImport()
	case "stats":
		runStats()
	case "classify":
		runClassify()
	case "events":
		runEvents()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "scope: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
