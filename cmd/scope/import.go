package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/abelbrown/sentiscope/internal/corpus"
)

func runImport() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	dbPath := fs.String("db", "", "Corpus database (default from config)")
	subreddit := fs.String("subreddit", "", "Subreddit for records that carry none")
	batchSize := fs.Int("batch-size", 500, "Comments per transaction")
	fs.Parse(os.Args[1:])

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: scope import [-db path] [-subreddit name] <file>... (use - for stdin)")
		os.Exit(1)
	}

	st, path := openCorpus(*dbPath)
	defer st.Close()
	fmt.Printf("Corpus: %s\n", path)

	total, added := 0, 0
	for _, name := range fs.Args() {
		comments, err := readCommentsFile(name)
		if err != nil {
			log.Fatalf("read %s: %v", name, err)
		}
		for i := range comments {
			if comments[i].Subreddit == "" {
				comments[i].Subreddit = *subreddit
			}
		}

		n, err := saveBatches(st, comments, *batchSize)
		if err != nil {
			log.Fatalf("import %s: %v", name, err)
		}
		fmt.Printf("  %-40s %6d read, %6d new\n", name, len(comments), n)
		total += len(comments)
		added += n
	}
	fmt.Printf("\nImported %d new comments (%d read, %d skipped as duplicate or empty).\n", added, total, total-added)
}

func readCommentsFile(name string) ([]corpus.Comment, error) {
	if name == "-" {
		return readComments(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readComments(f)
}

// readComments accepts either a JSON array of comments or one comment
// object per line.
func readComments(r io.Reader) ([]corpus.Comment, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if first == '[' {
		var out []corpus.Comment
		if err := json.NewDecoder(br).Decode(&out); err != nil {
			return nil, fmt.Errorf("decode array: %w", err)
		}
		return out, nil
	}

	var out []corpus.Comment
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var c corpus.Comment
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, c)
	}
	return out, scanner.Err()
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

func saveBatches(st *corpus.Store, comments []corpus.Comment, size int) (int, error) {
	if size <= 0 {
		size = len(comments)
	}
	added := 0
	for start := 0; start < len(comments); start += size {
		end := min(start+size, len(comments))
		n, err := st.SaveComments(comments[start:end])
		if err != nil {
			return added, err
		}
		added += n
	}
	return added, nil
}
