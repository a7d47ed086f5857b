//go:build ignore

// Package main generates a synthetic notes vault for benchmarking.
// Usage: go run scripts/generate-test-vault.go -files 1000 -output testdata/bench
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

var (
	numFiles  = flag.Int("files", 1000, "Number of files to generate")
	outputDir = flag.String("output", "testdata/bench", "Output directory")
	seed      = flag.Int64("seed", 42, "Random seed for reproducibility")
)

var topics = []string{
	"project", "meeting", "retro", "roadmap", "launch", "budget",
	"research", "draft", "journal", "reading", "ideas", "checklist",
}

var folders = []string{
	"", "daily", "projects", "projects/archive", "reference", "inbox",
}

var sentences = []string{
	"The %s discussion moved faster than expected and we agreed on the %s approach.",
	"Still waiting on feedback about the %s before the %s review.",
	"Key takeaway: the %s depends entirely on how the %s lands next week.",
	"Collected links and quotes about %s, mostly relevant to the %s effort.",
	"Open question for the %s: does the %s cover the edge cases?",
}

func main() {
	flag.Parse()
	rng := rand.New(rand.NewSource(*seed))

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < *numFiles; i++ {
		if err := writeNote(rng, i); err != nil {
			fmt.Fprintf(os.Stderr, "write note %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Generated %d files in %s\n", *numFiles, *outputDir)
}

func writeNote(rng *rand.Rand, i int) error {
	topic := topics[rng.Intn(len(topics))]
	folder := folders[rng.Intn(len(folders))]
	ext := "md"
	if rng.Intn(5) == 0 {
		ext = "txt"
	}

	name := fmt.Sprintf("%s-%03d.%s", topic, i, ext)
	path := filepath.Join(*outputDir, folder, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var b strings.Builder
	if ext == "md" {
		fmt.Fprintf(&b, "# %s %03d\n\n", strings.Title(topic), i)
	}
	paragraphs := 2 + rng.Intn(8)
	for p := 0; p < paragraphs; p++ {
		tmpl := sentences[rng.Intn(len(sentences))]
		fmt.Fprintf(&b, tmpl, topics[rng.Intn(len(topics))], topics[rng.Intn(len(topics))])
		b.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
