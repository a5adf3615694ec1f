package driver

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Cubix1729/fitch-proof/proof"
)

// maxConcurrentReads bounds how many files the import resolver reads at
// once; it is a constant rather than a flag since it only trades disk
// parallelism for memory, never changes verification results.
const maxConcurrentReads = 8

// FileReader abstracts reading a named file's contents, so the import
// resolver can be exercised against an in-memory fixture in tests
// without touching the filesystem.
type FileReader interface {
	ReadFile(path string) (string, error)
}

// OSReader reads files from the local filesystem.
type OSReader struct{}

func (OSReader) ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Run loads root and every file it (transitively) #imports, verifies
// each file's proofs in dependency order (imports before importers, and
// within a file strictly in textual order per §6), and returns one
// Result per proof block of root.
//
// Files are read concurrently, bounded by maxConcurrentReads, since
// reading is the only I/O the driver performs and the files in an
// import chain are independent of each other until their *contents*
// (not their bytes on disk) are known; verification itself always
// proceeds single-threaded and in document order.
func Run(root string, reader FileReader, trace Trace) ([]Result, error) {
	order, docs, err := loadDocuments(root, reader)
	if err != nil {
		return nil, err
	}

	reg := proof.NewRegistry()
	var rootResults []Result
	for _, path := range order {
		doc := docs[path]
		for _, b := range doc.Blocks {
			p, err := RunBlock(path, b, reg, trace)
			if err != nil {
				if path == root {
					return nil, err
				}
				return nil, fmt.Errorf("importing %q: %w", path, err)
			}
			reg.Add(p.Goal)
			if path == root {
				rootResults = append(rootResults, Result{Goal: p.Goal, Proof: p})
			}
		}
	}
	return rootResults, nil
}

// loadDocuments reads root and every transitively #imported file,
// bounded-concurrently level by level, then returns a dependency order
// (imports before importers) and each file's parsed Document. A file
// that imports itself, directly or transitively, is reported as a
// cycle rather than looping forever.
func loadDocuments(root string, reader FileReader) ([]string, map[string]*Document, error) {
	texts := map[string]string{}
	frontier := []string{root}

	for len(frontier) > 0 {
		var unread []string
		for _, p := range frontier {
			if _, ok := texts[p]; !ok {
				unread = append(unread, p)
			}
		}
		if len(unread) == 0 {
			break
		}
		read, err := readAll(unread, reader)
		if err != nil {
			return nil, nil, err
		}
		for p, t := range read {
			texts[p] = t
		}

		seen := map[string]bool{}
		var next []string
		for _, p := range unread {
			for _, imp := range scanImports(texts[p]) {
				if _, ok := texts[imp]; !ok && !seen[imp] {
					seen[imp] = true
					next = append(next, imp)
				}
			}
		}
		frontier = next
	}

	docs := make(map[string]*Document, len(texts))
	for p, t := range texts {
		doc, err := ParseDocument(t)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", p, err)
		}
		docs[p] = doc
	}

	order, err := topoOrder(root, docs)
	if err != nil {
		return nil, nil, err
	}
	return order, docs, nil
}

// readAll reads paths concurrently, bounded by maxConcurrentReads.
func readAll(paths []string, reader FileReader) (map[string]string, error) {
	var g errgroup.Group
	sem := make(chan struct{}, maxConcurrentReads)
	out := make(map[string]string, len(paths))
	var mu sync.Mutex

	for _, p := range paths {
		p := p
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()
			text, err := reader.ReadFile(p)
			if err != nil {
				return fmt.Errorf("reading %s: %w", p, err)
			}
			mu.Lock()
			out[p] = text
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// scanImports collects every "#import <path>" directive in text,
// without requiring the rest of the document to parse — it runs during
// graph discovery, before ParseDocument is called on every file.
func scanImports(text string) []string {
	var imports []string
	for _, raw := range strings.Split(text, "\n") {
		line, _ := stripComment(raw)
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "#import") {
			path := strings.TrimSpace(strings.TrimPrefix(t, "#import"))
			if path != "" {
				imports = append(imports, path)
			}
		}
	}
	return imports
}

// topoOrder returns every file reachable from root in dependency order
// (a file's imports all precede it), detecting cycles.
func topoOrder(root string, docs map[string]*Document) ([]string, error) {
	var order []string
	visiting := map[string]bool{}
	visited := map[string]bool{}

	var visit func(path string) error
	visit = func(path string) error {
		if visited[path] {
			return nil
		}
		if visiting[path] {
			return fmt.Errorf("import cycle detected at %s", path)
		}
		visiting[path] = true
		doc, ok := docs[path]
		if !ok {
			return fmt.Errorf("missing parsed document for %s", path)
		}
		for _, imp := range doc.Imports {
			if err := visit(imp); err != nil {
				return err
			}
		}
		visiting[path] = false
		visited[path] = true
		order = append(order, path)
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}
	return order, nil
}
