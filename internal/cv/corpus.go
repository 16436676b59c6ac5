package cv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// ErrNotFound distinguishes a missing CV from the other corpus failures.
var ErrNotFound = errors.New("cv not found in corpus")

// Document is one candidate CV: the file name identifies the candidate
// throughout ranking output, the text is whatever the extractor produced.
type Document struct {
	Name string
	Text string
}

// Corpus is the screening batch, a set of documents keyed by file name.
type Corpus struct {
	Items []*Document
}

var convertPath = docconv.ConvertPath

// LoadCorpus reads every supported CV file in dir. PDF and office formats go
// through docconv; plain text is read directly. Unsupported files are
// skipped. Garbled or empty text is kept as-is: it degrades scores later,
// it is not an error here.
func LoadCorpus(dir string) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading cv directory %q: %w", dir, err)
	}

	corpus := &Corpus{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		var text string

		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".docx", ".doc", ".rtf", ".odt":
			res, err := convertPath(path)
			if err != nil {
				return nil, fmt.Errorf("extracting text from %q: %w", path, err)
			}
			text = res.Body
		case ".txt":
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading %q: %w", path, err)
			}
			text = string(data)
		default:
			continue
		}

		corpus.Items = append(corpus.Items, &Document{Name: entry.Name(), Text: text})
	}

	return corpus, nil
}

func (c *Corpus) Len() int {
	return len(c.Items)
}

func (c *Corpus) Names() []string {
	names := make([]string, 0, len(c.Items))
	for _, d := range c.Items {
		names = append(names, d.Name)
	}
	return names
}

func (c *Corpus) FindByName(name string) *Document {
	for _, d := range c.Items {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Get is FindByName with a distinguishable error for missing documents.
func (c *Corpus) Get(name string) (*Document, error) {
	if doc := c.FindByName(name); doc != nil {
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}
