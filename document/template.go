package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
)

var ErrTemplateNotFound = errors.New("no se encontró una plantilla de nota con marcadores <...>")

// Template wraps a parsed .docx request-note template. The container format
// itself is the authoring library's concern; this package only rewrites
// paragraph text and anchors the generated schedule table.
type Template struct {
	doc *docx.Docx
}

func NewTemplate(doc *docx.Docx) *Template {
	return &Template{doc: doc}
}

// NewTemplateFromBytes parses an in-memory .docx document.
func NewTemplateFromBytes(data []byte) (*Template, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Template{doc: doc}, nil
}

// Open parses the .docx file at path. The file is read fully into memory
// because the parsed document reads template parts from its source reader
// lazily at serialization time.
func Open(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open template: %w", err)
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &Template{doc: doc}, nil
}

// FindTemplate locates the first .docx in dir whose filename contains "nota"
// and whose text carries at least one bracketed tag.
func FindTemplate(dir string) (*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read template dir: %w", err)
	}

	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if entry.IsDir() || !strings.HasSuffix(name, ".docx") || !strings.Contains(name, "nota") {
			continue
		}
		tpl, err := Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		if tpl.HasTags() {
			return tpl, nil
		}
	}
	return nil, ErrTemplateNotFound
}

// HasTags reports whether any paragraph, in the body or inside a table
// cell, contains a bracketed placeholder.
func (t *Template) HasTags() bool {
	found := false
	t.eachParagraph(func(p *docx.Paragraph) {
		text := paragraphText(p)
		if strings.Contains(text, "<") && strings.Contains(text, ">") {
			found = true
		}
	})
	return found
}

// ReplaceTags rewrites every literal tag occurrence across body paragraphs
// and table-cell paragraphs.
func (t *Template) ReplaceTags(tags map[string]string) {
	t.eachParagraph(func(p *docx.Paragraph) {
		replaceInParagraph(p, tags)
	})
}

// Bytes serializes the filled document.
func (t *Template) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}

func (t *Template) eachParagraph(fn func(p *docx.Paragraph)) {
	for _, item := range t.doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			fn(it)
		case *docx.Table:
			for _, row := range it.TableRows {
				for _, cell := range row.TableCells {
					for _, p := range cell.Paragraphs {
						fn(p)
					}
				}
			}
		}
	}
}

func paragraphText(p *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if txt, ok := rc.(*docx.Text); ok {
				sb.WriteString(txt.Text)
			}
		}
	}
	return sb.String()
}

// replaceInParagraph substitutes each tag run-locally first, which keeps the
// run formatting intact. A tag split across adjacent runs survives that
// pass, so the paragraph text is then rebuilt into the first run as a
// fallback.
func replaceInParagraph(p *docx.Paragraph, tags map[string]string) {
	for tag, value := range tags {
		if !strings.Contains(paragraphText(p), tag) {
			continue
		}
		for _, child := range p.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if txt, ok := rc.(*docx.Text); ok {
					txt.Text = strings.ReplaceAll(txt.Text, tag, value)
				}
			}
		}
		if full := paragraphText(p); strings.Contains(full, tag) {
			setParagraphText(p, strings.ReplaceAll(full, tag, value))
		}
	}
}

// setParagraphText puts text into the paragraph's first run and blanks the
// rest, so the visible text equals exactly the given string.
func setParagraphText(p *docx.Paragraph, text string) {
	first := true
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			txt, ok := rc.(*docx.Text)
			if !ok {
				continue
			}
			if first {
				txt.Text = text
				first = false
			} else {
				txt.Text = ""
			}
		}
	}
	if first {
		p.AddText(text)
	}
}
