package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// NewsDoc is one parsed news article: the itemid attribute of the
// <newsitem> element and the raw text collected from its <text> block.
type NewsDoc struct {
	ID   string
	Text string
}

// ParseNewsXML parses a single RCV1-style news file. The html parser is
// deliberately lenient: real corpus files carry HTML entities and the odd
// unclosed tag, and the parser unescapes entities for free.
func ParseNewsXML(body []byte) (NewsDoc, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return NewsDoc{}, fmt.Errorf("parse xml: %w", err)
	}

	// Find the <newsitem> element and its itemid attribute.
	var item *html.Node
	var findItem func(*html.Node)
	findItem = func(n *html.Node) {
		if item != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "newsitem" {
			item = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findItem(c)
		}
	}
	findItem(root)
	if item == nil {
		return NewsDoc{}, fmt.Errorf("no <newsitem> element found")
	}

	var itemID string
	for _, a := range item.Attr {
		if a.Key == "itemid" {
			itemID = strings.TrimSpace(a.Val)
			break
		}
	}
	if itemID == "" {
		return NewsDoc{}, fmt.Errorf("<newsitem> has no itemid attribute")
	}

	// Find the <text> element under the newsitem.
	var textNode *html.Node
	var findText func(*html.Node)
	findText = func(n *html.Node) {
		if textNode != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "text" {
			textNode = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findText(c)
		}
	}
	findText(item)
	if textNode == nil {
		return NewsDoc{}, fmt.Errorf("document %s has no <text> element", itemID)
	}

	// Collect all text nodes under <text>, one space between fragments.
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(textNode)

	text := b.String()
	if text == "" {
		return NewsDoc{}, fmt.Errorf("document %s has an empty <text> element", itemID)
	}

	return NewsDoc{ID: itemID, Text: text}, nil
}

// ParseNewsFile reads and parses one XML file from disk.
func ParseNewsFile(path string) (NewsDoc, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return NewsDoc{}, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := ParseNewsXML(body)
	if err != nil {
		return NewsDoc{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadCollection parses every XML file in a topic's directory, runs the text
// pipeline, and feeds the surviving terms into the index. It returns the
// number of documents indexed.
func LoadCollection(dir string, stop map[string]struct{}, idx Index) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read collection dir: %w", err)
	}

	count := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".xml") {
			continue
		}
		doc, err := ParseNewsFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return count, err
		}
		terms := ProcessText(doc.Text, stop)
		idx.AddDocument(doc.ID, terms)
		count++
	}

	if count == 0 {
		return 0, fmt.Errorf("%s contains no xml documents", dir)
	}
	return count, nil
}
