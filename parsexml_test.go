package main

import (
	"strings"
	"testing"
)

const sampleNewsItem = `<?xml version="1.0" encoding="iso-8859-1" ?>
<newsitem itemid="6146" id="root" date="1996-08-20" xml:lang="en">
<title>ARGENTINA: Argentine grain board figures.</title>
<text>
<p>Argentine grain board figures show crop registrations of grains, oilseeds &amp; products.</p>
<p>Maize was quoted higher than wheat.</p>
</text>
<copyright>(c) Reuters Limited 1996</copyright>
</newsitem>
`

func TestParseNewsXML(t *testing.T) {
	doc, err := ParseNewsXML([]byte(sampleNewsItem))
	if err != nil {
		t.Fatalf("ParseNewsXML error: %v", err)
	}

	if doc.ID != "6146" {
		t.Errorf("ID = %q; want %q", doc.ID, "6146")
	}
	if !strings.Contains(doc.Text, "oilseeds & products") {
		t.Errorf("entities not unescaped in text: %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "Maize was quoted higher") {
		t.Errorf("second paragraph missing from text: %q", doc.Text)
	}
	if strings.Contains(doc.Text, "Reuters Limited") {
		t.Errorf("text contains content from outside the <text> element: %q", doc.Text)
	}
}

func TestParseNewsXMLErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no newsitem element", body: `<html><body><p>hello</p></body></html>`},
		{name: "missing itemid", body: `<newsitem><text><p>hello</p></text></newsitem>`},
		{name: "missing text element", body: `<newsitem itemid="1"><title>t</title></newsitem>`},
		{name: "empty text element", body: `<newsitem itemid="1"><text>  </text></newsitem>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseNewsXML([]byte(tc.body)); err == nil {
				t.Errorf("ParseNewsXML(%q) expected an error", tc.body)
			}
		})
	}
}
