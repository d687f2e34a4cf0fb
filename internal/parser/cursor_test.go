package parser

import (
	"io"
	"strings"
	"testing"
)

// TestCursorAdvance tests node classification over a small document.
func TestCursorAdvance(t *testing.T) {
	doc := `<?xml version="1.0"?><a xmlns="urn:test">hi<b/></a>`
	cur := newCursor(strings.NewReader(doc))

	type node struct {
		kind  nodeKind
		local string
		space string
		text  string
	}
	want := []node{
		{kind: nodeOther},
		{kind: nodeStart, local: "a", space: "urn:test"},
		{kind: nodeText, text: "hi"},
		{kind: nodeStart, local: "b", space: "urn:test"},
		{kind: nodeEnd, local: "b", space: "urn:test"},
		{kind: nodeEnd, local: "a", space: "urn:test"},
	}

	for i, w := range want {
		if err := cur.advance(); err != nil {
			t.Fatalf("node %d: advance failed: %v", i, err)
		}
		if cur.kind != w.kind {
			t.Errorf("node %d: expected kind %v, got %v", i, w.kind, cur.kind)
		}
		if cur.name.Local != w.local || cur.name.Space != w.space {
			t.Errorf("node %d: expected name %s:%s, got %s:%s",
				i, w.space, w.local, cur.name.Space, cur.name.Local)
		}
		if w.text != "" && cur.text != w.text {
			t.Errorf("node %d: expected text %q, got %q", i, w.text, cur.text)
		}
	}

	if err := cur.advance(); err != io.EOF {
		t.Errorf("expected io.EOF at end of stream, got %v", err)
	}
	if cur.kind != nodeNone {
		t.Errorf("expected nodeNone after exhaustion, got %v", cur.kind)
	}
}
