package parser

import (
	"encoding/xml"
	"io"
)

// nodeKind classifies the cursor's current node.
type nodeKind int

const (
	nodeNone nodeKind = iota
	nodeStart
	nodeEnd
	nodeText
	nodeOther
)

// cursor is a forward-only pull cursor over an XML token stream.
//
// advance positions the cursor on the next node; the readers then inspect
// the kind, qualified name and text of the current node. Namespace
// prefixes are already resolved: name.Space carries the namespace URI.
type cursor struct {
	dec  *xml.Decoder
	kind nodeKind
	name xml.Name // valid for nodeStart and nodeEnd
	text string   // valid for nodeText
}

func newCursor(r io.Reader) *cursor {
	return &cursor{dec: xml.NewDecoder(r)}
}

// advance moves to the next node. io.EOF is returned once the stream is
// exhausted; any other error is a tokenizer failure.
func (c *cursor) advance() error {
	tok, err := c.dec.Token()
	if err != nil {
		c.kind = nodeNone
		c.name = xml.Name{}
		c.text = ""
		return err
	}
	switch t := tok.(type) {
	case xml.StartElement:
		c.kind, c.name, c.text = nodeStart, t.Name, ""
	case xml.EndElement:
		c.kind, c.name, c.text = nodeEnd, t.Name, ""
	case xml.CharData:
		c.kind, c.name, c.text = nodeText, xml.Name{}, string(t)
	default:
		// ProcInst, Comment, Directive: prologue noise the readers skip.
		c.kind, c.name, c.text = nodeOther, xml.Name{}, ""
	}
	return nil
}
