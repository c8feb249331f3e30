package citygml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// namespaces is the fixed prefix table declared on the document root.
var namespaces = []struct {
	Prefix string
	URI    string
}{
	{"core", "http://www.opengis.net/citygml/3.0"},
	{"bldg", "http://www.opengis.net/citygml/building/3.0"},
	{"con", "http://www.opengis.net/citygml/construction/3.0"},
	{"gen", "http://www.opengis.net/citygml/generics/3.0"},
	{"app", "http://www.opengis.net/citygml/appearance/3.0"},
	{"gml", "http://www.opengis.net/gml/3.2"},
	{"xsi", "http://www.w3.org/2001/XMLSchema-instance"},
	{"xlink", "http://www.w3.org/1999/xlink"},
}

const schemaLocation = "http://www.opengis.net/citygml/profiles/base/3.0 http://schemas.opengis.net/citygml/profiles/base/3.0/CityGML.xsd"

// Node is one element of the in-memory document tree. Children keep
// insertion order; the serializer preserves node order and attribute
// values exactly.
type Node struct {
	Prefix string
	Local  string
	Attrs  []Attr
	Text   string
	Nodes  []*Node
}

// Attr is a prefixed attribute.
type Attr struct {
	Prefix string
	Local  string
	Value  string
}

// NewNode returns a detached node.
func NewNode(prefix, local string) *Node {
	return &Node{Prefix: prefix, Local: local}
}

// Child creates a new child node, appends it, and returns it.
func (n *Node) Child(prefix, local string) *Node {
	c := NewNode(prefix, local)
	n.Nodes = append(n.Nodes, c)
	return c
}

// TextChild creates a child holding only text.
func (n *Node) TextChild(prefix, local, text string) *Node {
	c := n.Child(prefix, local)
	c.Text = text
	return c
}

// Append attaches an already-built subtree.
func (n *Node) Append(c *Node) {
	n.Nodes = append(n.Nodes, c)
}

// SetAttr adds an attribute.
func (n *Node) SetAttr(prefix, local, value string) {
	n.Attrs = append(n.Attrs, Attr{Prefix: prefix, Local: local, Value: value})
}

// Find returns the first direct child with the given prefix and local
// name, or nil. Intended for tests and inspection, not for assembly.
func (n *Node) Find(prefix, local string) *Node {
	for _, c := range n.Nodes {
		if c.Prefix == prefix && c.Local == local {
			return c
		}
	}
	return nil
}

// FindAll returns all direct children with the given prefix and local name.
func (n *Node) FindAll(prefix, local string) []*Node {
	var out []*Node
	for _, c := range n.Nodes {
		if c.Prefix == prefix && c.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns the value of the named attribute and whether it is set.
func (n *Node) Attr(prefix, local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Prefix == prefix && a.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Write serializes the tree rooted at n as a standalone XML document with
// the namespace prefix table declared on the root element.
func (n *Node) Write(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return n.write(w, 0, true)
}

func (n *Node) write(w io.Writer, depth int, root bool) error {
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%s<%s", indent, n.qualifiedName()); err != nil {
		return err
	}
	if root {
		for _, ns := range namespaces {
			if _, err := fmt.Fprintf(w, "\n%s    xmlns:%s=%q", indent, ns.Prefix, ns.URI); err != nil {
				return err
			}
		}
	}
	for _, a := range n.Attrs {
		name := a.Local
		if a.Prefix != "" {
			name = a.Prefix + ":" + a.Local
		}
		if _, err := fmt.Fprintf(w, " %s=\"%s\"", name, escape(a.Value)); err != nil {
			return err
		}
	}

	if len(n.Nodes) == 0 && n.Text == "" {
		_, err := io.WriteString(w, "/>\n")
		return err
	}
	if len(n.Nodes) == 0 {
		_, err := fmt.Fprintf(w, ">%s</%s>\n", escape(n.Text), n.qualifiedName())
		return err
	}

	if _, err := io.WriteString(w, ">\n"); err != nil {
		return err
	}
	for _, c := range n.Nodes {
		if err := c.write(w, depth+1, false); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s</%s>\n", indent, n.qualifiedName())
	return err
}

func (n *Node) qualifiedName() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s)) // cannot fail writing to a buffer
	return buf.String()
}
