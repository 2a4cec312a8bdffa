/*
Package html converts AVL trees to and from HTML.

Two representations are supported. Structure mirrors the shape of a tree as
nested unordered lists, annotating every node with its height and balance
factor. This is meant for inspecting trees in a browser. DefinitionList
outputs the items of a tree in key order as a definition list, which can be
read back with TreeFromHTML.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package html

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/avl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StructureClass is the class attribute of the list created by Structure.
const StructureClass = "avl-tree"

// Structure creates an HTML <ul> element reflecting the shape of tree. Every
// real node becomes a list item, carrying attributes data-height and data-bf.
// Children of inner nodes are grouped in a nested list, left child first. A
// missing child is represented by an empty item of class "empty".
func Structure[K, V any](tree *avl.Tree[K, V]) (*html.Node, error) {
	if tree == nil {
		return nil, avl.ErrIllegalArguments
	}
	ul := element(atom.Ul, html.Attribute{Key: "class", Val: StructureClass})
	if !tree.IsEmpty() {
		ul.AppendChild(structureItem(tree.Root()))
	}
	return ul, nil
}

func structureItem[K, V any](n *avl.Node[K, V]) *html.Node {
	if !n.IsReal() {
		return element(atom.Li, html.Attribute{Key: "class", Val: "empty"})
	}
	li := element(atom.Li,
		html.Attribute{Key: "data-height", Val: strconv.Itoa(n.Height())},
		html.Attribute{Key: "data-bf", Val: strconv.Itoa(n.BalanceFactor())},
	)
	li.AppendChild(text(fmt.Sprint(n.Key())))
	if n.Left().IsReal() || n.Right().IsReal() {
		ul := element(atom.Ul)
		ul.AppendChild(structureItem(n.Left()))
		ul.AppendChild(structureItem(n.Right()))
		li.AppendChild(ul)
	}
	return li
}

// RenderStructure writes the HTML structure of tree to w.
func RenderStructure[K, V any](w io.Writer, tree *avl.Tree[K, V]) error {
	if w == nil {
		return avl.ErrIllegalArguments
	}
	ul, err := Structure(tree)
	if err != nil {
		return err
	}
	return html.Render(w, ul)
}

// DefinitionList creates an HTML <dl> element with a <dt>/<dd> pair for
// every item of tree, in key order.
func DefinitionList[K, V any](tree *avl.Tree[K, V]) (*html.Node, error) {
	if tree == nil {
		return nil, avl.ErrIllegalArguments
	}
	dl := element(atom.Dl)
	for _, item := range tree.Items() {
		dt := element(atom.Dt)
		dt.AppendChild(text(fmt.Sprint(item.Key)))
		dd := element(atom.Dd)
		dd.AppendChild(text(fmt.Sprint(item.Value)))
		dl.AppendChild(dt)
		dl.AppendChild(dd)
	}
	return dl, nil
}

// RenderItems writes the items of tree to w as an HTML definition list.
func RenderItems[K, V any](w io.Writer, tree *avl.Tree[K, V]) error {
	if w == nil {
		return avl.ErrIllegalArguments
	}
	dl, err := DefinitionList(tree)
	if err != nil {
		return err
	}
	return html.Render(w, dl)
}

func element(a atom.Atom, attr ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attr,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// --- Reading ---------------------------------------------------------------

// InnerText returns the textual content of an HTML element and all its
// descendents, with leading and trailing white space removed. It resembles
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, without respecting CSS styling.
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", avl.ErrIllegalArguments
	}
	var b strings.Builder
	collectText(n, &b)
	return strings.TrimSpace(b.String()), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TreeFromHTML creates a tree from the definition lists of an HTML fragment.
// Every <dt> element contributes a key, the <dd> element following it the
// value. A term without description gets an empty value, a description
// without term is ignored. Duplicate terms are an error.
func TreeFromHTML(input io.Reader) (*avl.Tree[string, string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	r := &reader{tree: avl.New[string, string]()}
	for _, n := range nodes {
		if err := r.walk(n); err != nil {
			return nil, err
		}
	}
	if err := r.flush(""); err != nil {
		return nil, err
	}
	return r.tree, nil
}

type reader struct {
	tree    *avl.Tree[string, string]
	term    string
	pending bool // term has been read, waiting for its description
}

func (r *reader) walk(n *html.Node) error {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Dt:
			if err := r.flush(""); err != nil {
				return err
			}
			r.term, _ = InnerText(n)
			r.pending = true
			return nil
		case atom.Dd:
			if !r.pending {
				return nil
			}
			desc, _ := InnerText(n)
			return r.flush(desc)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := r.walk(c); err != nil {
			return err
		}
	}
	return nil
}

// flush inserts a pending term with value desc.
func (r *reader) flush(desc string) error {
	if !r.pending {
		return nil
	}
	r.pending = false
	if _, err := r.tree.Insert(r.term, desc); err != nil {
		return fmt.Errorf("term %q: %w", r.term, err)
	}
	return nil
}
