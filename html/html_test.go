package html

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/avl"
	"golang.org/x/net/html"
)

func TestRenderStructure(t *testing.T) {
	tree := avl.New[int, string]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k, "")
	}
	var out bytes.Buffer
	if err := RenderStructure(&out, tree); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := `<ul class="avl-tree"><li data-height="1" data-bf="0">2` +
		`<ul><li data-height="0" data-bf="0">1</li><li data-height="0" data-bf="0">3</li></ul>` +
		`</li></ul>`
	if out.String() != want {
		t.Errorf("unexpected structure:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestStructureMarksMissingChildren(t *testing.T) {
	tree := avl.New[int, string]()
	tree.Insert(2, "")
	tree.Insert(1, "")
	var out bytes.Buffer
	if err := RenderStructure(&out, tree); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, `<li data-height="1" data-bf="1">2`) {
		t.Errorf("expected root leaning left, have %s", s)
	}
	if !strings.Contains(s, `</li><li class="empty"></li></ul>`) {
		t.Errorf("expected empty item for missing right child, have %s", s)
	}
	out.Reset()
	if err := RenderStructure(&out, avl.New[int, string]()); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out.String() != `<ul class="avl-tree"></ul>` {
		t.Errorf("unexpected output for empty tree: %s", out.String())
	}
}

func TestItemsRoundTrip(t *testing.T) {
	tree := avl.New[string, string]()
	entries := map[string]string{
		"pear":   "green",
		"apple":  "red & sweet",
		"banana": "<yellow>",
		"fig":    "",
	}
	for k, v := range entries {
		tree.Insert(k, v)
	}
	var out bytes.Buffer
	if err := RenderItems(&out, tree); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "<dl><dt>apple</dt><dd>red &amp; sweet</dd>") {
		t.Errorf("unexpected definition list: %s", out.String())
	}
	back, err := TreeFromHTML(&out)
	if err != nil {
		t.Fatalf("reading back failed: %v", err)
	}
	if err := back.Check(); err != nil {
		t.Fatal(err)
	}
	if back.Size() != len(entries) {
		t.Fatalf("expected %d items, have %d", len(entries), back.Size())
	}
	for k, v := range entries {
		if got, ok := back.Get(k); !ok || got != v {
			t.Errorf("item %q = %q/%v, want %q", k, got, ok, v)
		}
	}
}

func TestTreeFromHTML(t *testing.T) {
	input := `<div><p>Glossary</p>
	<dl>
		<dt>Join</dt><dd>merge two trees <b>with</b> a separator</dd>
		<dt>Split</dt>
		<dt>AVL</dt><dd>Adelson-Velsky and Landis</dd>
		<dd>orphaned description</dd>
	</dl></div>`
	tree, err := TreeFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := strings.Join(tree.Keys(), ","); got != "AVL,Join,Split" {
		t.Errorf("unexpected keys %q", got)
	}
	if v, _ := tree.Get("Join"); v != "merge two trees with a separator" {
		t.Errorf("unexpected description %q", v)
	}
	if v, ok := tree.Get("Split"); !ok || v != "" {
		t.Errorf("expected empty description for Split, got %q/%v", v, ok)
	}
}

func TestTreeFromHTMLDuplicates(t *testing.T) {
	input := `<dl><dt>a</dt><dd>1</dd><dt>a</dt><dd>2</dd></dl>`
	if _, err := TreeFromHTML(strings.NewReader(input)); !errors.Is(err, avl.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestInnerText(t *testing.T) {
	nodes, err := html.ParseFragment(strings.NewReader("<p> Hello <i>World</i>! </p>"), nil)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	for _, n := range nodes {
		s, _ := InnerText(n)
		b.WriteString(s)
	}
	if b.String() != "Hello World!" {
		t.Errorf("unexpected inner text %q", b.String())
	}
	if _, err := InnerText(nil); err != avl.ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments for nil node")
	}
}
