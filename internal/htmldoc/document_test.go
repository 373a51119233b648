package htmldoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<html><head><title>Heroes</title></head><body>
<div class="heroes pickerCol heroColLeft">
  <a id="link_npc_dota_hero_axe" href="/hero/axe"><img src="http://cdn/axe.png"></a>
</div>
<div class="heroes pickerCol heroColLeft">
  <a id="link_npc_dota_hero_tiny" href="/hero/tiny"><img src="http://cdn/tiny.png"></a>
</div>
<a class="languageItem" href="?l=german"> Deutsch </a>
</body></html>`

func TestParseString(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)
	require.NotNil(t, doc)
}

func TestDocument_FindAll(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)

	anchors := doc.FindAll(func(n *Node) bool {
		return n.Tag() == "a"
	})
	assert.Len(t, anchors, 3)

	// Predicate over attributes
	axe := doc.FindAll(func(n *Node) bool {
		id, ok := n.Attr("id")
		return n.Tag() == "a" && ok && strings.Contains(id, "npc_dota_hero_axe")
	})
	require.Len(t, axe, 1)
	href, ok := axe[0].Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/hero/axe", href)
}

func TestDocument_First(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)

	first := doc.First("div", "heroColLeft")
	require.NotNil(t, first)

	// First returns the earliest match in document order: the div that
	// contains the axe anchor, not the tiny one.
	assert.NotNil(t, first.Descendant("a"))
	id, _ := first.Descendant("a").Attr("id")
	assert.Contains(t, id, "axe")

	assert.Nil(t, doc.First("div", "heroColRight"))
}

func TestNode_HasClass(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)

	div := doc.First("div", "")
	require.NotNil(t, div)
	assert.True(t, div.HasClass("heroColLeft"))
	assert.True(t, div.HasClass("pickerCol"))
	assert.False(t, div.HasClass("heroCol"))
}

func TestNode_ParentAndAncestor(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)

	img := doc.Find(func(n *Node) bool { return n.Tag() == "img" })
	require.NotNil(t, img)

	parent := img.Parent()
	require.NotNil(t, parent)
	assert.Equal(t, "a", parent.Tag())

	col := img.Ancestor(func(n *Node) bool { return n.HasClass("heroColLeft") })
	require.NotNil(t, col)
	assert.Equal(t, "div", col.Tag())

	assert.Nil(t, img.Ancestor(func(n *Node) bool { return n.HasClass("heroColRight") }))
}

func TestNode_Same(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)

	a := doc.First("div", "heroColLeft")
	b := doc.First("div", "heroColLeft")
	require.NotNil(t, a)
	assert.True(t, a.Same(b))

	img := doc.Find(func(n *Node) bool { return n.Tag() == "img" })
	other := img.Ancestor(func(n *Node) bool { return n.Tag() == "div" })
	assert.True(t, a.Same(other))
	assert.False(t, a.Same(nil))
}

func TestNode_Text(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)

	lang := doc.First("a", "languageItem")
	require.NotNil(t, lang)
	assert.Equal(t, "Deutsch", lang.Text())
}

func TestDocument_HeadComment(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)

	_, ok := doc.Comment("LANGUAGE=")
	assert.False(t, ok)

	doc.AppendHeadComment("LANGUAGE=german")

	text, ok := doc.Comment("LANGUAGE=")
	require.True(t, ok)
	assert.Equal(t, "LANGUAGE=german", text)

	// The comment survives a render round trip.
	rendered := doc.String()
	assert.Contains(t, rendered, "<!--LANGUAGE=german-->")

	reparsed, err := ParseString(rendered)
	require.NoError(t, err)
	text, ok = reparsed.Comment("LANGUAGE=")
	require.True(t, ok)
	assert.Equal(t, "LANGUAGE=german", text)
}

func TestDocument_Render(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, doc.Render(&sb))
	assert.Contains(t, sb.String(), `id="link_npc_dota_hero_axe"`)
}
