package island

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func TestDocument_ConvertRecordsMutations(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "<p>one</p><p>two</p>")
	old := doc.Block(1)

	island := doc.ConvertToIsland(old, State{ID: "cb-9", Content: "two", Language: "sh"})
	require.NotNil(t, island)

	m := doc.TakeMutations()
	assert.Equal(t, []Node{old}, m.Removed)
	assert.Equal(t, []Node{island}, m.Added)
	assert.True(t, doc.TakeMutations().Empty())

	assert.Equal(t, "cb-9", island.IslandID())
	assert.Equal(t, "sh", island.Attr(AttrLanguage))
	assert.Equal(t, "false", island.Attr("contenteditable"))
	assert.NotNil(t, island.MountPoint())
	assert.Equal(t, []Node{island}, doc.Root().Islands())
}

func TestDocument_ConvertDetachedIsNoOp(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "<p>one</p>")
	block := doc.Block(0)
	doc.ConvertToIsland(block, State{ID: "a"})
	doc.TakeMutations()

	assert.Nil(t, doc.ConvertToIsland(block, State{ID: "b"}))
	assert.True(t, doc.TakeMutations().Empty())
}

func TestDocument_EnclosingIsland(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "<p>plain</p>"+islandHTML)

	assert.Nil(t, doc.EnclosingIsland(doc.Block(0)))
	island := doc.Block(1)
	assert.Equal(t, Node(island), doc.EnclosingIsland(island))
	assert.Equal(t, Node(island), doc.EnclosingIsland(island.MountPoint()))
}

func TestDocument_IslandsIncludesSelfAndDescendants(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, `<section>`+islandHTML+`</section><p>x</p>`)

	assert.Len(t, doc.Root().Islands(), 1)
	assert.Len(t, doc.Block(0).Islands(), 1)
	assert.Empty(t, doc.Block(1).Islands())
}

func TestMountPointRenderer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdblock.island")
	defer teardown()

	e := NewEditor(mustParse(t, islandHTML), nil)
	e.Load()

	out, err := e.Document().HTML()
	require.NoError(t, err)
	assert.Contains(t, out, `<pre><code class="language-go">fmt.Println()</code></pre>`)

	e.Store().Update("cb-1", "a < b")
	out, err = e.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, `<code class="language-go">a &lt; b</code>`)
	assert.Contains(t, out, `data-content="a &lt; b"`)

	e.Close()
	out, err = e.Document().HTML()
	require.NoError(t, err)
	assert.NotContains(t, out, "<pre>")
}

func TestDocument_Connected(t *testing.T) {
	t.Parallel()
	doc := mustParse(t, "<div><p>one</p></div>")
	inner := doc.wrap(doc.Block(0).selection().Find("p").Nodes[0])
	assert.True(t, doc.Root().Connected())
	assert.True(t, inner.Connected())

	island := doc.ConvertToIsland(doc.Block(0), State{ID: "a"})
	require.NotNil(t, island)
	assert.True(t, island.Connected())
	assert.True(t, island.MountPoint().Connected())
	assert.False(t, inner.Connected())
}
