package htmltree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/Alp4ka/elementpager"
	"github.com/Alp4ka/elementpager/htmltree"
)

var _ elementpager.Tree[*html.Node] = (*htmltree.Document)(nil)

const page = `<!DOCTYPE html>
<html><body>
<div id="receiver"></div>
<ul id="list"><li class="item">a</li><li class="item">b</li><li class="item">c</li><li class="item">d</li><li class="item">e</li></ul>
</body></html>`

func parse(t *testing.T) *htmltree.Document {
	t.Helper()

	doc, err := htmltree.Parse(strings.NewReader(page))
	require.NoError(t, err)

	return doc
}

func Test_Document_Classes(t *testing.T) {
	doc := parse(t)
	n := doc.CreateElement("div", "one", "", "two")

	assert.Equal(t, []string{"one", "two"}, htmltree.Classes(n))

	doc.AddClass(n, "one")
	doc.AddClass(n, "three")
	doc.RemoveClass(n, "two")
	doc.RemoveClass(n, "missing")
	assert.Equal(t, []string{"one", "three"}, htmltree.Classes(n))
	assert.True(t, htmltree.HasClass(n, "three"))
}

func Test_Document_RemoveClass(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		remove  string
		want    string
	}{
		{
			name:    "last class drops the attribute",
			classes: []string{"elementPagerHide"},
			remove:  "elementPagerHide",
			want:    `<li></li>`,
		},
		{
			name:    "other classes are kept",
			classes: []string{"item", "elementPagerHide"},
			remove:  "elementPagerHide",
			want:    `<li class="item"></li>`,
		},
		{
			name:    "empty class is ignored",
			classes: []string{"item", "current"},
			remove:  "",
			want:    `<li class="item current"></li>`,
		},
		{
			name:    "blank class is ignored",
			classes: []string{"item"},
			remove:  "  ",
			want:    `<li class="item"></li>`,
		},
		{
			name:   "no class attribute",
			remove: "item",
			want:   `<li></li>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t)
			n := doc.CreateElement("li", tt.classes...)

			doc.RemoveClass(n, tt.remove)

			var buf bytes.Buffer
			require.NoError(t, html.Render(&buf, n))
			assert.Equal(t, tt.want, buf.String())
			assert.False(t, htmltree.HasClass(n, tt.remove))
		})
	}
}

func Test_Document_ToggleClass(t *testing.T) {
	doc := parse(t)
	item := doc.Select("#list .item")[0]

	doc.AddClass(item, "elementPagerHide")
	assert.Equal(t, []string{"item", "elementPagerHide"}, htmltree.Classes(item))

	doc.RemoveClass(item, "elementPagerHide")
	doc.RemoveClass(item, "item")
	assert.Empty(t, htmltree.Classes(item))
	assert.False(t, lo.ContainsBy(item.Attr, func(attr html.Attribute) bool {
		return attr.Key == "class"
	}))
}

func Test_Document_CreateLink(t *testing.T) {
	doc := parse(t)
	link := doc.CreateElement("a", "next")
	doc.SetText(link, "old")
	doc.SetText(link, ">")

	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, link))
	assert.Equal(t, `<a href="#" class="next">&gt;</a>`, buf.String())
	assert.Equal(t, ">", htmltree.Text(link))
}

func Test_Document_Activate(t *testing.T) {
	doc := parse(t)
	link := doc.CreateElement("a")

	assert.False(t, doc.Activate(link))

	calls := 0
	doc.OnActivate(link, func() { calls++ })
	assert.True(t, doc.Activate(link))
	assert.Equal(t, 1, calls)
}

func Test_Document_Select(t *testing.T) {
	doc := parse(t)

	items := doc.Select("#list .item")
	require.Len(t, items, 5)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, lo.Map(items, func(n *html.Node, _ int) string {
		return htmltree.Text(n)
	}))

	assert.Empty(t, doc.Select("[[invalid"))
}

func Test_Document_Pager(t *testing.T) {
	tests := []struct {
		name     string
		location func(doc *htmltree.Document) elementpager.Location[*html.Node]
		check    func(t *testing.T, doc *htmltree.Document, toolbar *html.Node)
	}{
		{
			name: "after the last element",
			location: func(*htmltree.Document) elementpager.Location[*html.Node] {
				return elementpager.LocationAfter[*html.Node]()
			},
			check: func(t *testing.T, doc *htmltree.Document, toolbar *html.Node) {
				items := doc.Select(".item")
				assert.Same(t, items[len(items)-1], toolbar.PrevSibling)
			},
		},
		{
			name: "before the first element",
			location: func(*htmltree.Document) elementpager.Location[*html.Node] {
				return elementpager.LocationKeyword[*html.Node]("Before")
			},
			check: func(t *testing.T, doc *htmltree.Document, toolbar *html.Node) {
				assert.Same(t, doc.Select(".item")[0], toolbar.NextSibling)
			},
		},
		{
			name: "inside a receiver element",
			location: func(doc *htmltree.Document) elementpager.Location[*html.Node] {
				return elementpager.LocationInside(doc.Select("#receiver")[0])
			},
			check: func(t *testing.T, doc *htmltree.Document, toolbar *html.Node) {
				assert.Same(t, doc.Select("#receiver")[0], toolbar.Parent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t)
			opts := elementpager.DefaultOptions[*html.Node]().
				WithItemsPerPage(2).
				WithLocation(tt.location(doc))

			pager := elementpager.New[*html.Node](doc, doc.Select(".item"), opts)
			require.True(t, pager.IsActive())

			toolbar, ok := pager.Toolbar()
			require.True(t, ok)
			tt.check(t, doc, toolbar)
			assert.Len(t, doc.Select(".elementPagerToolbar .pages a"), 3)
		})
	}
}

func Test_Document_Pager_Navigation(t *testing.T) {
	doc := parse(t)
	pager := elementpager.New[*html.Node](doc, doc.Select(".item"), elementpager.DefaultOptions[*html.Node]().WithItemsPerPage(2))

	visible := func() []string {
		return lo.Map(doc.Select(".item:not(.elementPagerHide)"), func(n *html.Node, _ int) string {
			return htmltree.Text(n)
		})
	}
	assert.Equal(t, []string{"a", "b"}, visible())
	assert.Len(t, doc.Select(".first.disabled, .prev.disabled"), 2)

	require.True(t, doc.Activate(doc.Select(".elementPagerToolbar a.next")[0]))
	assert.Equal(t, 1, pager.CurrentPage())
	assert.Equal(t, []string{"c", "d"}, visible())
	assert.Empty(t, doc.Select(".disabled"))

	require.True(t, doc.Activate(doc.Select(".pages a")[2]))
	assert.Equal(t, []string{"e"}, visible())
	assert.Equal(t, "3", htmltree.Text(doc.Select(".pages a.current")[0]))

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Contains(t, buf.String(), `<li class="item">e</li><div class="elementPagerToolbar">`)
	assert.Contains(t, buf.String(), `<a href="#" class="last disabled">&gt;&gt;</a>`)
}
