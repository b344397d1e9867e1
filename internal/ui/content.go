package ui

import (
	"math"
	"strings"

	"github.com/atomicstack/clickwheel/internal/catalog"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/wordwrap"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// contentView shows a content page and eases towards its scroll target.
type contentView struct {
	viewport viewport.Model
	tab      string
	duration float32
	target   int
	tween    *gween.Tween
}

func newContentView(width, height int, duration float32) *contentView {
	return &contentView{
		viewport: viewport.New(width, height),
		duration: duration,
	}
}

func (c *contentView) Tab() string {
	return c.tab
}

// Load replaces the page and scrolls to the top.
func (c *contentView) Load(tab string, page catalog.Page) {
	c.tab = tab
	body := strings.TrimRight(page.Body, "\n")
	if body == "" {
		body = "(nothing here yet)"
	}
	c.viewport.SetContent(wordwrap.String(body, c.viewport.Width))
	c.viewport.GotoTop()
	c.target = 0
	c.tween = nil
}

func (c *contentView) maxOffset() int {
	n := c.viewport.TotalLineCount() - c.viewport.Height
	if n < 0 {
		return 0
	}
	return n
}

// ScrollBy moves the scroll target by lines, clamped to the page.
func (c *contentView) ScrollBy(lines int) {
	target := c.target + lines
	if target < 0 {
		target = 0
	}
	if limit := c.maxOffset(); target > limit {
		target = limit
	}
	if target == c.target {
		return
	}
	c.target = target
	if c.duration <= 0 {
		c.viewport.SetYOffset(target)
		return
	}
	c.tween = gween.New(float32(c.viewport.YOffset), float32(target), c.duration, ease.OutQuad)
}

func (c *contentView) Animating() bool {
	return c.tween != nil
}

// Advance steps the scroll animation by dt seconds.
func (c *contentView) Advance(dt float32) {
	if c.tween == nil {
		return
	}
	pos, finished := c.tween.Update(dt)
	c.viewport.SetYOffset(int(math.Round(float64(pos))))
	if finished {
		c.viewport.SetYOffset(c.target)
		c.tween = nil
	}
}

func (c *contentView) Offset() int {
	return c.viewport.YOffset
}

func (c *contentView) View() string {
	return c.viewport.View()
}
