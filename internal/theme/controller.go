package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Controller holds the one theme flag for the process and the renderer that
// reads it. Not goroutine-safe: it is owned by the UI update loop.
type Controller struct {
	mode     Mode
	renderer *lipgloss.Renderer
	styles   Styles
	onChange func(Mode)
}

// NewController creates a controller rendering to w in the given mode.
func NewController(w io.Writer, mode Mode) *Controller {
	c := &Controller{
		mode:     mode,
		renderer: lipgloss.NewRenderer(w),
	}
	c.apply()
	return c
}

// OnChange registers fn to run synchronously after every mode change.
func (c *Controller) OnChange(fn func(Mode)) {
	c.onChange = fn
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Toggle flips the mode, pushes it to the renderer and returns the new mode.
func (c *Controller) Toggle() Mode {
	c.mode = c.mode.Toggle()
	c.apply()
	return c.mode
}

// Set forces a specific mode.
func (c *Controller) Set(m Mode) {
	if m == c.mode {
		return
	}
	c.mode = m
	c.apply()
}

// Styles returns styles resolved against the current mode.
func (c *Controller) Styles() Styles {
	return c.styles
}

// Renderer exposes the underlying renderer (for components that build
// their own styles, e.g. bubbles widgets).
func (c *Controller) Renderer() *lipgloss.Renderer {
	return c.renderer
}

func (c *Controller) apply() {
	c.renderer.SetHasDarkBackground(c.mode == Dark)
	c.styles = NewStyles(c.renderer)
	if c.onChange != nil {
		c.onChange(c.mode)
	}
}
