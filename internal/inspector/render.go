package inspector

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	ray "github.com/akave-ai/goray"
)

// Renderer prints received payloads to a terminal.
type Renderer struct {
	out     io.Writer
	noColor bool
}

// NewRenderer writes to out. noColor forces plain output.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	return &Renderer{out: out, noColor: noColor}
}

var markerAttrs = map[ray.Color]color.Attribute{
	ray.Green:  color.FgGreen,
	ray.Orange: color.FgYellow,
	ray.Red:    color.FgRed,
	ray.Purple: color.FgMagenta,
	ray.Blue:   color.FgBlue,
	ray.Gray:   color.FgHiBlack,
}

func (r *Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.noColor {
		c.DisableColor()
	}
	return c
}

// Render prints payloads, prefixed with a short form of the session uuid.
func (r *Renderer) Render(uuid string, payloads []Payload) {
	short := uuid
	if len(short) > 8 {
		short = short[:8]
	}
	prefix := r.paint(color.Faint).Sprintf("[%s]", short)
	for _, p := range payloads {
		fmt.Fprintf(r.out, "%s %s\n", prefix, r.line(p))
	}
}

func (r *Renderer) line(p Payload) string {
	switch p.Type {
	case ray.KindLog:
		var m ray.LogMessage
		if err := json.Unmarshal(p.Content, &m); err == nil {
			return strings.Join(m.Values, " ")
		}
	case ray.KindCustom:
		var m struct {
			Label   ray.Label `json:"label"`
			Content string    `json:"content"`
		}
		if err := json.Unmarshal(p.Content, &m); err == nil {
			if m.Label == ray.LabelHTML {
				return r.paint(color.FgCyan).Sprint("html ") + m.Content
			}
			return m.Content
		}
	case ray.KindColor:
		var m ray.ColorMessage
		if err := json.Unmarshal(p.Content, &m); err == nil {
			c := ray.ResolveColor(string(m.Color))
			return r.paint(markerAttrs[c]).Sprintf("● %s", c)
		}
	case ray.KindClearAll:
		return r.paint(color.Bold).Sprint("── clear all ──")
	case ray.KindConfetti:
		return "🎉 confetti"
	case ray.KindNewScreen:
		var m ray.NewScreenMessage
		if err := json.Unmarshal(p.Content, &m); err == nil {
			if m.Name == "" {
				return r.paint(color.Bold).Sprint("══ new screen ══")
			}
			return r.paint(color.Bold).Sprintf("══ %s ══", m.Name)
		}
	}
	return fmt.Sprintf("%s %s", p.Type, string(p.Content))
}
