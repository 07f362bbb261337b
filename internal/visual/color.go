package visual

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
)

type colorProfile uint8

const (
	colorNone colorProfile = iota
	colorANSI256
	colorTrueColor
)

type colorRGB struct {
	R, G, B uint8
}

var (
	profileOnce sync.Once
	profile     colorProfile
)

func currentColorProfile() colorProfile {
	profileOnce.Do(func() {
		if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
			profile = colorNone
			return
		}
		term := strings.ToLower(os.Getenv("TERM"))
		colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
		switch {
		case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
			profile = colorTrueColor
		case term == "", term == "dumb":
			profile = colorNone
		default:
			profile = colorANSI256
		}
	})
	return profile
}

// ansiState writes foreground color sequences, skipping repeats so runs of
// same-colored cells cost one escape.
type ansiState struct {
	profile colorProfile
	current uint32
}

func newANSIState() ansiState {
	return ansiState{profile: currentColorProfile(), current: ^uint32(0)}
}

func (s *ansiState) set(sb *strings.Builder, c colorRGB) {
	if s.profile == colorNone {
		return
	}
	key := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if key == s.current {
		return
	}
	switch s.profile {
	case colorTrueColor:
		fmt.Fprintf(sb, "\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	case colorANSI256:
		r := int(c.R) * 5 / 255
		g := int(c.G) * 5 / 255
		b := int(c.B) * 5 / 255
		fmt.Fprintf(sb, "\x1b[38;5;%dm", 16+36*r+6*g+b)
	}
	s.current = key
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == colorNone || s.current == ^uint32(0) {
		return
	}
	sb.WriteString("\x1b[0m")
	s.current = ^uint32(0)
}

func lerpColor(a, b colorRGB, t float64) colorRGB {
	t = clamp01(t)
	return colorRGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// heatColor maps a 0..1 level onto a cold-to-hot ramp.
func heatColor(t float64) colorRGB {
	t = clamp01(t)
	switch {
	case t < 0.4:
		return lerpColor(colorRGB{R: 24, G: 52, B: 120}, colorRGB{R: 36, G: 200, B: 140}, t/0.4)
	case t < 0.75:
		return lerpColor(colorRGB{R: 36, G: 200, B: 140}, colorRGB{R: 250, G: 210, B: 70}, (t-0.4)/0.35)
	default:
		return lerpColor(colorRGB{R: 250, G: 210, B: 70}, colorRGB{R: 245, G: 70, B: 56}, (t-0.75)/0.25)
	}
}

func traceColor(c int) colorRGB {
	h := 0.53 + 0.04*math.Sin(float64(c)*0.22)
	return rgbFromHSV(h, 0.7, 0.95)
}

func rgbFromHSV(h, s, v float64) colorRGB {
	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}
	s = clamp01(s)
	v = clamp01(v)

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return colorRGB{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255)}
}
