package viz

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/seq"
)

const (
	recordWidth  = 400
	recordHeight = 300
	// MaxFrames bounds memory use; each frame is a full paletted image.
	MaxFrames = 600
)

var ErrNoFrames = errors.New("viz: nothing recorded")

// palette indexes
const (
	idxBackground uint8 = iota
	idxPrimary
	idxSecondary
	idxNeutral
)

// Recorder captures frames as pixel images and writes them out as a GIF.
// It lays the bars out in its own fixed viewport, so the output does not
// depend on the terminal size.
type Recorder struct {
	viewport seq.Viewport
	palette  color.Palette
	frames   []*image.Paletted
	limit    int
}

func NewRecorder(theme Theme) *Recorder {
	return &Recorder{
		viewport: seq.Viewport{Width: recordWidth, Height: recordHeight, SidePad: 50, TopPad: 75},
		palette:  paletteFor(theme),
		frames:   make([]*image.Paletted, 0, 64),
		limit:    MaxFrames,
	}
}

func paletteFor(theme Theme) color.Palette {
	p := color.Palette{color.White, toRGBA(theme.Primary), toRGBA(theme.Secondary)}
	for _, c := range theme.Neutral {
		p = append(p, toRGBA(c))
	}
	return p
}

func (r *Recorder) Len() int   { return len(r.frames) }
func (r *Recorder) Full() bool { return len(r.frames) >= r.limit }
func (r *Recorder) Limit() int { return r.limit }

// Capture draws the current state into a new frame. It reports false once
// the frame limit is reached.
func (r *Recorder) Capture(s *seq.Sequence, st algo.Step) bool {
	if r.Full() || s.Len() == 0 {
		return false
	}

	img := image.NewPaletted(image.Rect(0, 0, r.viewport.Width, r.viewport.Height), r.palette)
	for i := 0; i < s.Len(); i++ {
		rect := s.GeometryIn(r.viewport, i)
		idx := idxNeutral + uint8(i%3)
		if role, ok := st.Touched[i]; ok {
			idx = idxPrimary
			if role == algo.Secondary {
				idx = idxSecondary
			}
		}
		for y := rect.Y; y < r.viewport.Height; y++ {
			for x := rect.X; x < rect.X+rect.W && x < r.viewport.Width; x++ {
				img.SetColorIndex(x, y, idx)
			}
		}
	}
	r.frames = append(r.frames, img)
	return true
}

// Encode writes the frames as a looping GIF with delay in 1/100s per frame.
func (r *Recorder) Encode(w io.Writer, delay int) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

func (r *Recorder) Save(path string, delay int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viz: create %s: %w", path, err)
	}
	if err := r.Encode(f, delay); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DelayFor converts a frame rate into a GIF frame delay, at least 2/100s
// since most viewers clamp anything faster.
func DelayFor(fps int) int {
	if fps <= 0 {
		return 2
	}
	return max(2, 100/fps)
}

func toRGBA(c lipgloss.Color) color.RGBA {
	r, g, b := parseHex(string(c))
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
