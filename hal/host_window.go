//go:build !tinygo && cgo

package hal

import (
	"image"

	"wavescope/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow starts a desktop window that displays the framebuffer and
// maps keyboard input onto the virtual front panel: z/x toggle the
// left/right switches, left/right arrows turn the pot.
// It blocks until the window closes.
func RunWindow(opts HostOptions, newApp func(HAL) func() error) error {
	h := newHostHAL(opts)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("wavescope (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*2, h.fb.height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

// Pot counts per arrow-key tap; ~64 taps across the full range.
const potStep = ADCMax / 64

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.pollControls()
	g.h.t.step(1)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) pollControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.h.toggleSwitch(g.h.left)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.h.toggleSwitch(g.h.right)
	}
	// Arrows repeat while held so the pot can be swept by hand.
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.h.nudgePot(-potStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.h.nudgePot(potStep)
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := unpackRGB565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
