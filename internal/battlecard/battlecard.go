// Package battlecard draws a PNG summary of the battle in progress, or of
// the one that just ended.
package battlecard

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/ericogr/joust-arena/internal/game"
	"github.com/ericogr/joust-arena/internal/imageutil"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Size is the edge length of the canvas the card is drawn on.
const Size = 512

const logLines = 5

var ErrNoCombat = errors.New("no battle to draw")

var (
	bgColor      = color.RGBA{0x2b, 0x1d, 0x12, 0xff}
	panelColor   = color.RGBA{0x4a, 0x33, 0x20, 0xff}
	textColor    = color.RGBA{0xf3, 0xe9, 0xd2, 0xff}
	mutedColor   = color.RGBA{0xb8, 0xa6, 0x84, 0xff}
	hpColor      = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	energyColor  = color.RGBA{0x29, 0x80, 0xb9, 0xff}
	trackColor   = color.RGBA{0x1a, 0x12, 0x0b, 0xff}
	victoryColor = color.RGBA{0xf1, 0xc4, 0x0f, 0xff}
	defeatColor  = color.RGBA{0x95, 0xa5, 0xa6, 0xff}
)

var (
	fontsOnce   sync.Once
	fontsErr    error
	boldFont    *opentype.Font
	regularFont *opentype.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if boldFont, fontsErr = opentype.Parse(gobold.TTF); fontsErr != nil {
			return
		}
		regularFont, fontsErr = opentype.Parse(goregular.TTF)
	})
	return fontsErr
}

// faces are per render; a font.Face caches glyphs and must not be shared
// between goroutines.
type faces struct {
	title font.Face
	body  font.Face
	small font.Face
}

func newFaces() (*faces, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	f := &faces{}
	var err error
	if f.title, err = newFace(boldFont, 26); err != nil {
		return nil, err
	}
	if f.body, err = newFace(regularFont, 18); err != nil {
		f.Close()
		return nil, err
	}
	if f.small, err = newFace(regularFont, 14); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

func (f *faces) Close() {
	for _, fc := range []font.Face{f.title, f.body, f.small} {
		if fc != nil {
			fc.Close()
		}
	}
}

// Render draws the card at the native Size.
func Render(st game.State) (image.Image, error) {
	if st.Combat == nil {
		return nil, ErrNoCombat
	}
	ff, err := newFaces()
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}
	defer ff.Close()

	dc := gg.NewContext(Size, Size)
	dc.SetColor(bgColor)
	dc.Clear()

	title := "Tournament Grounds"
	if t := st.FindTournament(st.Combat.TournamentID); t != nil {
		title = fmt.Sprintf("%s  %d/%d", t.Name, t.Progress+progressOffset(st.Combat.Turn), len(t.Enemies))
	}
	dc.SetFontFace(ff.title)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, Size/2, 32, 0.5, 0.5)

	if active := st.Player.Active(); active != nil {
		drawCombatant(dc, ff, *active, 16, 64, st.Player.Energy, st.Player.MaxEnergy)
	}
	drawCombatant(dc, ff, st.Combat.Enemy, Size/2+8, 64, -1, 0)

	drawBanner(dc, ff, st.Combat)
	drawLog(dc, ff, st.Combat.LastEntries(logLines))
	return dc.Image(), nil
}

// RenderPNG draws the card and scales it to size x size.
func RenderPNG(st game.State, size int) ([]byte, error) {
	img, err := Render(st)
	if err != nil {
		return nil, err
	}
	if size != Size {
		if img, err = imageutil.ResizeImage(img, size, size); err != nil {
			return nil, err
		}
	}
	return imageutil.EncodePNG(img)
}

// progressOffset shows the round being fought; after a victory the bracket
// has already advanced.
func progressOffset(turn game.Turn) int {
	if turn == game.TurnVictory {
		return 0
	}
	return 1
}

func drawCombatant(dc *gg.Context, ff *faces, c game.Combatant, x, y float64, energy, maxEnergy int) {
	const w, h = Size/2 - 24, 190
	dc.SetColor(panelColor)
	dc.DrawRoundedRectangle(x, y, w, h, 10)
	dc.Fill()

	dc.SetFontFace(ff.body)
	dc.SetColor(textColor)
	dc.DrawStringWrapped(c.Name, x+12, y+12, 0, 0, w-24, 1.2, gg.AlignLeft)
	dc.SetFontFace(ff.small)
	dc.SetColor(mutedColor)
	dc.DrawString(fmt.Sprintf("Lv %d %s", c.Level, c.Class), x+12, y+70)
	dc.DrawString(fmt.Sprintf("%s / %s", c.AttackType, c.DefenseType), x+12, y+90)

	dc.DrawString(fmt.Sprintf("HP %d/%d", c.Health, c.MaxHealth), x+12, y+118)
	drawBar(dc, x+12, y+126, w-24, 12, ratio(c.Health, c.MaxHealth), hpColor)
	if energy >= 0 {
		dc.SetColor(mutedColor)
		dc.DrawString(fmt.Sprintf("Energy %d/%d", energy, maxEnergy), x+12, y+160)
		drawBar(dc, x+12, y+168, w-24, 10, ratio(energy, maxEnergy), energyColor)
	}
}

func drawBar(dc *gg.Context, x, y, w, h, fill float64, c color.Color) {
	dc.SetColor(trackColor)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
	if fill <= 0 {
		return
	}
	dc.SetColor(c)
	dc.DrawRectangle(x, y, w*fill, h)
	dc.Fill()
}

func drawBanner(dc *gg.Context, ff *faces, cs *game.CombatSession) {
	var text string
	var c color.Color = textColor
	switch cs.Turn {
	case game.TurnPlayer:
		text = "Your move"
	case game.TurnEnemy:
		text = cs.Enemy.Name + " is acting"
	case game.TurnVictory:
		text, c = "Victory!", victoryColor
	case game.TurnDefeat:
		text, c = "Defeat", defeatColor
	}
	if cs.PlayerDefending && cs.Active() {
		text += "  (defending)"
	}
	dc.SetFontFace(ff.title)
	dc.SetColor(c)
	dc.DrawStringAnchored(text, Size/2, 290, 0.5, 0.5)
}

func drawLog(dc *gg.Context, ff *faces, entries []game.LogEntry) {
	const x, top, w = 16, 318, Size - 32
	dc.SetColor(panelColor)
	dc.DrawRoundedRectangle(x, top, w, Size-top-16, 10)
	dc.Fill()
	dc.SetFontFace(ff.small)
	y := float64(top + 24)
	for _, e := range entries {
		dc.SetColor(mutedColor)
		if e.Critical {
			dc.SetColor(victoryColor)
		}
		line := truncate(dc, e.Message, w-24)
		dc.DrawString(line, x+12, y)
		y += 32
	}
}

func truncate(dc *gg.Context, s string, width float64) string {
	if tw, _ := dc.MeasureString(s); tw <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		candidate := string(r) + "..."
		if tw, _ := dc.MeasureString(candidate); tw <= width {
			return candidate
		}
	}
	return ""
}

func ratio(v, max int) float64 {
	if max <= 0 || v <= 0 {
		return 0
	}
	if v >= max {
		return 1
	}
	return float64(v) / float64(max)
}
