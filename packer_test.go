package killicons

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func solidIcon(w, h int, col color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, col)
}

func TestPack_Empty(t *testing.T) {
	sheet, positions := Pack(nil, DefaultRowWidth)

	if got := sheet.Bounds().Size(); got != image.Pt(1, 1) {
		t.Errorf("Empty input should produce a 1x1 image, got %v", got)
	}
	if len(positions) != 0 {
		t.Errorf("Empty input should produce no positions, got %v", positions)
	}
	if _, _, _, a := sheet.At(0, 0).RGBA(); a != 0 {
		t.Errorf("Empty sheet should be fully transparent")
	}
}

func TestPack_RowBreak(t *testing.T) {
	icons := map[string]*image.NRGBA{
		"tall": solidIcon(300, 40, color.NRGBA{R: 0xff, A: 0xff}),
		"flat": solidIcon(300, 20, color.NRGBA{G: 0xff, A: 0xff}),
	}

	sheet, positions := Pack(icons, 512)

	if got := positions["tall"]; got != image.Rect(0, 0, 300, 40) {
		t.Errorf("Expected the tall icon at (0,0), got %v", got)
	}
	if got := positions["flat"]; got != image.Rect(0, 40, 300, 60) {
		t.Errorf("Expected the flat icon on a new row at (0,40), got %v", got)
	}
	if got := sheet.Bounds().Size(); got != image.Pt(300, 60) {
		t.Errorf("Expected a 300x60 composite, got %v", got)
	}
}

func TestPack_TieBreakByName(t *testing.T) {
	icons := map[string]*image.NRGBA{
		"b_icon": solidIcon(32, 32, color.NRGBA{R: 0xff, A: 0xff}),
		"a_icon": solidIcon(32, 32, color.NRGBA{G: 0xff, A: 0xff}),
	}

	_, positions := Pack(icons, 512)

	if positions["a_icon"].Min.X != 0 {
		t.Errorf("Equal heights should break ties by name, got %v", positions)
	}
	if positions["b_icon"].Min.X != 32 {
		t.Errorf("Expected the second icon at x=32, got %v", positions["b_icon"])
	}
}

func TestPack_NoOverlap(t *testing.T) {
	icons := map[string]*image.NRGBA{}
	sizes := []image.Point{
		{96, 32}, {32, 32}, {64, 64}, {128, 32}, {32, 16},
		{256, 32}, {96, 64}, {32, 32}, {200, 48}, {48, 48},
	}
	for i, size := range sizes {
		name := string(rune('a'+i)) + "_icon"
		icons[name] = solidIcon(size.X, size.Y, color.NRGBA{R: uint8(i * 20), A: 0xff})
	}

	sheet, positions := Pack(icons, 512)

	if len(positions) != len(icons) {
		t.Fatalf("Every icon should receive a placement, got %d of %d", len(positions), len(icons))
	}

	bounds := sheet.Bounds()
	names := make([]string, 0, len(positions))
	for name, r := range positions {
		if !r.In(bounds) {
			t.Errorf("Placement %v of %s exceeds the composite bounds %v", r, name, bounds)
		}
		names = append(names, name)
	}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if positions[names[i]].Overlaps(positions[names[j]]) {
				t.Errorf("Placements of %s and %s overlap: %v and %v",
					names[i], names[j], positions[names[i]], positions[names[j]])
			}
		}
	}
}

func TestPack_Deterministic(t *testing.T) {
	build := func() (*image.NRGBA, map[string]image.Rectangle) {
		icons := map[string]*image.NRGBA{
			"skull":       solidIcon(32, 32, color.NRGBA{R: 0xff, A: 0xff}),
			"scattergun":  solidIcon(96, 32, color.NRGBA{G: 0xff, A: 0xff}),
			"sniperrifle": solidIcon(96, 32, color.NRGBA{B: 0xff, A: 0xff}),
			"huntsman":    solidIcon(64, 64, color.NRGBA{R: 0xff, G: 0xff, A: 0xff}),
		}
		return Pack(icons, 512)
	}

	sheet1, pos1 := build()
	sheet2, pos2 := build()

	if len(pos1) != len(pos2) {
		t.Fatalf("Position tables differ in size: %d and %d", len(pos1), len(pos2))
	}
	for name, r := range pos1 {
		if pos2[name] != r {
			t.Errorf("Placement of %s differs between runs: %v and %v", name, r, pos2[name])
		}
	}
	if !bytes.Equal(sheet1.Pix, sheet2.Pix) {
		t.Errorf("Composite pixel content differs between identical runs")
	}
}

func TestPack_BlitsSourcePixels(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	green := color.NRGBA{G: 0xff, A: 0xff}
	icons := map[string]*image.NRGBA{
		"red":   solidIcon(40, 40, red),
		"green": solidIcon(40, 20, green),
	}

	sheet, positions := Pack(icons, 512)

	if got := sheet.NRGBAAt(positions["red"].Min.X, positions["red"].Min.Y); got != red {
		t.Errorf("Expected %v at the red placement, got %v", red, got)
	}
	if got := sheet.NRGBAAt(positions["green"].Min.X, positions["green"].Min.Y); got != green {
		t.Errorf("Expected %v at the green placement, got %v", green, got)
	}
}

func TestCopyAliasPositions(t *testing.T) {
	positions := map[string]image.Rectangle{
		"sniperrifle": image.Rect(10, 10, 42, 42),
	}
	aliases := map[string]string{
		"awper_hand": "sniperrifle",
		"lugermorph": "maxgun",
	}

	CopyAliasPositions(positions, aliases)

	if got := positions["awper_hand"]; got != image.Rect(10, 10, 42, 42) {
		t.Errorf("The alias should copy the canonical placement, got %v", got)
	}
	if _, ok := positions["lugermorph"]; ok {
		t.Errorf("Aliases without a packed canonical should not receive a placement")
	}
	if len(positions) != 2 {
		t.Errorf("Expected 2 placements, got %d", len(positions))
	}
}
