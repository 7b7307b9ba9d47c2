package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/domemask/mask"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Status is what the HUD shows each frame.
type Status struct {
	Active      bool
	State       string
	Params      mask.Params
	MaskEnabled bool
}

// HUD is the overlay panel in the top left corner. Clicks on it never reach
// the scene: the input system reads the hover state after the HUD updates.
type HUD struct {
	UI *ebitenui.UI

	OnToggle func()

	stateLabel   *widget.Label
	maskLabel    *widget.Label
	hintLabel    *widget.Label
	toggleButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewHUD(onToggle func()) *HUD {
	h := &HUD{OnToggle: onToggle}
	h.loadFonts()
	h.buildUI()
	return h
}

func (h *HUD) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	h.titleFace = &text.GoTextFace{Source: fontSource, Size: 16}
	h.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	h.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (h *HUD) buildUI() {
	// Transparent root so the scene shows through everywhere but the panel.
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("DOME MASK", &h.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	h.stateLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.normalFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 220, 255},
		}),
	)
	panel.AddChild(h.stateLabel)

	h.maskLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &h.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	panel.AddChild(h.maskLabel)

	h.toggleButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 22),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Deactivate", &h.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if h.OnToggle != nil {
				h.OnToggle()
			}
		}),
	)
	panel.AddChild(h.toggleButton)

	h.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text("tap: place   drag: look   F1: toggle", &h.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 160, 255},
		}),
	)
	panel.AddChild(h.hintLabel)

	root.AddChild(panel)
	h.UI = &ebitenui.UI{Container: root}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Refresh copies s into the labels.
func (h *HUD) Refresh(s Status) {
	h.stateLabel.Label, h.maskLabel.Label = statusLines(s)
	if t := h.toggleButton.Text(); t != nil {
		if s.Active {
			t.Label = "Deactivate"
		} else {
			t.Label = "Activate"
		}
	}
}

func statusLines(s Status) (state, maskLine string) {
	if !s.Active {
		state = "inactive"
	} else {
		state = s.State
	}
	if !s.MaskEnabled {
		return state, "mask off"
	}
	c := s.Params.Center
	return state, fmt.Sprintf("center (%.2f, %.2f, %.2f)  radius %.2f", c.X, c.Y, c.Z, s.Params.Radius)
}

func (h *HUD) Update() {
	h.UI.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
