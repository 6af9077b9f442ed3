package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI holds the ebitenui interface shown while play is paused
type PauseUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnResume        func()
	OnToggleOverlay func()
	OnQuit          func()

	// Widget references for updates
	statusLabel   *widget.Label
	overlayButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
}

// NewPauseUI creates the pause menu
func NewPauseUI(onResume, onToggleOverlay, onQuit func()) *PauseUI {
	pui := &PauseUI{
		OnResume:        onResume,
		OnToggleOverlay: onToggleOverlay,
		OnQuit:          onQuit,
	}

	pui.loadFonts()
	pui.buildUI()

	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Sized for the 192x144 logical screen
	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	pui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   9,
	}
}

func (pui *PauseUI) buildUI() {
	// Root container dims the game behind the menu
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 160})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	pui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 120, 255},
		}),
	)
	contentContainer.AddChild(pui.statusLabel)

	contentContainer.AddChild(pui.button("Resume", func() {
		if pui.OnResume != nil {
			pui.OnResume()
		}
	}))

	pui.overlayButton = pui.button("", func() {
		if pui.OnToggleOverlay != nil {
			pui.OnToggleOverlay()
		}
	})
	contentContainer.AddChild(pui.overlayButton)

	contentContainer.AddChild(pui.button("Quit", func() {
		if pui.OnQuit != nil {
			pui.OnQuit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(90, 16),
		),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (pui *PauseUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetStatus updates the zone and carrot readout and the overlay button label
func (pui *PauseUI) SetStatus(zone string, collected int, overlay bool) {
	pui.statusLabel.Label = fmt.Sprintf("Zone %s  Carrots %d", zone, collected)

	if textWidget := pui.overlayButton.Text(); textWidget != nil {
		state := "Off"
		if overlay {
			state = "On"
		}
		textWidget.Label = "Overlay: " + state
	}
}

func (pui *PauseUI) Update() {
	pui.UI.Update()
}
