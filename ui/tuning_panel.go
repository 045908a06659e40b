package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MaxRows is how many mostros the panel lists.
const MaxRows = 8

// Row is one mostro line in the tuning panel.
type Row struct {
	Name    string
	State   string
	Health  int
	Max     int
	Alert   bool
	Dormant bool
}

func (r Row) String() string {
	marker := " "
	switch {
	case r.Dormant:
		marker = "z"
	case r.Alert:
		marker = "!"
	}
	return fmt.Sprintf("%s %-12s %-9s %d/%d", marker, r.Name, r.State, r.Health, r.Max)
}

// TuningPanel is the overlay in the top-right corner listing every mostro
// with buttons for the demo toggles.
type TuningPanel struct {
	UI *ebitenui.UI

	OnToggleSensors func()
	OnCyclePolicy   func()
	OnSave          func()

	rows        []*widget.Label
	policyLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTuningPanel(onToggleSensors, onCyclePolicy, onSave func()) *TuningPanel {
	p := &TuningPanel{
		OnToggleSensors: onToggleSensors,
		OnCyclePolicy:   onCyclePolicy,
		OnSave:          onSave,
	}
	p.loadFonts()
	p.buildUI()
	return p
}

func (p *TuningPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatal("failed to load UI font", "err", err)
	}

	p.titleFace = &text.GoTextFace{Source: fontSource, Size: 14}
	p.normalFace = &text.GoTextFace{Source: fontSource, Size: 11}
	p.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (p *TuningPanel) buildUI() {
	rootContainer := widget.NewContainer(
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
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("MOSTROS", &p.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	p.rows = make([]*widget.Label, MaxRows)
	for i := range p.rows {
		p.rows[i] = widget.NewLabel(
			widget.LabelOpts.Text("", &p.smallFace, &widget.LabelColor{
				Idle: color.RGBA{220, 220, 220, 255},
			}),
		)
		panel.AddChild(p.rows[i])
	}

	p.policyLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &p.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(p.policyLabel)

	panel.AddChild(p.buildButtons())
	rootContainer.AddChild(panel)

	p.UI = &ebitenui.UI{Container: rootContainer}
}

func (p *TuningPanel) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	buttons := []struct {
		label   string
		handler func()
	}{
		{"Sensors", p.OnToggleSensors},
		{"Policy", p.OnCyclePolicy},
		{"Save", p.OnSave},
	}

	for _, b := range buttons {
		handler := b.handler
		container.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 22)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			}),
			widget.ButtonOpts.Text(b.label, &p.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{200, 255, 200, 255},
				Pressed: color.RGBA{150, 200, 150, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if handler != nil {
					handler()
				}
			}),
		))
	}

	return container
}

// SetRows shows the first MaxRows rows and blanks the rest.
func (p *TuningPanel) SetRows(rows []Row) {
	for i, label := range p.rows {
		if i < len(rows) {
			label.Label = rows[i].String()
			continue
		}
		label.Label = ""
	}
}

func (p *TuningPanel) SetPolicy(policy string, unsaved bool) {
	s := "policy: " + policy
	if unsaved {
		s += " *"
	}
	p.policyLabel.Label = s
}

func (p *TuningPanel) Update() {
	p.UI.Update()
}

func (p *TuningPanel) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}
