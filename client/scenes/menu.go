package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/tetris/client/fonts"
	"github.com/cbodonnell/tetris/client/objects"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	stateStore state.SnapshotStore
	onStart    func()
	onQuit     func()
	ui         *ebitenui.UI
}

type MenuSceneOptions struct {
	// StateStore provides the high score shown on the menu.
	StateStore state.SnapshotStore
	// OnStart is called when the start button is pressed.
	OnStart func()
	// OnQuit is called when the quit button is pressed.
	OnQuit func()
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene:  NewBaseScene(objects.NewBaseObject("menu-root")),
		stateStore: opts.StateStore,
		onStart:    opts.OnStart,
		onQuit:     opts.OnQuit,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.NRGBA{254, 255, 255, 255},
		Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	}
	buttonPadding := widget.Insets{
		Left:   30,
		Right:  30,
		Top:    5,
		Bottom: 5,
	}

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    120,
				Left:   120,
				Right:  120,
				Bottom: 90,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("TETRIS", fonts.MPlusLargeFont, color.White),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	highScore := 0
	if snapshot := s.stateStore.Get(); snapshot != nil {
		highScore = snapshot.HighScore
	}
	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("High score: %d", highScore), fontFace, color.NRGBA{R: 200, G: 200, B: 200, A: 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	))

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Start", fontFace, buttonTextColor),
		widget.ButtonOpts.TextPadding(buttonPadding),
	)
	startButton.ClickedEvent.AddHandler(func(args interface{}) {
		s.onStart()
	})
	rootContainer.AddChild(startButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Quit", fontFace, buttonTextColor),
		widget.ButtonOpts.TextPadding(buttonPadding),
	)
	quitButton.ClickedEvent.AddHandler(func(args interface{}) {
		s.onQuit()
	})
	rootContainer.AddChild(quitButton)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
