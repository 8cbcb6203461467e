// Package desktop renders the calculation form as a fyne window.
package desktop

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"interest-calc/core/engine"
)

const (
	// Title is the heading shown above the form
	Title = "Simple Interest Calculator"

	// WindowTitle is shown in the window title bar
	WindowTitle = "Interest Calculator"
)

// Form is the calculator window content
type Form struct {
	engine *engine.Engine

	container *fyne.Container
	title     *widget.Label
	errorText *widget.Label
	principal *widget.Entry
	rate      *widget.Entry
	period    *widget.Entry
	calculate *widget.Button
	result    *widget.Label
}

// NewForm builds the widgets and wires the Calculate button to eng
func NewForm(eng *engine.Engine) *Form {
	f := &Form{engine: eng}
	f.setupWidgets()
	return f
}

func (f *Form) setupWidgets() {
	f.title = widget.NewLabelWithStyle(Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	f.errorText = widget.NewLabel("")
	f.errorText.Importance = widget.DangerImportance

	f.principal = widget.NewEntry()
	f.rate = widget.NewEntry()
	f.period = widget.NewEntry()

	fields := container.New(layout.NewFormLayout(),
		widget.NewLabel("Principal:"), f.principal,
		widget.NewLabel("Rate:"), withUnit(f.rate, "%"),
		widget.NewLabel("Time Period:"), withUnit(f.period, "years"),
	)

	f.calculate = widget.NewButton("Calculate", f.Submit)
	f.calculate.Importance = widget.HighImportance

	f.result = widget.NewLabel("")
	f.result.Importance = widget.SuccessImportance

	f.container = container.NewPadded(container.NewVBox(
		f.title,
		f.errorText,
		fields,
		container.NewHBox(layout.NewSpacer(), f.calculate),
		f.result,
	))
}

// Submit reads the entries and shows either the error or the result,
// clearing the other
func (f *Form) Submit() {
	outcome := f.engine.Submit(context.Background(), engine.Form{
		Principal: f.principal.Text,
		Rate:      f.rate.Text,
		Period:    f.period.Text,
	})

	if !outcome.OK() {
		f.result.SetText("")
		f.errorText.SetText(outcome.Error)
		return
	}
	f.errorText.SetText("")
	f.result.SetText(outcome.Result)
}

// GetContainer returns the window content
func (f *Form) GetContainer() *fyne.Container {
	return f.container
}

// ShowIn sets the form as w's content and sizes the window
func (f *Form) ShowIn(w fyne.Window) {
	w.SetTitle(WindowTitle)
	w.SetContent(f.container)
	w.Resize(fyne.NewSize(420, 300))
	w.Canvas().Focus(f.principal)
}

func withUnit(entry *widget.Entry, unit string) fyne.CanvasObject {
	return container.NewBorder(nil, nil, nil, widget.NewLabel(unit), entry)
}
