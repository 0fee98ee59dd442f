package main

import (
	"io"

	"github.com/rivo/tview"
	"github.com/saylorsolutions/vpack/cmd/internal"
)

const (
	labelPath     = "Path"
	labelPassword = "Password"
)

type menuAction int

const (
	actionNone menuAction = iota
	actionEncode
	actionDecode
)

type menuChoice struct {
	action   menuAction
	path     string
	password string
}

const exitPrompt = "\nDone. Press Enter to exit..."

// runMenu gets a choice from show, runs it, and waits for a line from in before returning, whatever the outcome.
// Errors are printed rather than turned into an exit code.
func runMenu(t *tool, show func() (menuChoice, error), in io.Reader) {
	defer internal.WaitForEnter(in, exitPrompt)

	choice, err := show()
	if err != nil {
		internal.Echo("\nError: %v", err)
		return
	}
	if len(choice.password) > 0 {
		t.password = choice.password
	}

	switch choice.action {
	case actionEncode:
		err = t.encode(choice.path)
	case actionDecode:
		err = t.decode(choice.path)
	default:
		internal.Echo("\nNothing to do.")
	}
	if err != nil {
		internal.Echo("\nError: %v", err)
	}
}

func showMenu() (menuChoice, error) {
	var (
		app    = tview.NewApplication()
		choice menuChoice
		list   = tview.NewList()
	)

	newForm := func(action menuAction, title string) *tview.Form {
		form := tview.NewForm().
			AddInputField(labelPath, "", 60, nil, nil).
			AddPasswordField(labelPassword, "", 40, '*', nil)
		form.AddButton("OK", func() {
			choice = menuChoice{
				action:   action,
				path:     form.GetFormItemByLabel(labelPath).(*tview.InputField).GetText(),
				password: form.GetFormItemByLabel(labelPassword).(*tview.InputField).GetText(),
			}
			app.Stop()
		})
		form.AddButton("Back", func() {
			app.SetRoot(list, true)
		})
		form.SetBorder(true).SetTitle(title)
		return form
	}
	encodeForm := newForm(actionEncode, " Encode a file to .vpack+ ")
	decodeForm := newForm(actionDecode, " Decode a .vpack+ file to play it ")

	list.
		AddItem("Encode", "Pack a video into an encrypted .vpack+ file", '1', func() {
			app.SetRoot(encodeForm, true)
		}).
		AddItem("Decode", "Restore a .vpack+ file and play it", '2', func() {
			app.SetRoot(decodeForm, true)
		}).
		AddItem("Quit", "Exit without doing anything", 'q', func() {
			app.Stop()
		})
	list.SetBorder(true).SetTitle(" VPACK+ TOOL ")

	if err := app.SetRoot(list, true).Run(); err != nil {
		return menuChoice{}, err
	}
	return choice, nil
}
