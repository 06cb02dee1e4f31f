package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"SignDesk/internal/backend"
	"SignDesk/internal/signing"
)

const (
	msgInvalidLogin = "Invalid email or password"
	msgLoginMissing = "Email and password are required"
)

func newLoginPage(a *App, onSuccess func()) fyne.CanvasObject {
	email := widget.NewEntry()
	email.SetPlaceHolder("name@company.com")
	password := widget.NewPasswordEntry()
	remember := widget.NewCheck("Remember me", nil)
	errLabel := widget.NewLabel("")
	errLabel.Importance = widget.DangerImportance
	errLabel.Wrapping = fyne.TextWrapWord
	errLabel.Hide()

	showError := func(msg string) {
		errLabel.SetText(msg)
		errLabel.Show()
	}

	form := widget.NewForm(
		widget.NewFormItem("Email", email),
		widget.NewFormItem("Password", password),
		widget.NewFormItem("", remember),
	)
	form.SubmitText = "Sign in"
	form.OnSubmit = func() {
		errLabel.Hide()
		creds := backend.Credentials{
			Email:    strings.TrimSpace(email.Text),
			Password: password.Text,
			Remember: remember.Checked,
		}
		if creds.Email == "" || creds.Password == "" {
			showError(msgLoginMissing)
			return
		}
		form.Disable()
		a.background(func(ctx context.Context) {
			err := a.api.Login(ctx, creds)
			fyne.Do(func() {
				form.Enable()
				if err == nil {
					onSuccess()
					return
				}
				log.Printf("[API] login %s: %v", creds.Email, err)
				var apiErr *backend.Error
				if errors.As(err, &apiErr) {
					showError(backend.Detail(err, msgInvalidLogin))
				} else {
					showError(signing.MsgSubmitFailed)
				}
			})
		})
	}

	title := widget.NewLabelWithStyle("Sign in to SignDesk", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	box := container.NewVBox(title, form, errLabel)
	return container.NewCenter(container.New(layout.NewGridWrapLayout(fyne.NewSize(420, 320)), box))
}
