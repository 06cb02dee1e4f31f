package ui

import (
	"context"
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SignDesk/internal/backend"
	"SignDesk/internal/config"
	"SignDesk/internal/signing"
)

const appID = "id.signdesk.desktop"

// App owns the fyne application and the backend client shared by every page.
type App struct {
	fyne fyne.App
	win  fyne.Window
	cfg  config.Config
	api  *backend.Client
	docs *signing.Documents

	ctx     context.Context
	cancel  context.CancelFunc
	closers []func()
}

func NewApp(cfg config.Config, api *backend.Client) *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		fyne:   app.NewWithID(appID),
		cfg:    cfg,
		api:    api,
		docs:   signing.NewDocuments(""),
		ctx:    ctx,
		cancel: cancel,
	}
	return a
}

// background runs fn off the UI thread with the application context.
func (a *App) background(fn func(ctx context.Context)) {
	go fn(a.ctx)
}

func (a *App) newWindow(title string, size fyne.Size) fyne.Window {
	w := a.fyne.NewWindow(title)
	w.Resize(size)
	return w
}

// RunSigner opens the signing page for one contract and blocks until it is
// closed.
func (a *App) RunSigner(contractID string) {
	a.win = a.newWindow("Sign Contract", fyne.NewSize(900, 760))
	page := newSignPage(a, a.win, contractID)
	a.win.SetContent(page.content)
	a.onClose(page.close)
	a.win.SetOnClosed(a.shutdown)
	page.load()
	a.win.ShowAndRun()
}

// RunConsole opens the management console, starting at the login form, and
// blocks until the window is closed.
func (a *App) RunConsole() {
	a.win = a.newWindow("SignDesk", fyne.NewSize(1200, 800))
	a.win.SetOnClosed(a.shutdown)
	if a.api.LoggedIn() {
		a.showConsole()
	} else {
		a.showLogin()
	}
	a.win.ShowAndRun()
}

func (a *App) showLogin() {
	a.win.SetContent(newLoginPage(a, a.showConsole))
}

func (a *App) showConsole() {
	dash := newDashboardPage(a)
	campaigns := newCampaignsPage(a)
	var tabs *container.AppTabs
	wizard := newWizardPage(a, func(id int64) {
		tabs.SelectIndex(1)
		campaigns.openDetail(id)
	})
	signed := newSignedPage(a)

	tabs = container.NewAppTabs(
		container.NewTabItemWithIcon("Dashboard", theme.HomeIcon(), dash.content),
		container.NewTabItemWithIcon("Campaigns", theme.StorageIcon(), campaigns.content),
		container.NewTabItemWithIcon("New Campaign", theme.ContentAddIcon(), wizard.content),
		container.NewTabItemWithIcon("Signed", theme.DocumentIcon(), signed.content),
	)
	tabs.OnSelected = func(t *container.TabItem) {
		switch t.Text {
		case "Dashboard":
			dash.reload()
		case "Campaigns":
			campaigns.reload()
		case "Signed":
			signed.reload()
		}
	}

	logout := widget.NewButtonWithIcon("Logout", theme.LogoutIcon(), func() {
		a.background(func(ctx context.Context) {
			if err := a.api.Logout(ctx); err != nil {
				log.Printf("[API] logout: %v", err)
			}
			fyne.Do(a.showLogin)
		})
	})
	header := container.NewBorder(nil, nil, widget.NewLabelWithStyle("SignDesk", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), logout)

	a.win.SetContent(container.NewBorder(header, nil, nil, nil, tabs))
	dash.reload()
}

// openSigner shows the signing page for a contract in its own window.
func (a *App) openSigner(contractID string) {
	w := a.newWindow("Sign Contract", fyne.NewSize(900, 760))
	page := newSignPage(a, w, contractID)
	w.SetContent(page.content)
	w.SetOnClosed(page.close)
	w.Show()
	page.load()
}

// openPDF keeps a local copy of data and opens it with the system viewer.
// The copy is replaced by the next one opened.
func (a *App) openPDF(pattern string, data []byte) error {
	doc, err := a.docs.Store(pattern, data)
	if err != nil {
		return err
	}
	return a.fyne.OpenURL(&url.URL{Scheme: "file", Path: doc.Path})
}

// onClose registers fn to run when the main window closes.
func (a *App) onClose(fn func()) {
	a.closers = append(a.closers, fn)
}

func (a *App) shutdown() {
	a.cancel()
	for _, fn := range a.closers {
		fn()
	}
	a.docs.Close()
}
