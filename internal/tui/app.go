package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/cafferot/internal/cafe"
	"github.com/jask/cafferot/internal/config"
	"github.com/jask/cafferot/internal/present"
	"github.com/jask/cafferot/internal/scene"
	"github.com/jask/cafferot/internal/service"
	"github.com/jask/cafferot/internal/viewport"
)

// Navigation targets raised to the host.
const (
	targetCafferots = "cafferots"
	targetEdit      = "edit"
)

// Rows taken by the header and the footer around the map.
const (
	headerRows = 1
	footerRows = 1
)

// App is the café map screen.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	keys     *KeyRegistry
	theme    Theme

	session *scene.Session
	shown   viewport.State
	tween   tween
	ticking bool

	width, height int
	searching     bool
	query         string
	status        string
	statusErr     bool
	lastNavigate  string

	now        func() time.Time
	saveConfig func(config.Config) error
}

type Services struct {
	Feed    *service.Feed
	Actions *service.Actions
}

func New(ctx context.Context, cfg config.Config, services Services) *App {
	return &App{
		ctx:        ctx,
		cfg:        cfg,
		services:   services,
		keys:       NewKeyRegistry(DefaultBindings()),
		theme:      NewTheme(cfg.UI.Dark),
		shown:      viewport.Identity,
		now:        time.Now,
		saveConfig: config.Save,
	}
}

func (a *App) Init() tea.Cmd {
	return a.pollFeed()
}

func (a *App) pollFeed() tea.Cmd {
	return func() tea.Msg {
		if a.services.Feed == nil {
			return errMsg{fmt.Errorf("feed not configured")}
		}
		snap, err := a.services.Feed.Poll(a.ctx)
		if err != nil {
			return feedErrMsg{err}
		}
		return snapshotMsg(snap)
	}
}

func (a *App) scheduleFeed() tea.Cmd {
	if a.cfg.Feed.Interval <= 0 {
		return nil
	}
	return tea.Tick(a.cfg.Feed.Interval, func(t time.Time) tea.Msg { return feedTickMsg(t) })
}

func (a *App) frameTick() tea.Cmd {
	fps := max(a.cfg.UI.FrameRate, 1)
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		if a.session != nil {
			a.session.Resize(a.canvasSize())
		}
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case tea.MouseMsg:
		return a, a.handleMouse(m)
	case tea.BlurMsg:
		return a, a.apply(scene.PointerLeaveEvent{})
	case snapshotMsg:
		return a, a.applySnapshot(service.Snapshot(m))
	case feedTickMsg:
		return a, a.pollFeed()
	case feedErrMsg:
		a.setError(m.error)
		log.Printf("feed: %v", m.error)
		return a, a.scheduleFeed()
	case frameMsg:
		return a, a.advance(time.Time(m))
	case actionDoneMsg:
		a.setStatus(fmt.Sprintf("%s %s (%d total)", m.verb, m.name, m.count))
	case statusMsg:
		a.setStatus(string(m))
	case errMsg:
		a.setError(m.error)
		log.Printf("error: %v", m.error)
	}
	return a, nil
}

func (a *App) applySnapshot(snap service.Snapshot) tea.Cmd {
	if a.session == nil {
		w, h := a.canvasSize()
		a.session = scene.NewSession(snap.Primary, snap.Nearby,
			scene.WithCanvas(w, h),
			scene.WithCallbacks(scene.Callbacks{
				OnEntitySelected: a.onSelected,
				OnNavigateAway:   a.onNavigate,
			}),
		)
		a.shown = a.session.Viewport()
	} else {
		a.session.SetEntities(snap.Primary, snap.Nearby)
	}
	if snap.Added > 0 {
		a.setStatus(fmt.Sprintf("%d new cafe(s) nearby", snap.Added))
		log.Printf("feed: %d new cafes", snap.Added)
	}
	return a.scheduleFeed()
}

func (a *App) onSelected(c cafe.Cafe) {
	log.Printf("selected cafe %s (%s)", c.ID, c.Name)
	a.setStatus("focused " + c.Name)
}

func (a *App) onNavigate(target string) {
	log.Printf("navigate to %s", target)
	a.lastNavigate = target
	a.setStatus("open " + target)
}

// apply feeds one event to the session and starts the camera tween when
// the logical camera moved.
func (a *App) apply(ev scene.Event) tea.Cmd {
	if a.session == nil {
		return nil
	}
	out := a.session.Apply(ev)
	if out.Cause == viewport.CauseNone {
		return nil
	}
	a.shown = a.tween.retarget(a.shown, a.session.Viewport(), a.session.Transition(), a.now())
	if !a.tween.active || a.ticking {
		return nil
	}
	a.ticking = true
	return a.frameTick()
}

func (a *App) advance(now time.Time) tea.Cmd {
	a.shown, a.ticking = a.tween.at(now)
	if a.ticking {
		return a.frameTick()
	}
	return nil
}

func (a *App) scope() string {
	switch {
	case a.searching:
		return scopeSearch
	case a.session != nil && a.session.Selected() != "":
		return scopeFocused
	default:
		return scopeMap
	}
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if a.searching {
		return a.handleSearchKey(m)
	}
	a.status = ""
	switch a.keys.Action(m, a.scope()) {
	case actQuit:
		return tea.Quit
	case actEscape:
		return a.apply(scene.KeyEvent{Key: "esc"})
	case actReset:
		return a.apply(scene.ResetEvent{})
	case actBack:
		if a.hasAction(present.ActionBack) {
			return a.apply(scene.BackEvent{})
		}
	case actSearch:
		a.searching = true
		a.query = ""
	case actNavigate:
		return a.apply(scene.NavigateEvent{Target: targetCafferots})
	case actEdit:
		if a.hasAction(present.ActionEdit) {
			return a.apply(scene.NavigateEvent{Target: targetEdit})
		}
	case actAdopt:
		if a.hasAction(present.ActionAdopt) {
			return a.actionCmd(present.ActionAdopt)
		}
	case actVisit:
		if a.hasAction(present.ActionVisit) {
			return a.actionCmd(present.ActionVisit)
		}
	case actTheme:
		return a.toggleTheme()
	}
	return nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case a.keys.IsAction(m, actQuit, scopeSearch):
		return tea.Quit
	case a.keys.IsAction(m, actEscape, scopeSearch):
		a.searching = false
		a.query = ""
		return nil
	case a.keys.IsAction(m, actSubmit, scopeSearch):
		a.searching = false
		return a.jumpTo(a.query)
	}
	switch m.Type {
	case tea.KeyBackspace:
		if r := []rune(a.query); len(r) > 0 {
			a.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		a.query += " "
	case tea.KeyRunes:
		a.query += string(m.Runes)
	}
	return nil
}

func (a *App) jumpTo(query string) tea.Cmd {
	if a.session == nil {
		return nil
	}
	p, ok := findCafe(query, a.session.Placements())
	if !ok {
		a.setError(fmt.Errorf("no cafe matches %q", query))
		return nil
	}
	if a.session.Selected() == p.Cafe.ID {
		return nil
	}
	return a.apply(scene.SelectEntity{ID: p.Cafe.ID})
}

// hasAction reports whether the selected café's card currently offers act.
func (a *App) hasAction(act present.Action) bool {
	if a.session == nil {
		return false
	}
	for _, spec := range a.session.Render() {
		if spec.ID != a.session.Selected() {
			continue
		}
		for _, x := range spec.Actions {
			if x == act {
				return true
			}
		}
	}
	return false
}

func (a *App) actionCmd(act present.Action) tea.Cmd {
	c, ok := a.session.SelectedCafe()
	if !ok || a.services.Actions == nil {
		return nil
	}
	return func() tea.Msg {
		var (
			n    int
			err  error
			verb string
		)
		switch act {
		case present.ActionAdopt:
			n, err = a.services.Actions.Adopt(a.ctx, c.ID)
			verb = "adopted at"
		default:
			n, err = a.services.Actions.Visit(a.ctx, c.ID)
			verb = "visited"
		}
		if err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{verb: verb, name: c.Name, count: n}
	}
}

func (a *App) toggleTheme() tea.Cmd {
	a.cfg.UI.Dark = !a.cfg.UI.Dark
	a.theme = NewTheme(a.cfg.UI.Dark)
	cfg, save := a.cfg, a.saveConfig
	return func() tea.Msg {
		if err := save(cfg); err != nil {
			return errMsg{err}
		}
		if cfg.UI.Dark {
			return statusMsg("dark mode")
		}
		return statusMsg("light mode")
	}
}

func (a *App) setStatus(s string) {
	a.status, a.statusErr = s, false
}

func (a *App) setError(err error) {
	a.status, a.statusErr = "error: "+err.Error(), true
}

func (a *App) canvasSize() (float64, float64) {
	return float64(a.width), float64(max(a.height-headerRows-footerRows, 0))
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	if a.session == nil {
		body := "loading cafes..."
		if a.status != "" {
			body = a.status
		}
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
	}
	w, h := a.canvasSize()
	canvas := drawMap(a.session, a.shown, int(w), int(h)).render(a.theme)
	return lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), canvas, a.renderFooter())
}

// chrome lays out the header buttons for the current width.
type chrome struct {
	navLabel, zoomLabel string
	navStart, zoomStart int
}

func (a *App) chrome() chrome {
	c := chrome{navLabel: "[" + targetCafferots + "]"}
	if a.session != nil {
		c.zoomLabel = fmt.Sprintf("[%d%%]", a.session.Viewport().Percent())
	} else {
		c.zoomLabel = "[100%]"
	}
	right := lipgloss.Width(c.navLabel) + 1 + lipgloss.Width(c.zoomLabel) + 1
	c.navStart = max(a.width-right, 0)
	c.zoomStart = c.navStart + lipgloss.Width(c.navLabel) + 1
	return c
}

func (c chrome) hit(x int) string {
	switch {
	case x >= c.navStart && x < c.navStart+lipgloss.Width(c.navLabel):
		return targetCafferots
	case x >= c.zoomStart && x < c.zoomStart+lipgloss.Width(c.zoomLabel):
		return "zoom"
	}
	return ""
}

func (a *App) renderHeader() string {
	c := a.chrome()
	title := " Cafferot"
	if sel, ok := a.session.SelectedCafe(); ok {
		title += " › " + sel.Name
	}
	title = truncate(title, c.navStart)
	pad := strings.Repeat(" ", max(c.navStart-lipgloss.Width(title), 0))
	return a.theme.Header.Render(title+pad) +
		a.theme.Button.Render(c.navLabel) + a.theme.Header.Render(" ") +
		a.theme.Button.Render(c.zoomLabel) + a.theme.Header.Render(" ")
}

func (a *App) renderFooter() string {
	var text string
	style := a.theme.Footer
	switch {
	case a.searching:
		text = " find: " + a.query + "_"
		style = a.theme.Prompt
	case a.status != "":
		text = " " + a.status
		style = a.theme.Status
		if a.statusErr {
			style = a.theme.Error
		}
	default:
		text = " " + a.keys.Help(a.scope())
	}
	if n := a.session.Hidden(); n > 0 && !a.searching {
		text += fmt.Sprintf(" · +%d not shown", n)
	}
	text = truncate(text, a.width)
	return style.Width(a.width).Render(text)
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > w {
		r = r[:len(r)-1]
	}
	return string(r)
}

// Messages
type snapshotMsg service.Snapshot
type feedTickMsg time.Time
type frameMsg time.Time
type statusMsg string
type errMsg struct{ error }
type feedErrMsg struct{ error }

type actionDoneMsg struct {
	verb  string
	name  string
	count int
}
