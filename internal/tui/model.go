package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/glabrego/newsdeck/internal/digest"
	"github.com/glabrego/newsdeck/internal/news"
	article "github.com/glabrego/newsdeck/internal/render/article"
	"github.com/glabrego/newsdeck/internal/tui/actions"
	"github.com/glabrego/newsdeck/internal/tui/focus"
	"github.com/glabrego/newsdeck/internal/tui/grid"
	"github.com/glabrego/newsdeck/internal/tui/platform"
	"github.com/glabrego/newsdeck/internal/tui/state"
	tuitheme "github.com/glabrego/newsdeck/internal/tui/theme"
	tuiview "github.com/glabrego/newsdeck/internal/tui/view"
)

const statusTTL = 3 * time.Second

// Focus zones outside the modal, in tab order.
const (
	zoneNav      = "nav"
	zoneSearch   = "search"
	zoneGrid     = "grid"
	zoneTrending = "trending"
)

var zoneOrder = focus.Controls{zoneNav, zoneSearch, zoneGrid, zoneTrending}

type Model struct {
	service     actions.Service
	logger      *zap.Logger
	theme       tuitheme.Theme
	articles    []news.Article
	trending    []news.TrendingTopic
	view        state.ViewState
	visible     []news.Article
	counts      map[string]int
	cursor      int
	topicCursor int
	zones       focus.Trap
	modal       tuiview.Modal
	modalTrap   focus.Trap
	search      textinput.Model
	body        viewport.Model
	width       int
	height      int
	loading     bool
	status      string
	statusID    int
	err         error
	openURLFn   func(string) error
	copyURLFn   func(string) error
	nowFn       func() time.Time
}

func NewModel(service actions.Service, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	search := textinput.New()
	search.Placeholder = tuiview.SearchPlaceholder
	search.Prompt = "/ "

	m := Model{
		service:   service,
		logger:    logger,
		theme:     tuitheme.Default(),
		view:      state.Initial(),
		zones:     focus.NewTrap(zoneOrder).Focus(zoneGrid),
		search:    search,
		body:      viewport.New(0, 0),
		loading:   service != nil,
		openURLFn: platform.OpenURLInBrowser,
		copyURLFn: platform.CopyToClipboard,
		nowFn:     time.Now,
	}
	m.refilter()
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	return actions.LoadSnapshotCmd(m.service)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case actions.SnapshotLoadedMsg:
		m.loading = false
		m.err = nil
		m.articles = msg.Snapshot.Articles
		m.trending = msg.Snapshot.Trending
		m.refilter()
		m.resize()
		m.logger.Info("snapshot loaded",
			zap.Int("articles", len(m.articles)),
			zap.Int("trending", len(m.trending)),
			zap.Duration("duration", msg.Duration))
		return m.setStatus(fmt.Sprintf("Loaded %s articles", humanize.Comma(int64(len(m.articles)))), statusTTL)
	case actions.SnapshotErrorMsg:
		m.loading = false
		m.err = msg.Err
		m.logger.Error("snapshot load failed", zap.Error(msg.Err))
		return m, nil
	case actions.URLActionSuccessMsg:
		m.err = nil
		return m.setStatus(msg.Status, statusTTL)
	case actions.URLActionErrorMsg:
		m.logger.Warn("image action failed", zap.Error(msg.Err))
		return m.setStatus(msg.Err.Error(), 4*time.Second)
	case actions.ClearStatusMsg:
		if msg.Seq == m.statusID {
			m.status = ""
		}
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if m.view.IsOpen() {
			return m.handleModalKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.zones.Is(zoneSearch) {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "x":
		return m.closeArticle(), nil
	case "tab":
		m.modalTrap = m.modalTrap.Next()
		return m, nil
	case "shift+tab":
		m.modalTrap = m.modalTrap.Prev()
		return m, nil
	case "enter", " ":
		return m.activateControl(m.modalTrap.Current())
	case "o":
		return m.activateControl(tuiview.ControlOpen)
	case "y":
		return m.activateControl(tuiview.ControlCopy)
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.focusZone(m.zones.Next())
	case "shift+tab":
		return m.focusZone(m.zones.Prev())
	case "ctrl+l":
		return m.applySearch(""), nil
	}

	if m.zones.Is(zoneSearch) {
		switch key {
		case "esc", "enter":
			return m.focusZone(m.zones.Focus(zoneGrid))
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if value := m.search.Value(); value != m.view.Search {
			m.view = m.view.SetSearch(value)
			m.refilter()
		}
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "/":
		return m.focusZone(m.zones.Focus(zoneSearch))
	case "1", "2", "3", "4", "5":
		n, _ := strconv.Atoi(key)
		categories := news.NavCategories()
		if n <= len(categories) {
			return m.selectCategory(categories[n-1]), nil
		}
		return m, nil
	}

	switch m.zones.Current() {
	case zoneNav:
		return m.handleNavKey(key)
	case zoneGrid:
		return m.handleGridKey(key)
	case zoneTrending:
		return m.handleTrendingKey(key)
	}
	return m, nil
}

func (m Model) handleNavKey(key string) (tea.Model, tea.Cmd) {
	categories := news.NavCategories()
	current := 0
	for i, c := range categories {
		if c == m.view.Category {
			current = i
		}
	}
	switch key {
	case "left", "h":
		return m.selectCategory(categories[state.ClampCursor(current-1, len(categories))]), nil
	case "right", "l":
		return m.selectCategory(categories[state.ClampCursor(current+1, len(categories))]), nil
	case "enter", "down", "j":
		return m.focusZone(m.zones.Focus(zoneGrid))
	}
	return m, nil
}

func (m Model) handleGridKey(key string) (tea.Model, tea.Cmd) {
	if len(m.visible) == 0 {
		return m, nil
	}
	rows := m.gridRows(m.layout())
	switch key {
	case "up", "k":
		m.cursor = grid.Move(rows, m.cursor, -1, 0)
	case "down", "j":
		m.cursor = grid.Move(rows, m.cursor, 1, 0)
	case "left", "h":
		m.cursor = grid.Move(rows, m.cursor, 0, -1)
	case "right", "l":
		m.cursor = grid.Move(rows, m.cursor, 0, 1)
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.visible) - 1
	case "enter":
		return m.openArticle(m.cursor), nil
	}
	return m, nil
}

func (m Model) handleTrendingKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		m.topicCursor = state.ClampCursor(m.topicCursor-1, len(m.trending))
	case "down", "j":
		m.topicCursor = state.ClampCursor(m.topicCursor+1, len(m.trending))
	case "enter":
		return m.activateTopic()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	l := m.layout()

	if m.view.IsOpen() {
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			var cmd tea.Cmd
			m.body, cmd = m.body.Update(msg)
			return m, cmd
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}
		bounds := tuiview.ModalBounds(l.width, l.height)
		if !bounds.Contains(msg.X, msg.Y) {
			return m.closeArticle(), nil
		}
		if control, ok := tuiview.ButtonAt(bounds, m.modal, msg.X, msg.Y); ok {
			m.modalTrap = m.modalTrap.Focus(control)
			return m.activateControl(control)
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if l.grid.Contains(msg.X, msg.Y) && len(m.visible) > 0 {
			step := 1
			if msg.Button == tea.MouseButtonWheelUp {
				step = -1
			}
			m.cursor = grid.Move(m.gridRows(l), m.cursor, step, 0)
		}
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	switch {
	case msg.Y == 0:
		tabs := tuiview.NavTabs(news.NavCategories(), m.counts)
		if name, ok := tuiview.TabAt(tabs, msg.X); ok {
			m.zones = m.zones.Focus(zoneNav)
			m.search.Blur()
			return m.selectCategory(name), nil
		}
	case l.search.Contains(msg.X, msg.Y):
		return m.focusZone(m.zones.Focus(zoneSearch))
	case l.grid.Contains(msg.X, msg.Y):
		rows := m.gridRows(l)
		start, _ := m.gridWindow(l, rows)
		row := start + (msg.Y-l.grid.Y)/tuiview.CardHeight
		if idx, ok := grid.CellAt(rows, row, msg.X-l.grid.X, l.grid.W, l.columns); ok {
			m.zones = m.zones.Focus(zoneGrid)
			m.search.Blur()
			return m.openArticle(idx), nil
		}
	case l.trending.Contains(msg.X, msg.Y):
		i := msg.Y - l.trending.Y - 1
		if i >= 0 && i < len(m.trending) {
			m.zones = m.zones.Focus(zoneTrending)
			m.search.Blur()
			m.topicCursor = i
			return m.activateTopic()
		}
	}
	return m, nil
}

func (m Model) focusZone(zones focus.Trap) (tea.Model, tea.Cmd) {
	m.zones = zones
	if zones.Is(zoneSearch) {
		cmd := m.search.Focus()
		return m, cmd
	}
	m.search.Blur()
	return m, nil
}

func (m Model) selectCategory(category string) Model {
	next := m.view.SelectCategory(category)
	if next.Category == m.view.Category {
		return m
	}
	m.view = next
	m.refilter()
	m.logger.Debug("category selected", zap.String("category", category), zap.Int("results", len(m.visible)))
	return m
}

func (m Model) applySearch(query string) Model {
	m.view = m.view.SetSearch(query)
	m.search.SetValue(query)
	m.refilter()
	return m
}

func (m Model) activateTopic() (tea.Model, tea.Cmd) {
	if len(m.trending) == 0 {
		return m, nil
	}
	topic := m.trending[state.ClampCursor(m.topicCursor, len(m.trending))]
	m = m.applySearch(topic.Name)
	m.logger.Debug("trending topic activated", zap.String("topic", topic.Name), zap.Int("results", len(m.visible)))
	return m.setStatus("Trending: "+topic.Name, statusTTL)
}

func (m Model) openArticle(index int) Model {
	if index < 0 || index >= len(m.visible) {
		return m
	}
	a := m.visible[index]
	m.cursor = index
	m.view = m.view.OpenArticle(a)
	m.modal = tuiview.NewModal(a)
	m.modalTrap = focus.NewTrap(m.modal)
	m.search.Blur()
	m.resize()
	m.body.GotoTop()
	m.logger.Debug("article opened", zap.String("id", a.ID))
	return m
}

func (m Model) closeArticle() Model {
	m.view = m.view.CloseArticle()
	m.modal = tuiview.Modal{}
	m.modalTrap = focus.Trap{}
	if m.zones.Is(zoneSearch) {
		m.search.Focus()
	}
	return m
}

func (m Model) activateControl(control string) (tea.Model, tea.Cmd) {
	switch control {
	case tuiview.ControlClose:
		return m.closeArticle(), nil
	case tuiview.ControlOpen, tuiview.ControlCopy:
		m.modalTrap = m.modalTrap.Focus(control)
		url, err := platform.ValidateURL(m.modal.ImageURL)
		if err != nil {
			return m.setStatus(err.Error(), 4*time.Second)
		}
		if control == tuiview.ControlOpen {
			return m, actions.OpenURLCmd(url, m.openURLFn, m.copyURLFn)
		}
		return m, actions.CopyURLCmd(url, m.copyURLFn)
	}
	return m, nil
}

func (m Model) setStatus(status string, ttl time.Duration) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusID++
	return m, actions.ClearStatusCmd(m.statusID, ttl)
}

// refilter recomputes the visible list from the source articles and the view
// state. The cursor returns to the first card.
func (m *Model) refilter() {
	m.visible = digest.Filter(m.articles, m.view.Category, m.view.Search)
	m.counts = digest.CountByCategory(m.articles, m.view.Search)
	m.cursor = 0
	m.topicCursor = state.ClampCursor(m.topicCursor, len(m.trending))
}

func (m *Model) resize() {
	l := m.layout()
	m.search.Width = max(1, l.search.W-2-ansi.StringWidth(m.search.Prompt)-1)
	if !m.view.IsOpen() {
		return
	}
	bodyW, bodyH := tuiview.ModalBodySize(tuiview.ModalBounds(l.width, l.height))
	m.body.Width = bodyW
	m.body.Height = bodyH
	m.body.SetContent(strings.Join(article.ContentLines(*m.view.Selected, bodyW), "\n"))
}

func (m Model) View() string {
	l := m.layout()
	if m.view.IsOpen() {
		bounds := tuiview.ModalBounds(l.width, l.height)
		dialog := tuiview.ModalView(tuiview.ModalInput{
			Modal:  m.modal,
			Trap:   m.modalTrap,
			Body:   m.body.View(),
			Bounds: bounds,
			Now:    m.nowFn(),
		}, m.theme)
		screen := lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, dialog,
			lipgloss.WithWhitespaceChars("░"),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("#cbd5e1")))
		// The last line is backdrop unless the modal fills the screen.
		if bounds.Y+bounds.H < l.height {
			lines := strings.Split(screen, "\n")
			lines[len(lines)-1] = m.theme.Zone.Render(ansi.Truncate(tuiview.Toolbar(true), l.width, "…"))
			screen = strings.Join(lines, "\n")
		}
		return screen
	}

	tabs := tuiview.NavTabs(news.NavCategories(), m.counts)
	nav := tuiview.NavBar(tabs, m.view.Category, m.zones.Is(zoneNav), l.width, m.theme)
	searchBar := tuiview.SearchBar(m.search.View(), l.search.W, m.zones.Is(zoneSearch), m.theme)
	trending := tuiview.TrendingPanel(m.trending, m.topicCursor, m.zones.Is(zoneTrending), l.trending.W, m.theme)
	cards := lipgloss.NewStyle().
		Width(l.grid.W).
		MaxWidth(l.grid.W).
		Height(l.grid.H).
		MaxHeight(l.grid.H).
		Render(m.gridView(l))

	var body string
	if l.narrow {
		body = lipgloss.JoinVertical(lipgloss.Left, searchBar, cards, trending)
	} else {
		sidebar := lipgloss.JoinVertical(lipgloss.Left, searchBar, "", trending)
		body = lipgloss.JoinHorizontal(lipgloss.Top, cards, " ", sidebar)
	}

	status := tuiview.StatusLine(tuiview.StatusInput{
		Loading:  m.loading,
		Status:   m.status,
		Err:      m.err,
		Results:  len(m.visible),
		Category: m.view.Category,
		Search:   m.view.Search,
	}, m.theme)
	footer := ansi.Truncate(status, l.width, "…") + "\n" + m.theme.Zone.Render(ansi.Truncate(tuiview.Toolbar(false), l.width, "…"))

	return nav + "\n" + body + "\n" + footer
}

func (m Model) gridView(l layout) string {
	if m.loading && len(m.articles) == 0 {
		return m.theme.Empty.Render("Loading articles...")
	}
	rows := m.gridRows(l)
	start, end := m.gridWindow(l, rows)
	return tuiview.Grid(tuiview.GridInput{
		Articles: m.visible,
		Rows:     rows,
		Start:    start,
		End:      end,
		Columns:  l.columns,
		Width:    l.grid.W,
		Cursor:   m.cursor,
		Focused:  m.zones.Is(zoneGrid),
		Now:      m.nowFn(),
	}, m.theme)
}

// View state accessors for callers outside the event loop.

func (m Model) ViewState() state.ViewState { return m.view }

func (m Model) Visible() []news.Article { return m.visible }
