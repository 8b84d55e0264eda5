package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/neosearch/client"
	"github.com/a-h/neosearch/models"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

type BrowseCommand struct {
	ServerURL     string `help:"The URL of the search server." env:"NEOSEARCH_URL" default:"http://localhost:9020"`
	ServerAPIKey  string `help:"The API key for the search server." env:"NEOSEARCH_API_KEY" default:""`
	PreviewLength int    `help:"The number of characters of each result to show." default:"400"`
}

func (c BrowseCommand) Run(ctx context.Context) (err error) {
	sc := client.New(c.ServerURL, c.ServerAPIKey)
	search := func(ctx context.Context, query string) (models.SearchResponse, error) {
		return sc.Search(ctx, query)
	}
	p := tea.NewProgram(newModel(ctx, search, c.PreviewLength))
	if _, err = p.Run(); err != nil {
		return err
	}
	return nil
}

// Dracula color scheme.
var (
	Background  = lipgloss.Color("#282a36")
	CurrentLine = lipgloss.Color("#44475a")
	Foreground  = lipgloss.Color("#f8f8f2")
	Comment     = lipgloss.Color("#6272a4")
	Green       = lipgloss.Color("#50fa7b")
	Pink        = lipgloss.Color("#ff79c6")
	Purple      = lipgloss.Color("#bd93f9")
	Red         = lipgloss.Color("#ff5555")
)

var (
	headerStyle  = lipgloss.NewStyle().Background(CurrentLine).Foreground(Purple).Bold(true).Padding(1)
	titleStyle   = lipgloss.NewStyle().Foreground(Pink).Bold(true)
	idStyle      = lipgloss.NewStyle().Foreground(Comment)
	contentStyle = lipgloss.NewStyle().Foreground(Foreground)
	resultStyle  = lipgloss.NewStyle().Padding(1).Margin(1).MarginBottom(0).Background(Background)
	summaryStyle = lipgloss.NewStyle().Foreground(Green)
	errorStyle   = lipgloss.NewStyle().Foreground(Red).Bold(true)
)

const header = "neosearch: type a query and press enter, esc to quit"

type searchFunc func(ctx context.Context, query string) (models.SearchResponse, error)

type searchResultMsg struct {
	query string
	resp  models.SearchResponse
}

type searchErrorMsg struct {
	query string
	err   error
}

type model struct {
	viewport      viewport.Model
	textarea      textarea.Model
	ctx           context.Context
	search        searchFunc
	previewLength int
	searching     bool
	width         int
}

func newModel(ctx context.Context, search searchFunc, previewLength int) model {
	ta := textarea.New()
	ta.Placeholder = "Search..."
	ta.Focus()

	ta.Prompt = "┃ "
	ta.CharLimit = 280

	ta.SetHeight(1)

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()

	ta.ShowLineNumbers = false

	vp := viewport.New(80, 20)
	vp.SetContent(headerStyle.Render(header))

	ta.KeyMap.InsertNewline.SetEnabled(false)

	return model{
		ctx:           ctx,
		textarea:      ta,
		viewport:      vp,
		search:        search,
		previewLength: previewLength,
		width:         80,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.search(m.ctx, query)
		if err != nil {
			return searchErrorMsg{query: query, err: err}
		}
		return searchResultMsg{query: query, resp: resp}
	}
}

// preview shortens content to at most n characters.
func preview(content string, n int) string {
	content = strings.TrimSuffix(content, "...")
	var i int
	for j := range content {
		if i == n {
			return strings.TrimSpace(content[:j]) + "…"
		}
		i++
	}
	return strings.TrimSpace(content)
}

func formatResult(r models.SearchResult, width, previewLength int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(r.Title))
	sb.WriteString("\n")
	sb.WriteString(idStyle.Render(r.ID))
	sb.WriteString("\n\n")
	sb.WriteString(contentStyle.Render(wordwrap.String(preview(r.Content, previewLength), width)))
	return resultStyle.Render(sb.String())
}

func formatResults(query string, resp models.SearchResponse, width, previewLength int) string {
	var sb strings.Builder
	sb.WriteString(summaryStyle.Render(fmt.Sprintf("%d result(s) for %q", len(resp.Documents), query)))
	sb.WriteString("\n")
	for _, r := range resp.Documents {
		sb.WriteString(formatResult(r, width, previewLength))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchErrorMsg:
		m.searching = false
		m.viewport.SetContent(errorStyle.Render(wordwrap.String(fmt.Sprintf("Search for %q failed: %v", msg.query, msg.err), m.contentWidth())))
		return m, nil
	case searchResultMsg:
		m.searching = false
		m.viewport.SetContent(formatResults(msg.query, msg.resp, m.contentWidth(), m.previewLength))
		m.viewport.GotoTop()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - m.textarea.Height() - 3
		m.textarea.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case "enter":
			q := strings.TrimSpace(m.textarea.Value())
			if q == "" || m.searching {
				return m, nil
			}
			m.searching = true
			m.viewport.SetContent(summaryStyle.Render(fmt.Sprintf("Searching for %q...", q)))
			return m, m.runSearch(q)
		default:
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			return m, cmd
		}

	case cursor.BlinkMsg:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

// contentWidth leaves room for the padding and margin of each result.
func (m model) contentWidth() int {
	if m.width < 20 {
		return 74
	}
	return m.width - 6
}

func (m model) View() string {
	return fmt.Sprintf("%s\n\n%s",
		m.viewport.View(),
		m.textarea.View(),
	) + "\n\n"
}
