// Package chat provides the interactive TUI for qajudge: a single input
// box, the growing evaluation history, and collapsible detail panels per
// record.
package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"qajudge/cmd/qajudge/ui"
	"qajudge/internal/config"
	"qajudge/internal/conversation"
)

// Submitter is the slice of the evaluation client the TUI needs.
type Submitter interface {
	Submit(ctx context.Context, question string) (*conversation.EvaluationRecord, error)
}

// Model is the Bubble Tea model for the interactive session. All mutation
// of the store, disclosure map, and in-flight flag happens inside Update,
// on the single event loop.
type Model struct {
	// UI components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   ui.Styles

	// Session state, owned here and nowhere else.
	store      *conversation.Store
	disclosure *conversation.Disclosure
	client     Submitter
	log        *zap.Logger
	sessionID  string

	// In-flight flag: set when a submission starts, cleared exactly once
	// by the completion message. While set, Enter is ignored.
	isLoading bool

	// errMsg holds the single visible error; replaced, never stacked.
	errMsg string

	// selected indexes into store.All(); the section hotkeys act on the
	// selected record.
	selected int

	width  int
	height int
	ready  bool

	inputHistory []string
	historyIndex int
}

// Messages for tea updates.
type (
	// recordMsg carries a completed evaluation back to the update loop.
	recordMsg struct {
		rec *conversation.EvaluationRecord
	}

	// submitErrMsg carries a failed submission.
	submitErrMsg struct {
		err error
	}

	// submitSkippedMsg signals the client rejected the input locally.
	submitSkippedMsg struct{}
)

// New builds the chat model.
func New(cfg *config.Config, client Submitter, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	styles := ui.NewStyles(ui.ThemeFor(cfg.Theme))

	ta := textarea.New()
	ta.Placeholder = "Ask any question (e.g., 'Explain quantum computing in simple terms')..."
	ta.Focus()
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 20)

	return Model{
		textarea:     ta,
		viewport:     vp,
		spinner:      sp,
		styles:       styles,
		store:        conversation.NewStore(),
		disclosure:   conversation.NewDisclosure(),
		client:       client,
		log:          log,
		sessionID:    uuid.NewString(),
		historyIndex: 0,
	}
}

// Init starts the cursor blink and spinner tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// submit runs the network call off the update loop and reports back via a
// typed message. This is the only suspension point in the program.
func (m Model) submit(question string) tea.Cmd {
	log := m.log
	client := m.client
	session := m.sessionID
	return func() tea.Msg {
		log.Info("submitting question",
			zap.String("session", session),
			zap.Int("question_len", len(question)))
		rec, err := client.Submit(context.Background(), question)
		if err != nil {
			return submitErrMsg{err: err}
		}
		if rec == nil {
			return submitSkippedMsg{}
		}
		return recordMsg{rec: rec}
	}
}

// Run starts the interactive program.
func Run(cfg *config.Config, client Submitter, log *zap.Logger) error {
	p := tea.NewProgram(New(cfg, client, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
