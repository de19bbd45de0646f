package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/tui/messages"
	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/tui/styles"
	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/tui/views/documents"
	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/tui/views/fields"
	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// documentsView lists the current batch's documents.
	documentsView *documents.View

	// fieldsView is the field ledger editor.
	fieldsView *fields.View

	// selectedDocument tracks the document under review.
	selectedDocument *domain.Document

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	documentsView := documents.NewView(s, ports.Session)
	fieldsView := fields.NewView(s, ports.Ledger, ports.Validation)

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		documentsView: documentsView,
		fieldsView:    fieldsView,
		currentView:   messages.ViewDocuments, // Start with the document list
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("veridoc - Invoice Review"),
		a.documentsView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.documentsView.SetDimensions(msg.Width, msg.Height)
		a.fieldsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewDocuments:
			// q quits only from the top-level list
			if msg.String() == "q" {
				return a, tea.Quit
			}
			if msg.String() == "?" {
				a.currentView = messages.ViewHelp
				return a, nil
			}
			a.documentsView, cmd = a.documentsView.Update(msg)
			return a, cmd

		case messages.ViewFields:
			a.fieldsView, cmd = a.fieldsView.Update(msg)
			a.err = a.fieldsView.Err()
			return a, cmd

		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "q" {
				a.currentView = messages.ViewDocuments
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewDocuments {
			// Re-read the batch; ledger edits may have changed summaries
			return a, a.documentsView.Init()
		}
		return a, nil

	case messages.DocumentSelected:
		a.selectedDocument = &msg.Document
		a.currentView = messages.ViewFields
		return a, a.fieldsView.SetDocument(&msg.Document)

	case messages.DocumentsLoaded:
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.FieldsLoaded, messages.CoverageUpdated,
		messages.FieldEdited, messages.SnapshotSaved:
		a.fieldsView, cmd = a.fieldsView.Update(msg)
		a.err = a.fieldsView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewDocuments:
			a.documentsView, cmd = a.documentsView.Update(msg)
		case messages.ViewFields:
			a.fieldsView, cmd = a.fieldsView.Update(msg)
		case messages.ViewHelp:
			// Help view has no error state
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewFields:
		a.fieldsView, cmd = a.fieldsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewDocuments:
		return a.documentsView.View()
	case messages.ViewFields:
		return a.fieldsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.documentsView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back
  ctrl+c      Quit

Documents:
  j/k, ↑/↓    Navigate documents
  enter       Review fields
  r           Reload
  q           Quit

Fields:
  j/k, ↑/↓    Navigate rows
  enter / e   Edit value
  l           Edit label
  a           Add row
  d           Delete row
  s           Save validation
  esc         Back to documents

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SelectedDocument returns the document under review.
func (a *App) SelectedDocument() *domain.Document {
	return a.selectedDocument
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.documentsView.SetDimensions(width, height)
	a.fieldsView.SetDimensions(width, height)
}
