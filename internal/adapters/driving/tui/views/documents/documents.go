// Package documents provides the batch document list view for the TUI.
package documents

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/tui/messages"
	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/tui/styles"
	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driving"
)

// View is the batch document list view.
type View struct {
	styles         *styles.Styles
	sessionService driving.SessionService

	batch        *domain.Batch
	documents    []domain.Document
	selected     int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
	scrollOffset int
}

// NewView creates a new documents view.
func NewView(s *styles.Styles, sessionService driving.SessionService) *View {
	return &View{
		styles:         s,
		sessionService: sessionService,
		documents:      []domain.Document{},
	}
}

// Init initialises the view and starts loading the current batch.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadDocuments()
}

// loadDocuments returns a command that loads the current batch's documents.
func (v *View) loadDocuments() tea.Cmd {
	return func() tea.Msg {
		if v.sessionService == nil {
			return messages.DocumentsLoaded{Err: fmt.Errorf("session service not available")}
		}

		ctx := context.Background()
		batch, err := v.sessionService.CurrentBatch(ctx)
		if err != nil {
			return messages.DocumentsLoaded{Err: err}
		}

		docs, err := v.sessionService.ListDocuments(ctx, batch.ID)
		return messages.DocumentsLoaded{
			BatchID:   batch.ID,
			Documents: docs,
			Err:       err,
		}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DocumentsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.documents = msg.Documents
			v.err = nil
			if v.selected >= len(v.documents) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.documents)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "enter":
		if v.selected < len(v.documents) {
			doc := v.documents[v.selected]
			return v, func() tea.Msg {
				return messages.DocumentSelected{Document: doc}
			}
		}
	case "r":
		v.loading = true
		return v, v.loadDocuments()
	}

	return v, nil
}

// adjustScroll adjusts the scroll offset to keep the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 8
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the documents view.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Documents (%d)", len(v.documents))
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading documents..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if len(v.documents) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents in the current batch. Run 'veridoc process' first."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.documents) && i < v.scrollOffset+visibleItems; i++ {
		b.WriteString(v.renderDocument(i, &v.documents[i]))
		b.WriteString("\n")
	}

	if len(v.documents) > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, len(v.documents)),
			len(v.documents))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderDocument renders a single document line.
func (v *View) renderDocument(index int, doc *domain.Document) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	name := doc.Name
	if name == "" {
		name = doc.ID
	}

	summary := doc.Summary
	maxSummaryLen := v.width - len(name) - 8
	if maxSummaryLen < 10 {
		maxSummaryLen = 10
	}
	if len(summary) > maxSummaryLen {
		summary = summary[:maxSummaryLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-14s  %s", indicator, name, summary))
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-14s  ", name)) +
		v.styles.Muted.Render(summary)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] navigate  [enter] review fields  [r] reload  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Documents returns the current list of documents.
func (v *View) Documents() []domain.Document {
	return v.documents
}

// SelectedIndex returns the currently selected document index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedDocument returns the currently selected document.
func (v *View) SelectedDocument() *domain.Document {
	if v.selected < len(v.documents) {
		return &v.documents[v.selected]
	}
	return nil
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
