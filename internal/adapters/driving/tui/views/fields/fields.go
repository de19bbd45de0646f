// Package fields provides the field ledger editor view for the TUI.
// It shows a document's extracted fields with live coverage and lets
// the user edit, add, and remove rows before saving a validation.
package fields

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/tui/components/input"
	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/tui/messages"
	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/tui/styles"
	"github.com/veridoc-labs/veridoc-cli/internal/core/domain"
	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driving"
)

// editTarget identifies which cell of the selected row is being edited.
type editTarget int

const (
	editNone editTarget = iota
	editLabel
	editText
)

// View is the field ledger editor view.
type View struct {
	styles            *styles.Styles
	ledgerService     driving.LedgerService
	validationService driving.ValidationService

	document *domain.Document
	fields   []domain.Field
	coverage *domain.Coverage

	selected     int
	scrollOffset int
	editing      editTarget
	editInput    *input.FieldInput

	width   int
	height  int
	ready   bool
	err     error
	loading bool
	status  string
}

// NewView creates a new field editor view.
func NewView(
	s *styles.Styles,
	ledgerService driving.LedgerService,
	validationService driving.ValidationService,
) *View {
	return &View{
		styles:            s,
		ledgerService:     ledgerService,
		validationService: validationService,
		fields:            []domain.Field{},
		editInput:         input.NewFieldInput(s),
	}
}

// SetDocument sets the document under review and loads its ledger.
func (v *View) SetDocument(doc *domain.Document) tea.Cmd {
	v.document = doc
	v.fields = []domain.Field{}
	v.coverage = nil
	v.selected = 0
	v.scrollOffset = 0
	v.editing = editNone
	v.err = nil
	v.status = ""
	v.loading = true
	return tea.Batch(v.loadFields(), v.loadCoverage())
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// loadFields returns a command that loads the document's ledger.
func (v *View) loadFields() tea.Cmd {
	return func() tea.Msg {
		if v.document == nil || v.ledgerService == nil {
			return messages.FieldsLoaded{Err: fmt.Errorf("ledger service not available")}
		}

		fields, err := v.ledgerService.List(context.Background(), v.document.ID)
		return messages.FieldsLoaded{
			DocumentID: v.document.ID,
			Fields:     fields,
			Err:        err,
		}
	}
}

// loadCoverage returns a command that recomputes the document's coverage.
func (v *View) loadCoverage() tea.Cmd {
	return func() tea.Msg {
		if v.document == nil || v.validationService == nil {
			return messages.CoverageUpdated{Err: fmt.Errorf("validation service not available")}
		}

		cov, err := v.validationService.Coverage(context.Background(), v.document.ID)
		return messages.CoverageUpdated{
			DocumentID: v.document.ID,
			Coverage:   cov,
			Err:        err,
		}
	}
}

// Update handles messages for the field editor view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.editInput.SetWidth(msg.Width)
		return v, nil

	case tea.KeyMsg:
		if v.editing != editNone {
			return v.handleEditKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.FieldsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.fields = msg.Fields
			v.err = nil
			if v.selected >= len(v.fields) && v.selected > 0 {
				v.selected = len(v.fields) - 1
			}
		}
		return v, nil

	case messages.CoverageUpdated:
		if msg.Err == nil {
			v.coverage = msg.Coverage
		}
		return v, nil

	case messages.FieldEdited:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		// Reload the ledger and recount coverage after every mutation.
		return v, tea.Batch(v.loadFields(), v.loadCoverage())

	case messages.SnapshotSaved:
		if msg.Err != nil {
			v.err = msg.Err
		} else if msg.Record != nil {
			v.status = fmt.Sprintf("Validation saved: %s", msg.Record.Snapshot.ID)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in list mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	v.status = ""

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.fields)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "enter", "e":
		if v.selected < len(v.fields) {
			return v, v.startEdit(editText)
		}
	case "l":
		if v.selected < len(v.fields) {
			return v, v.startEdit(editLabel)
		}
	case "a":
		return v, v.addRow()
	case "d":
		if v.selected < len(v.fields) {
			return v, v.deleteRow(v.fields[v.selected].ID)
		}
	case "s":
		return v, v.saveValidation()
	case "r":
		v.loading = true
		return v, tea.Batch(v.loadFields(), v.loadCoverage())
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDocuments}
		}
	}

	return v, nil
}

// handleEditKeyMsg handles key presses while editing a cell.
func (v *View) handleEditKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return v, v.commitEdit()
	case tea.KeyEsc:
		v.editing = editNone
		v.editInput.Blur()
		return v, nil
	default:
		var cmd tea.Cmd
		v.editInput, cmd = v.editInput.Update(msg)
		return v, cmd
	}
}

// startEdit opens the inline editor on the selected row's cell.
func (v *View) startEdit(target editTarget) tea.Cmd {
	field := v.fields[v.selected]

	v.editing = target
	if target == editLabel {
		v.editInput.SetLabel("Label")
		v.editInput.SetValue(field.Label)
	} else {
		v.editInput.SetLabel("Value")
		v.editInput.SetValue(field.Text)
	}

	return v.editInput.Focus()
}

// commitEdit writes the edited cell back through the ledger service.
func (v *View) commitEdit() tea.Cmd {
	target := v.editing
	value := v.editInput.Value()
	field := v.fields[v.selected]

	v.editing = editNone
	v.editInput.Blur()

	column := domain.ColumnText
	if target == editLabel {
		column = domain.ColumnLabel
	}

	return func() tea.Msg {
		err := v.ledgerService.Edit(context.Background(), v.document.ID, field.ID, column, value)
		return messages.FieldEdited{DocumentID: v.document.ID, Err: err}
	}
}

// addRow returns a command that appends an empty ledger row.
func (v *View) addRow() tea.Cmd {
	return func() tea.Msg {
		if v.document == nil || v.ledgerService == nil {
			return messages.FieldEdited{Err: fmt.Errorf("ledger service not available")}
		}

		_, err := v.ledgerService.AddRow(context.Background(), v.document.ID)
		return messages.FieldEdited{DocumentID: v.document.ID, Err: err}
	}
}

// deleteRow returns a command that removes a ledger row.
func (v *View) deleteRow(fieldID string) tea.Cmd {
	return func() tea.Msg {
		err := v.ledgerService.DeleteRow(context.Background(), v.document.ID, fieldID)
		return messages.FieldEdited{DocumentID: v.document.ID, Err: err}
	}
}

// saveValidation returns a command that records a validation snapshot.
func (v *View) saveValidation() tea.Cmd {
	return func() tea.Msg {
		if v.document == nil || v.validationService == nil {
			return messages.SnapshotSaved{Err: fmt.Errorf("validation service not available")}
		}

		record, err := v.validationService.Save(context.Background(), v.document.ID)
		return messages.SnapshotSaved{Record: record, Err: err}
	}
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

// visibleItemCount returns the number of rows that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, coverage header, help, and padding
	reserved := 10
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the field editor view.
func (v *View) View() string {
	var b strings.Builder

	name := "Unknown"
	if v.document != nil {
		name = v.document.Name
	}
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Fields - %s", name)))
	b.WriteString("\n")
	b.WriteString(v.renderCoverage())
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading fields..."))
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

	if len(v.fields) == 0 {
		b.WriteString(v.styles.Muted.Render("No fields extracted. Press 'a' to add one."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.fields) && i < v.scrollOffset+visibleItems; i++ {
		b.WriteString(v.renderField(i, &v.fields[i]))
		b.WriteString("\n")
	}

	if len(v.fields) > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, len(v.fields)),
			len(v.fields))))
	}

	if v.editing != editNone {
		b.WriteString("\n\n")
		b.WriteString(v.editInput.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[enter] confirm  [esc] cancel"))
		return b.String()
	}

	if v.status != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Success.Render(v.status))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderCoverage renders the live coverage header line.
func (v *View) renderCoverage() string {
	if v.coverage == nil {
		return v.styles.Muted.Render("Coverage: computing...")
	}

	rate := v.coverage.CompletionRate
	counts := fmt.Sprintf("%d/%d mandatory identified, %d extracted",
		v.coverage.FieldsIdentified, v.coverage.TotalMandatory, v.coverage.TotalExtracted)

	return v.styles.Rate(rate).Render(fmt.Sprintf("%.1f%%", rate)) +
		v.styles.Muted.Render("  "+counts)
}

// renderField renders a single ledger row.
func (v *View) renderField(index int, field *domain.Field) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	var payload *domain.StructuredPayload
	if v.document != nil {
		payload = v.document.Payload
	}
	class := domain.Classify(field.Label, payload)

	label := field.Label
	if label == "" {
		label = "(unnamed)"
	}

	maxLabelLen := 28
	if len(label) > maxLabelLen {
		label = label[:maxLabelLen-3] + "..."
	}

	text := field.Text
	maxTextLen := v.width - maxLabelLen - 20
	if maxTextLen < 10 {
		maxTextLen = 10
	}
	if len(text) > maxTextLen {
		text = text[:maxTextLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(
			fmt.Sprintf("%s%-*s  %-12s %s", indicator, maxLabelLen, label, class.String(), text))
	}

	classStyle := v.styles.Additional
	if class == domain.ClassMandatoryPresent {
		classStyle = v.styles.Mandatory
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxLabelLen, label)) +
		classStyle.Render(fmt.Sprintf("%-12s ", class.String())) +
		v.styles.Muted.Render(text)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render(
		"[↑/↓] navigate  [enter] edit value  [l] edit label  [a] add  [d] delete  [s] save  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.editInput.SetWidth(width)
}

// Fields returns the current ledger rows.
func (v *View) Fields() []domain.Field {
	return v.fields
}

// Coverage returns the last computed coverage.
func (v *View) Coverage() *domain.Coverage {
	return v.coverage
}

// SelectedIndex returns the currently selected row index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// IsEditing returns true if the inline editor is open.
func (v *View) IsEditing() bool {
	return v.editing != editNone
}

// Status returns the current status line.
func (v *View) Status() string {
	return v.status
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
