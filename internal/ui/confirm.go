package ui

import "github.com/kiwari-pos/pedidos-web/internal/enum"

// Prompt is the yes/no confirmation dialog. The zero value is closed and
// renders nothing. ConfirmAction and CancelAction are the URLs the dialog
// buttons post to; the backdrop posts CancelAction too.
type Prompt struct {
	Open          bool
	Title         string
	Message       string
	ConfirmText   string
	CancelText    string
	Severity      enum.Severity
	ConfirmAction string
	CancelAction  string
}

// NewPrompt returns an open prompt with the default labels and danger
// severity.
func NewPrompt(title, message, confirmAction, cancelAction string) Prompt {
	return Prompt{
		Open:          true,
		Title:         title,
		Message:       message,
		ConfirmText:   "Confirmar",
		CancelText:    "Cancelar",
		Severity:      enum.SeverityDanger,
		ConfirmAction: confirmAction,
		CancelAction:  cancelAction,
	}
}

// deletePrompt is the prompt every screen shows before removing a row.
func deletePrompt(title, message, confirmAction, cancelAction string) Prompt {
	p := NewPrompt(title, message, confirmAction, cancelAction)
	p.ConfirmText = "Sí, Eliminar"
	return p
}

func (p Prompt) ButtonClass() string {
	switch p.Severity {
	case enum.SeverityWarning:
		return "bg-yellow-600 hover:bg-yellow-700"
	case enum.SeverityInfo:
		return "bg-blue-600 hover:bg-blue-700"
	}
	return "bg-red-600 hover:bg-red-700"
}

func (p Prompt) IconClass() string {
	switch p.Severity {
	case enum.SeverityWarning:
		return "text-yellow-600"
	case enum.SeverityInfo:
		return "text-blue-600"
	}
	return "text-red-600"
}

func (p Prompt) BadgeClass() string {
	switch p.Severity {
	case enum.SeverityWarning:
		return "bg-yellow-100"
	case enum.SeverityInfo:
		return "bg-blue-100"
	}
	return "bg-red-100"
}
