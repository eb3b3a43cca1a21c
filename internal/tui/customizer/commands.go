package customizer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
	"github.com/alexisbeaulieu97/teecraft/internal/preview"
	"github.com/alexisbeaulieu97/teecraft/internal/submit"
)

// loadImageCmd decodes the image off the update loop.
func loadImageCmd(seq int, path string, origin customization.ImageOrigin) tea.Cmd {
	return func() tea.Msg {
		return ImageLoadedMsg{Seq: seq, Preview: preview.Load(path, origin)}
	}
}

// submitCmd hands req to the submitter.
func submitCmd(ctx context.Context, s submit.Submitter, req customization.Request) tea.Cmd {
	return func() tea.Msg {
		if err := req.Validate(); err != nil {
			return SubmittedMsg{Request: req, Err: err}
		}
		if s == nil {
			return SubmittedMsg{Request: req}
		}
		return SubmittedMsg{Request: req, Err: s.Submit(ctx, req)}
	}
}
