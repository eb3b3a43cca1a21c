package customizer

import (
	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
	"github.com/alexisbeaulieu97/teecraft/internal/preview"
)

// Field identifies a focusable control.
type Field int

const (
	FieldDropZone Field = iota
	FieldHeight
	FieldWeight
	FieldBuild
	FieldText
	FieldSubmit
)

func (f Field) String() string {
	switch f {
	case FieldDropZone:
		return "drop zone"
	case FieldHeight:
		return "height"
	case FieldWeight:
		return "weight"
	case FieldBuild:
		return "build"
	case FieldText:
		return "text"
	case FieldSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// ImageLoadedMsg carries a decoded (or broken) preview back to the form.
// Seq identifies the load request; only the latest one is displayed.
type ImageLoadedMsg struct {
	Seq     int
	Preview preview.Preview
}

// SubmittedMsg reports the outcome of a submission.
type SubmittedMsg struct {
	Request customization.Request
	Err     error
}
