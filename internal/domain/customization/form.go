package customization

import (
	"fmt"

	teeerrors "github.com/alexisbeaulieu97/teecraft/pkg/errors"
)

// Defaults seeds a new form.
type Defaults struct {
	Height           string
	Weight           string
	Build            Build
	PlaceholderImage string
}

// DefaultDefaults returns the values a freshly mounted form shows.
func DefaultDefaults() Defaults {
	return Defaults{
		Height:           "180",
		Weight:           "80",
		Build:            BuildAthletic,
		PlaceholderImage: PlaceholderImageURL,
	}
}

// Form holds the customization being assembled. Fields change only through
// setters, and each setter stores the already-validated value.
type Form struct {
	height string
	weight string
	build  Build
	text   string
	image  ImageRef
}

// NewForm creates a form from defaults. An invalid default build falls back
// to athletic.
func NewForm(d Defaults) *Form {
	build := d.Build
	if !build.Valid() {
		build = BuildAthletic
	}
	return &Form{
		height: d.Height,
		weight: d.Weight,
		build:  build,
		image:  PlaceholderImage(d.PlaceholderImage),
	}
}

// SetHeight stores the raw height. No range check is applied.
func (f *Form) SetHeight(raw string) {
	f.height = raw
}

// SetWeight stores the raw weight. No range check is applied.
func (f *Form) SetWeight(raw string) {
	f.weight = raw
}

// SetBuild commits b if it is one of the selectable builds.
func (f *Form) SetBuild(b Build) error {
	if !b.Valid() {
		return teeerrors.NewValidationError("build", fmt.Sprintf("must be one of %v, got %q", supportedBuilds, string(b)), nil)
	}
	f.build = b
	return nil
}

// SetText stores the constrained form of raw and returns it.
func (f *Form) SetText(raw string) string {
	f.text = ConstrainText(raw)
	return f.text
}

// SetImage replaces the current image and returns the one it displaced.
func (f *Form) SetImage(ref ImageRef) ImageRef {
	previous := f.image
	f.image = ref
	return previous
}

func (f *Form) Height() string  { return f.height }
func (f *Form) Weight() string  { return f.weight }
func (f *Form) Build() Build    { return f.build }
func (f *Form) Text() string    { return f.text }
func (f *Form) Image() ImageRef { return f.image }

// Snapshot returns a copy of the current values.
func (f *Form) Snapshot() Request {
	return Request{
		Height: f.height,
		Weight: f.weight,
		Build:  f.build,
		Text:   f.text,
		Image:  f.image,
	}
}
