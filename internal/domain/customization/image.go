package customization

// PlaceholderImageURL is shown until the user supplies an image.
const PlaceholderImageURL = "https://images.pexels.com/photos/1004016/pexels-photo-1004016.jpeg?auto=compress&w=400&q=80"

// ImageSizeHint is the advertised upload limit. It is displayed, not enforced.
const ImageSizeHint int64 = 10 << 20

// ImageOrigin records how an image reference entered the form.
type ImageOrigin string

const (
	OriginPlaceholder ImageOrigin = "placeholder"
	OriginPicker      ImageOrigin = "picker"
	OriginDrop        ImageOrigin = "drop"
)

// ImageRef is the handle to the image currently shown in the preview.
type ImageRef struct {
	Source string      `yaml:"source" validate:"required"`
	Name   string      `yaml:"name,omitempty"`
	Size   int64       `yaml:"size,omitempty"`
	Origin ImageOrigin `yaml:"origin" validate:"oneof=placeholder picker drop"`
}

// PlaceholderImage returns the reference for the remote default image.
func PlaceholderImage(url string) ImageRef {
	if url == "" {
		url = PlaceholderImageURL
	}
	return ImageRef{Source: url, Origin: OriginPlaceholder}
}

// IsPlaceholder reports whether the reference points at the default image.
func (r ImageRef) IsPlaceholder() bool {
	return r.Origin == OriginPlaceholder
}

// DisplayName is the label shown under the drop zone.
func (r ImageRef) DisplayName() string {
	if r.IsPlaceholder() || r.Name == "" {
		return "No image selected"
	}
	return r.Name
}

// ExceedsSizeHint reports whether the image is larger than limit bytes.
// A non-positive limit falls back to ImageSizeHint.
func (r ImageRef) ExceedsSizeHint(limit int64) bool {
	if limit <= 0 {
		limit = ImageSizeHint
	}
	return r.Size > limit
}
