// ABOUTME: Image asset held by the image-edit controller and the preview allocator contract
// ABOUTME: A preview reference is released exactly once, when replaced or on reset

package invocation

import "github.com/mauromedda/mindweaver/pkg/ai"

// Asset is the image selected for editing. PreviewRef is filled in by the
// controller when the asset is selected.
type Asset struct {
	Name       string
	MIMEType   string
	Data       []byte
	PreviewRef string
}

func (a Asset) image() ai.Image {
	return ai.Image{MIMEType: a.MIMEType, Data: a.Data}
}

// Previewer allocates display references for images and frees them.
type Previewer interface {
	Allocate(data []byte, mimeType string) (string, error)
	Release(ref string)
}
