package previews

import (
	"github.com/john-rice/td/common"
	"github.com/john-rice/td/registry"
)

// Thumbnail is the outward-facing bundle handed to presentation layers.
type Thumbnail struct {
	Format common.PhotoFormat
	Width  uint16
	Height uint16
	File   *registry.FileDescriptor
}

// GetThumbnail builds the outward thumbnail object, or nil when the size
// has no content behind it. A baseline JPEG whose own tag marks it as a
// GIF-style still is exposed under the gif format instead.
func GetThumbnail(reg registry.FileRegistry, size PreviewSize, format common.PhotoFormat) *Thumbnail {
	if !size.FileRef.IsValid() {
		return nil
	}

	if format == common.FormatJpeg && size.Tag == TagGif {
		format = common.FormatGif
	}

	return &Thumbnail{
		Format: format,
		Width:  size.Dimensions.Width,
		Height: size.Dimensions.Height,
		File:   reg.GetFileDescriptor(size.FileRef),
	}
}
