package previews

import (
	"strconv"

	"github.com/john-rice/td/registry"
)

// SourceKind says why a preview size exists.
type SourceKind int

const (
	SourceLegacy SourceKind = iota
	SourceThumbnail
	SourceDialogPhotoSmall
	SourceDialogPhotoBig
	SourceStickerSetThumbnail
)

func (k SourceKind) String() string {
	switch k {
	case SourceThumbnail:
		return "thumbnail"
	case SourceDialogPhotoSmall:
		return "dialog_photo_small"
	case SourceDialogPhotoBig:
		return "dialog_photo_big"
	case SourceStickerSetThumbnail:
		return "sticker_set_thumbnail"
	default:
		return "legacy"
	}
}

// Source identifies where a preview size came from. ThumbnailTag is
// written back during decode when Kind is SourceThumbnail so later
// pipeline stages can tell registry entries for different thumbnails of
// the same file apart. Decode mutates the caller's Source in place; do
// not share one Source between concurrent decodes.
type Source struct {
	Kind         SourceKind
	FileType     registry.FileType
	ThumbnailTag uint8
}

func NewThumbnailSource(fileType registry.FileType) *Source {
	return &Source{Kind: SourceThumbnail, FileType: fileType}
}

// UniqueName derives the stem of a suggested file name for a preview of
// the given remote id.
func (s *Source) UniqueName(id int64) string {
	switch s.Kind {
	case SourceThumbnail:
		return strconv.FormatInt(id, 10) + "_" + strconv.Itoa(int(s.ThumbnailTag))
	case SourceDialogPhotoSmall:
		return strconv.FormatInt(id, 10) + "_small"
	case SourceDialogPhotoBig:
		return strconv.FormatInt(id, 10) + "_big"
	default:
		return strconv.FormatInt(id, 10)
	}
}

func (s *Source) key() string {
	return s.Kind.String() + "/" + s.FileType.String()
}
