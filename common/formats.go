package common

// PhotoFormat is the container format of a photo or video preview. It
// governs which preview size variants are legal on the wire.
type PhotoFormat int

const (
	FormatEmpty PhotoFormat = iota
	FormatJpeg
	FormatPng
	FormatWebp
	FormatGif
	FormatTgs
	FormatMpeg4
	FormatWebm
)

var AllFormats = []PhotoFormat{FormatJpeg, FormatPng, FormatWebp, FormatGif, FormatTgs, FormatMpeg4, FormatWebm}

// String returns the file extension used for suggested file names.
func (f PhotoFormat) String() string {
	switch f {
	case FormatJpeg:
		return "jpg"
	case FormatPng:
		return "png"
	case FormatWebp:
		return "webp"
	case FormatGif:
		return "gif"
	case FormatTgs:
		return "tgs"
	case FormatMpeg4:
		return "mp4"
	case FormatWebm:
		return "webm"
	default:
		return "unknown"
	}
}

// SupportsPathData reports whether the format may carry vector path
// previews on the wire.
func (f PhotoFormat) SupportsPathData() bool {
	return f == FormatTgs || f == FormatWebp || f == FormatWebm
}

// MimeType returns the expected mime type for the format, or "" when the
// format has no stable one (tgs is gzipped json and sniffs as gzip).
func (f PhotoFormat) MimeType() string {
	switch f {
	case FormatJpeg:
		return "image/jpeg"
	case FormatPng:
		return "image/png"
	case FormatWebp:
		return "image/webp"
	case FormatGif:
		return "image/gif"
	case FormatMpeg4:
		return "video/mp4"
	case FormatWebm:
		return "video/webm"
	default:
		return ""
	}
}
