package wire

// PhotoSizeClass is the closed set of photo size variants a server can
// send. Decoding type-switches over every concrete variant; an unknown
// implementation is a decoder/encoder version mismatch and panics.
type PhotoSizeClass interface {
	photoSizeClass()
}

// PhotoSizeEmpty is the "no preview available" variant.
type PhotoSizeEmpty struct {
	Type string
}

// PhotoSize is a plain preview size with no embedded content.
type PhotoSize struct {
	Type string
	W    int32
	H    int32
	Size int32
}

// PhotoCachedSize carries the referenced content inline.
type PhotoCachedSize struct {
	Type  string
	W     int32
	H     int32
	Bytes []byte
}

// PhotoStrippedSize carries a packed minithumbnail blob.
type PhotoStrippedSize struct {
	Type  string
	Bytes []byte
}

// PhotoSizeProgressive describes a progressively encoded image. Sizes
// holds the byte length of every encoding scan.
type PhotoSizeProgressive struct {
	Type  string
	W     int32
	H     int32
	Sizes []int32
}

// PhotoPathSize carries vector path data for animated stickers and
// similar formats.
type PhotoPathSize struct {
	Type  string
	Bytes []byte
}

func (*PhotoSizeEmpty) photoSizeClass()       {}
func (*PhotoSize) photoSizeClass()            {}
func (*PhotoCachedSize) photoSizeClass()      {}
func (*PhotoStrippedSize) photoSizeClass()    {}
func (*PhotoSizeProgressive) photoSizeClass() {}
func (*PhotoPathSize) photoSizeClass()        {}

// VideoSize describes an animated preview of a video or profile photo.
// VideoStartTs is flag-gated on the wire; HasVideoStartTs mirrors the flag.
type VideoSize struct {
	Type            string
	W               int32
	H               int32
	Size            int32
	VideoStartTs    float64
	HasVideoStartTs bool
}
