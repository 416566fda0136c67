package wire

// WebDocumentClass is the closed set of hyperlinked document descriptors.
type WebDocumentClass interface {
	webDocumentClass()
}

// WebDocument points at remote content downloaded through the server.
type WebDocument struct {
	Url        string
	AccessHash int64
	Size       int32
	MimeType   string
	Attributes []DocumentAttributeClass
}

// WebDocumentNoProxy points at remote content fetched directly by the
// client; the URL doubles as the persistent identifier.
type WebDocumentNoProxy struct {
	Url        string
	Size       int32
	MimeType   string
	Attributes []DocumentAttributeClass
}

func (*WebDocument) webDocumentClass()        {}
func (*WebDocumentNoProxy) webDocumentClass() {}

// DocumentAttributeClass is the closed set of document attributes.
type DocumentAttributeClass interface {
	documentAttributeClass()
}

type DocumentAttributeImageSize struct {
	W int32
	H int32
}

type DocumentAttributeAnimated struct{}

type DocumentAttributeSticker struct {
	Alt string
}

type DocumentAttributeVideo struct {
	Duration int32
	W        int32
	H        int32
}

type DocumentAttributeAudio struct {
	Duration int32
}

type DocumentAttributeFilename struct {
	FileName string
}

type DocumentAttributeHasStickers struct{}

func (*DocumentAttributeImageSize) documentAttributeClass()   {}
func (*DocumentAttributeAnimated) documentAttributeClass()    {}
func (*DocumentAttributeSticker) documentAttributeClass()     {}
func (*DocumentAttributeVideo) documentAttributeClass()       {}
func (*DocumentAttributeAudio) documentAttributeClass()       {}
func (*DocumentAttributeFilename) documentAttributeClass()    {}
func (*DocumentAttributeHasStickers) documentAttributeClass() {}
