package previews

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/alioygur/is"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/john-rice/td/common"
	"github.com/john-rice/td/common/rcontext"
	"github.com/john-rice/td/metrics"
	"github.com/john-rice/td/registry"
	"github.com/john-rice/td/wire"
)

// DecodeWebDocument derives a preview size from a hyperlinked document
// descriptor. It never fails outward; any input problem degrades to the
// zero sentinel.
func DecodeWebDocument(ctx rcontext.RequestContext, reg registry.FileRegistry, fileType registry.FileType, owner registry.OwnerID, doc wire.WebDocumentClass) PreviewSize {
	if doc == nil {
		return PreviewSize{}
	}

	var ref registry.FileRef
	var size int32
	var mimeType string
	var attributes []wire.DocumentAttributeClass
	switch d := doc.(type) {
	case *wire.WebDocument:
		parsed, err := url.Parse(d.Url)
		if !is.URL(d.Url) || err != nil || !parsed.IsAbs() || parsed.Host == "" {
			anomaly(ctx, "invalid_url", common.ErrInvalidUrl, "Can't parse URL ", d.Url)
			metrics.WebDocumentsDecoded.With(prometheus.Labels{"outcome": "invalid_url"}).Inc()
			return PreviewSize{}
		}

		ref = reg.RegisterRemote(registry.RemoteLocation{
			FileType:   fileType,
			AccessHash: d.AccessHash,
			Url:        parsed.String(),
		}, registry.FromServer, owner, 0, d.Size, urlFileName(parsed))
		size = d.Size
		mimeType = d.MimeType
		attributes = d.Attributes
	case *wire.WebDocumentNoProxy:
		if !strings.Contains(d.Url, ".") {
			anomaly(ctx, "invalid_url", common.ErrInvalidUrl, "Receive invalid URL ", d.Url)
			metrics.WebDocumentsDecoded.With(prometheus.Labels{"outcome": "invalid_url"}).Inc()
			return PreviewSize{}
		}

		r, err := reg.ResolvePersistentId(d.Url, fileType)
		if err != nil {
			anomaly(ctx, "unresolved_url", err, "Can't register URL: ", err)
			metrics.WebDocumentsDecoded.With(prometheus.Labels{"outcome": "unresolved"}).Inc()
			return PreviewSize{}
		}
		ref = r

		size = d.Size
		mimeType = d.MimeType
		attributes = d.Attributes
	default:
		panic(fmt.Sprintf("previews: unknown web document variant %T", doc))
	}
	if !ref.IsValid() {
		panic("previews: registry returned an invalid handle")
	}

	isAnimation := mimeType == "video/mp4"
	isGif := mimeType == "image/gif"

	var dimensions Dimensions
	for _, attr := range attributes {
		switch a := attr.(type) {
		case *wire.DocumentAttributeImageSize:
			dimensions = GetDimensions(ctx, a.W, a.H, "webDocumentAttributeImageSize")
		case *wire.DocumentAttributeFilename:
			// carries nothing useful for a preview
		case *wire.DocumentAttributeAnimated, *wire.DocumentAttributeHasStickers, *wire.DocumentAttributeSticker, *wire.DocumentAttributeVideo, *wire.DocumentAttributeAudio:
			anomaly(ctx, "unexpected_attribute", common.ErrUnexpectedContent,
				fmt.Sprintf("Unexpected web document attribute %T", a))
		default:
			panic(fmt.Sprintf("previews: unknown document attribute %T", attr))
		}
	}

	s := PreviewSize{
		Dimensions: dimensions,
		SizeBytes:  size,
		FileRef:    ref,
	}
	if isAnimation {
		s.Tag = TagAnimation
	} else if isGif {
		s.Tag = TagGif
	} else if fileType == registry.FileTypeThumbnail {
		s.Tag = TagThumbnail
	} else {
		s.Tag = TagNormal
	}
	metrics.WebDocumentsDecoded.With(prometheus.Labels{"outcome": "ok"}).Inc()
	return s
}

// urlFileName extracts the filename hint from a parsed URL, preferring an
// explicit query parameter over the last path segment.
func urlFileName(u *url.URL) string {
	if name := u.Query().Get("filename"); name != "" {
		return name
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
