package previews

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/gabriel-vasile/mimetype"
	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/john-rice/td/common"
	"github.com/john-rice/td/common/rcontext"
	"github.com/john-rice/td/metrics"
	"github.com/john-rice/td/registry"
	"github.com/john-rice/td/wire"
)

// Decoded is the two-case result of Decode: either a normalized size or
// the raw payload bytes of variants whose content callers expand
// separately (stripped minithumbnails and vector paths). Exactly one
// field is set.
type Decoded struct {
	Size *PreviewSize
	Raw  []byte
}

func anomaly(ctx rcontext.RequestContext, kind string, err error, args ...interface{}) {
	ctx.Log.Error(args...)
	sentry.CaptureException(err)
	metrics.DecodeAnomalies.With(prometheus.Labels{"kind": kind}).Inc()
}

func registerSize(ctx rcontext.RequestContext, reg registry.FileRegistry, source *Source, id int64, accessHash int64, fileReference []byte, dcID int32, owner registry.OwnerID, size int32, format common.PhotoFormat) registry.FileRef {
	ctx.Log.Debugf("Received %s photo %d of type %s from DC%d", format, id, source.FileType, dcID)
	suggestedName := fmt.Sprintf("%s.%s", source.UniqueName(id), format)
	locationSource := registry.FromServer
	if owner.IsSecretChat() {
		locationSource = registry.FromUser
	}
	ref := reg.RegisterRemote(registry.RemoteLocation{
		FileType:      source.FileType,
		ID:            id,
		AccessHash:    accessHash,
		DcID:          dcID,
		FileReference: fileReference,
		SourceKey:     source.key(),
	}, locationSource, owner, size, 0, suggestedName)
	metrics.SizesRegistered.With(prometheus.Labels{"source": source.Kind.String()}).Inc()
	return ref
}

func checkTag(ctx rcontext.RequestContext, tag string, res *PreviewSize) uint8 {
	if len(tag) != 1 || tag[0] >= 128 {
		anomaly(ctx, "tag", common.ErrInvalidSizeTag, "Wrong photoSize \"", tag, "\" ", *res)
		return 0
	}
	return tag[0]
}

func sniffCachedContent(ctx rcontext.RequestContext, data []byte, format common.PhotoFormat) {
	expected := format.MimeType()
	if expected == "" {
		return
	}
	detected := mimetype.Detect(data)
	if !detected.Is(expected) {
		ctx.Log.Warnf("Cached preview content sniffs as %s but container format is %s", detected.String(), format)
		metrics.DecodeAnomalies.With(prometheus.Labels{"kind": "content_mismatch"}).Inc()
	}
}

// Decode normalizes one wire photo size variant. The returned size is the
// zero sentinel (not an error) for the empty variant and for recoverable
// anomalies; stripped and path variants return raw bytes instead. When
// source.Kind is SourceThumbnail the final tag is written back into
// source.ThumbnailTag.
func Decode(ctx rcontext.RequestContext, reg registry.FileRegistry, source *Source, id int64, accessHash int64, fileReference []byte, dcID int32, owner registry.OwnerID, sizePtr wire.PhotoSizeClass, format common.PhotoFormat) Decoded {
	if sizePtr == nil {
		panic("previews: nil photo size")
	}

	var tag string
	var res PreviewSize
	var content []byte
	switch size := sizePtr.(type) {
	case *wire.PhotoSizeEmpty:
		metrics.SizesDecoded.With(prometheus.Labels{"variant": "empty"}).Inc()
		return Decoded{Size: &res}
	case *wire.PhotoSize:
		tag = size.Type
		res.Dimensions = GetDimensions(ctx, size.W, size.H, "photoSize")
		res.SizeBytes = size.Size
		metrics.SizesDecoded.With(prometheus.Labels{"variant": "photo"}).Inc()
	case *wire.PhotoCachedSize:
		if int64(len(size.Bytes)) > math.MaxInt32 {
			panic("previews: cached size content exceeds int32")
		}
		tag = size.Type
		res.Dimensions = GetDimensions(ctx, size.W, size.H, "photoCachedSize")
		res.SizeBytes = int32(len(size.Bytes))
		content = size.Bytes
		sniffCachedContent(ctx, size.Bytes, format)
		metrics.SizesDecoded.With(prometheus.Labels{"variant": "cached"}).Inc()
	case *wire.PhotoStrippedSize:
		if format != common.FormatJpeg {
			anomaly(ctx, "unexpected_content", common.ErrUnexpectedContent,
				"Receive unexpected JPEG minithumbnail in photo ", id, " of format ", format)
			return Decoded{Size: &res}
		}
		metrics.SizesDecoded.With(prometheus.Labels{"variant": "stripped"}).Inc()
		return Decoded{Raw: size.Bytes}
	case *wire.PhotoSizeProgressive:
		if len(size.Sizes) == 0 {
			anomaly(ctx, "empty_progressive", common.ErrEmptyProgressiveSizes,
				"Receive photo ", id, " with empty progressive size list")
			return Decoded{Size: &res}
		}
		sizes := append([]int32(nil), size.Sizes...)
		sort.Slice(sizes, func(i int, j int) bool { return sizes[i] < sizes[j] })

		tag = size.Type
		res.Dimensions = GetDimensions(ctx, size.W, size.H, "photoSizeProgressive")
		res.SizeBytes = sizes[len(sizes)-1]
		res.ProgressiveSizes = sizes[:len(sizes)-1]
		metrics.SizesDecoded.With(prometheus.Labels{"variant": "progressive"}).Inc()
	case *wire.PhotoPathSize:
		if !format.SupportsPathData() {
			anomaly(ctx, "unexpected_content", common.ErrUnexpectedContent,
				"Receive unexpected SVG minithumbnail in photo ", id, " of format ", format)
			return Decoded{Size: &res}
		}
		metrics.SizesDecoded.With(prometheus.Labels{"variant": "path"}).Inc()
		return Decoded{Raw: size.Bytes}
	default:
		panic(fmt.Sprintf("previews: unknown photo size variant %T", sizePtr))
	}

	res.Tag = checkTag(ctx, tag, &res)
	if source.Kind == SourceThumbnail {
		source.ThumbnailTag = res.Tag
	}

	res.FileRef = registerSize(ctx, reg, source, id, accessHash, fileReference, dcID, owner, res.SizeBytes, format)

	if len(content) > 0 {
		reg.SetContent(res.FileRef, content)
	}

	return Decoded{Size: &res}
}

// DecodeAnimation normalizes a wire video size into an animation preview.
// Registration always targets the short-video format regardless of the
// source container format.
func DecodeAnimation(ctx rcontext.RequestContext, reg registry.FileRegistry, source *Source, id int64, accessHash int64, fileReference []byte, dcID int32, owner registry.OwnerID, size *wire.VideoSize) AnimationSize {
	if size == nil {
		panic("previews: nil video size")
	}

	res := AnimationSize{}
	switch size.Type {
	case "v", "u":
		res.Tag = size.Type[0]
	default:
		anomaly(ctx, "tag", common.ErrInvalidSizeTag, "Wrong videoSize \"", size.Type, "\"")
		res.Tag = 0
	}
	res.Dimensions = GetDimensions(ctx, size.W, size.H, "videoSize")
	res.SizeBytes = size.Size
	if size.HasVideoStartTs {
		res.MainFrameTimestamp = size.VideoStartTs
	}

	if source.Kind == SourceThumbnail {
		source.ThumbnailTag = res.Tag
	}

	res.FileRef = registerSize(ctx, reg, source, id, accessHash, fileReference, dcID, owner, res.SizeBytes, common.FormatMpeg4)
	metrics.SizesDecoded.With(prometheus.Labels{"variant": "video"}).Inc()
	return res
}

// DecodeSecretThumbnail builds a preview size for an inline encrypted-chat
// thumbnail. Secret thumbnails have no server-side identity, so the
// registry entry gets a synthetic negative id.
func DecodeSecretThumbnail(ctx rcontext.RequestContext, reg registry.FileRegistry, data []byte, owner registry.OwnerID, width int32, height int32) PreviewSize {
	if len(data) == 0 {
		return PreviewSize{}
	}
	if int64(len(data)) > math.MaxInt32 {
		panic("previews: secret thumbnail content exceeds int32")
	}

	res := PreviewSize{
		Tag:        TagThumbnail,
		Dimensions: GetDimensions(ctx, width, height, "secretThumbnail"),
		SizeBytes:  int32(len(data)),
	}

	photoId := -secureInt63()
	res.FileRef = reg.RegisterRemote(registry.RemoteLocation{
		FileType:  registry.FileTypeEncryptedThumbnail,
		ID:        photoId,
		SourceKey: "thumbnail/encrypted_thumbnail",
	}, registry.FromServer, owner, res.SizeBytes, 0, fmt.Sprintf("%d.jpg", uint64(photoId)))
	reg.SetContent(res.FileRef, data)

	return res
}

func secureInt63() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]) & math.MaxInt64)
}
