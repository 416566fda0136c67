package minithumbnail

import (
	"bytes"
	"image"

	"github.com/buckket/go-blurhash"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/john-rice/td/common"
	"github.com/john-rice/td/common/rcontext"
)

// ExpandToImage expands a packed minithumbnail and decodes it into a
// drawable image, optionally resized to width x height for display. The
// configured size cap bounds how much packed data the helper will accept.
func ExpandToImage(ctx rcontext.RequestContext, packed []byte, width int, height int) (image.Image, error) {
	max := ctx.Config.Previews.MaxMinithumbnailBytes
	if max > 0 && len(packed) > max {
		ctx.Log.Debug("Packed minithumbnail too large: ", len(packed), " > ", max)
		return nil, common.ErrNotMinithumbnail
	}

	data := Expand(packed)
	if data == nil {
		return nil, common.ErrNotMinithumbnail
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "minithumbnail: decode expanded jpeg")
	}

	if width > 0 && height > 0 {
		img = imaging.Resize(img, width, height, imaging.Linear)
	}
	return img, nil
}

// BlurHash computes a blurhash placeholder string for a packed
// minithumbnail, for clients that render blurred placeholders instead of
// raw micro-previews.
func BlurHash(ctx rcontext.RequestContext, packed []byte) (string, error) {
	img, err := ExpandToImage(ctx, packed, 0, 0)
	if err != nil {
		return "", err
	}

	hash, err := blurhash.Encode(4, 3, img)
	if err != nil {
		return "", errors.Wrap(err, "minithumbnail: encode blurhash")
	}
	return hash, nil
}
