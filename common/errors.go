package common

import (
	"errors"
)

var ErrInvalidDimension = errors.New("invalid image dimension")
var ErrInvalidSizeTag = errors.New("invalid size tag")
var ErrUnexpectedContent = errors.New("unexpected content for container format")
var ErrEmptyProgressiveSizes = errors.New("empty progressive size list")
var ErrInvalidUrl = errors.New("invalid url")
var ErrUnknownPersistentId = errors.New("unknown persistent identifier")
var ErrNotMinithumbnail = errors.New("not a packed minithumbnail")
