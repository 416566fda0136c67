package previews

import (
	"fmt"
	"math"
	"sort"

	"github.com/john-rice/td/registry"
)

// Well-known size tags. Anything else in the 1-127 range is a real size
// role assigned by the server; 0 means the tag was unknown or invalid.
const (
	TagThumbnail    uint8 = 't'
	TagGif          uint8 = 'g'
	TagNormal       uint8 = 'n'
	TagAnimation    uint8 = 'v'
	TagAltAnimation uint8 = 'u'
)

// PreviewSize is the normalized description of one available rendition of
// an image or video preview. SizeBytes is the declared encoded size of
// the referenced content; when ProgressiveSizes is non-empty it equals
// the largest scan and ProgressiveSizes holds the rest, ascending.
type PreviewSize struct {
	Tag              uint8
	Dimensions       Dimensions
	SizeBytes        int32
	FileRef          registry.FileRef
	ProgressiveSizes []int32
}

func pixelCount(d Dimensions) uint32 {
	return uint32(d.Width) * uint32(d.Height)
}

func int32sEqual(lhs []int32, rhs []int32) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	for i := range lhs {
		if lhs[i] != rhs[i] {
			return false
		}
	}
	return true
}

// Equals requires exact equality of every field, including the order of
// the progressive size list.
func (s PreviewSize) Equals(other PreviewSize) bool {
	return s.Tag == other.Tag && s.Dimensions == other.Dimensions && s.SizeBytes == other.SizeBytes &&
		s.FileRef == other.FileRef && int32sEqual(s.ProgressiveSizes, other.ProgressiveSizes)
}

// Less is an ascending-quality strict weak order: byte length, then pixel
// count, then tag (thumbnails sort below every real tag), then file
// handle, then width.
func (s PreviewSize) Less(other PreviewSize) bool {
	if s.SizeBytes != other.SizeBytes {
		return s.SizeBytes < other.SizeBytes
	}
	lhsPixels := pixelCount(s.Dimensions)
	rhsPixels := pixelCount(other.Dimensions)
	if lhsPixels != rhsPixels {
		return lhsPixels < rhsPixels
	}
	lhsTag := int32(s.Tag)
	rhsTag := int32(other.Tag)
	if s.Tag == TagThumbnail {
		lhsTag = -1
	}
	if other.Tag == TagThumbnail {
		rhsTag = -1
	}
	if lhsTag != rhsTag {
		return lhsTag < rhsTag
	}
	if s.FileRef != other.FileRef {
		return s.FileRef.Value() < other.FileRef.Value()
	}
	return s.Dimensions.Width < other.Dimensions.Width
}

func (s PreviewSize) String() string {
	return fmt.Sprintf("{type = %q, dimensions = %s, size = %d, file_ref = %s, progressive_sizes = %v}",
		s.Tag, s.Dimensions, s.SizeBytes, s.FileRef, s.ProgressiveSizes)
}

// SortSizes orders candidates ascending by quality, stably.
func SortSizes(sizes []PreviewSize) {
	sort.SliceStable(sizes, func(i int, j int) bool {
		return sizes[i].Less(sizes[j])
	})
}

// BestSize picks the highest-quality candidate.
func BestSize(sizes []PreviewSize) (PreviewSize, bool) {
	if len(sizes) == 0 {
		return PreviewSize{}, false
	}
	best := sizes[0]
	for _, s := range sizes[1:] {
		if best.Less(s) {
			best = s
		}
	}
	return best, true
}

// SmallestSize picks the lowest-quality candidate.
func SmallestSize(sizes []PreviewSize) (PreviewSize, bool) {
	if len(sizes) == 0 {
		return PreviewSize{}, false
	}
	smallest := sizes[0]
	for _, s := range sizes[1:] {
		if s.Less(smallest) {
			smallest = s
		}
	}
	return smallest, true
}

// AnimationSize is a PreviewSize for a video preview frame plus the
// timestamp of the still frame it represents.
type AnimationSize struct {
	PreviewSize
	MainFrameTimestamp float64
}

// Equals treats timestamps closer than a millisecond as the same frame.
func (s AnimationSize) Equals(other AnimationSize) bool {
	return s.PreviewSize.Equals(other.PreviewSize) &&
		math.Abs(s.MainFrameTimestamp-other.MainFrameTimestamp) < 1e-3
}

func (s AnimationSize) String() string {
	return fmt.Sprintf("%s from %v", s.PreviewSize, s.MainFrameTimestamp)
}
