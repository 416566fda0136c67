package previews

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/john-rice/td/registry"
)

func TestPreviewSize_Less_ByteLengthFirst(t *testing.T) {
	small := PreviewSize{Tag: 'x', SizeBytes: 100, Dimensions: Dimensions{Width: 500, Height: 500}}
	large := PreviewSize{Tag: 'a', SizeBytes: 200, Dimensions: Dimensions{Width: 10, Height: 10}}

	assert.True(t, small.Less(large))
	assert.False(t, large.Less(small))
}

func TestPreviewSize_Less_PixelCountOnTie(t *testing.T) {
	few := PreviewSize{SizeBytes: 100, Dimensions: Dimensions{Width: 10, Height: 10}}
	many := PreviewSize{SizeBytes: 100, Dimensions: Dimensions{Width: 20, Height: 20}}

	assert.True(t, few.Less(many))
	assert.False(t, many.Less(few))
}

func TestPreviewSize_Less_NoPixelOverflow(t *testing.T) {
	// 65535*65535 overflows uint16 and int32 arithmetic; the comparison
	// must still order these correctly.
	huge := PreviewSize{SizeBytes: 100, Dimensions: Dimensions{Width: 65535, Height: 65535}}
	big := PreviewSize{SizeBytes: 100, Dimensions: Dimensions{Width: 65535, Height: 65534}}

	assert.True(t, big.Less(huge))
	assert.False(t, huge.Less(big))
}

func TestPreviewSize_Less_ThumbnailSortsBeforeRealTags(t *testing.T) {
	thumb := PreviewSize{Tag: TagThumbnail, SizeBytes: 100}
	// 'a' (97) < 't' (116), but the thumbnail tag is remapped below every
	// real tag.
	real := PreviewSize{Tag: 'a', SizeBytes: 100}

	assert.True(t, thumb.Less(real))
	assert.False(t, real.Less(thumb))
}

func TestPreviewSize_Less_FileRefAndWidthTieBreaks(t *testing.T) {
	a := PreviewSize{Tag: 'm', SizeBytes: 100, FileRef: registry.NewFileRef(1)}
	b := PreviewSize{Tag: 'm', SizeBytes: 100, FileRef: registry.NewFileRef(2)}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))

	// Same handle, different aspect: width decides last. Keep the pixel
	// counts equal so the earlier rules don't fire.
	c := PreviewSize{SizeBytes: 100, Dimensions: Dimensions{Width: 10, Height: 20}}
	d := PreviewSize{SizeBytes: 100, Dimensions: Dimensions{Width: 20, Height: 10}}
	assert.True(t, c.Less(d))
	assert.False(t, d.Less(c))
}

func TestPreviewSize_Less_StrictWeakOrder(t *testing.T) {
	samples := []PreviewSize{
		{},
		{Tag: TagThumbnail, SizeBytes: 100},
		{Tag: 'a', SizeBytes: 100},
		{Tag: 'm', SizeBytes: 100, Dimensions: Dimensions{Width: 10, Height: 10}},
		{Tag: 'm', SizeBytes: 100, Dimensions: Dimensions{Width: 10, Height: 10}, FileRef: registry.NewFileRef(7)},
		{Tag: 'x', SizeBytes: 500, Dimensions: Dimensions{Width: 800, Height: 600}},
		{Tag: 'x', SizeBytes: 500, Dimensions: Dimensions{Width: 600, Height: 800}},
	}

	for i, a := range samples {
		assert.False(t, a.Less(a), "irreflexivity violated at %d", i)
		for j, b := range samples {
			if a.Less(b) {
				assert.False(t, b.Less(a), "asymmetry violated at %d,%d", i, j)
			}
			if a.Equals(b) {
				assert.False(t, a.Less(b), "consistency with equality violated at %d,%d", i, j)
				assert.False(t, b.Less(a), "consistency with equality violated at %d,%d", i, j)
			}
			// Transitivity over every triple.
			for k, c := range samples {
				if a.Less(b) && b.Less(c) {
					assert.True(t, a.Less(c), "transitivity violated at %d,%d,%d", i, j, k)
				}
			}
		}
	}
}

func TestPreviewSize_Equals(t *testing.T) {
	a := PreviewSize{Tag: 'm', SizeBytes: 120, Dimensions: Dimensions{Width: 10, Height: 10}, ProgressiveSizes: []int32{30, 50}}
	b := PreviewSize{Tag: 'm', SizeBytes: 120, Dimensions: Dimensions{Width: 10, Height: 10}, ProgressiveSizes: []int32{30, 50}}
	assert.True(t, a.Equals(b))

	// The progressive list comparison is order-sensitive.
	c := b
	c.ProgressiveSizes = []int32{50, 30}
	assert.False(t, a.Equals(c))

	d := b
	d.ProgressiveSizes = []int32{30}
	assert.False(t, a.Equals(d))

	e := b
	e.FileRef = registry.NewFileRef(3)
	assert.False(t, a.Equals(e))
}

func TestAnimationSize_Equals_TimestampEpsilon(t *testing.T) {
	base := PreviewSize{Tag: TagAnimation, SizeBytes: 100}

	a := AnimationSize{PreviewSize: base, MainFrameTimestamp: 1.0005}
	b := AnimationSize{PreviewSize: base, MainFrameTimestamp: 1.0012}
	assert.True(t, a.Equals(b)) // delta 0.0007 < 1e-3

	c := AnimationSize{PreviewSize: base, MainFrameTimestamp: 1.0}
	d := AnimationSize{PreviewSize: base, MainFrameTimestamp: 1.002}
	assert.False(t, c.Equals(d))
}

func TestSortSizes(t *testing.T) {
	sizes := []PreviewSize{
		{Tag: 'x', SizeBytes: 300},
		{Tag: 'a', SizeBytes: 100},
		{Tag: 'm', SizeBytes: 200},
	}
	SortSizes(sizes)
	assert.Equal(t, int32(100), sizes[0].SizeBytes)
	assert.Equal(t, int32(200), sizes[1].SizeBytes)
	assert.Equal(t, int32(300), sizes[2].SizeBytes)
}

func TestBestAndSmallestSize(t *testing.T) {
	_, ok := BestSize(nil)
	assert.False(t, ok)
	_, ok = SmallestSize(nil)
	assert.False(t, ok)

	sizes := []PreviewSize{
		{Tag: 'm', SizeBytes: 200},
		{Tag: 'a', SizeBytes: 100},
		{Tag: 'x', SizeBytes: 300},
	}
	best, ok := BestSize(sizes)
	assert.True(t, ok)
	assert.Equal(t, int32(300), best.SizeBytes)

	smallest, ok := SmallestSize(sizes)
	assert.True(t, ok)
	assert.Equal(t, int32(100), smallest.SizeBytes)
}
