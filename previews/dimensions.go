package previews

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/john-rice/td/common"
	"github.com/john-rice/td/common/rcontext"
	"github.com/john-rice/td/metrics"
)

// Dimensions is a validated width/height pair. Either both coordinates
// are zero (unknown) or both are strictly positive.
type Dimensions struct {
	Width  uint16
	Height uint16
}

func (d Dimensions) String() string {
	return fmt.Sprintf("(%d, %d)", d.Width, d.Height)
}

func getDimension(ctx rcontext.RequestContext, size int32, source string) uint16 {
	if size < 0 || size > 65535 {
		ctx.Log.Error("Wrong image dimension = ", size, " from ", source)
		sentry.CaptureException(common.ErrInvalidDimension)
		metrics.DecodeAnomalies.With(prometheus.Labels{"kind": "dimension"}).Inc()
		return 0
	}
	return uint16(size)
}

// GetDimensions validates a raw width/height pair. Out-of-range values
// degrade to the zero dimension; callers treat (0, 0) as unknown, not as
// a zero-size image.
func GetDimensions(ctx rcontext.RequestContext, width int32, height int32, source string) Dimensions {
	result := Dimensions{
		Width:  getDimension(ctx, width, source),
		Height: getDimension(ctx, height, source),
	}
	if result.Width == 0 || result.Height == 0 {
		result.Width = 0
		result.Height = 0
	}
	return result
}
