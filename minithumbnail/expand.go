package minithumbnail

import (
	"encoding/base64"

	"github.com/john-rice/td/metrics"
)

// packedMarker is the only packed format currently defined; other marker
// bytes are reserved.
const packedMarker = 0x01

// jpegHeader is a valid baseline JPEG prefix up to (and excluding) the
// start-of-scan marker, produced by encoding a reference image. Bytes 164
// and 166 are the quantized height and width fields of its SOF marker;
// Expand splices the real dimensions and scan data into it instead of
// running an encoder.
var jpegHeader = mustBase64(
	"/9j/4AAQSkZJRgABAQAAAQABAAD/2wBDACgcHiMeGSgjISMtKygwPGRBPDc3PHtYXUlkkYCZlo+AjIqgtObDoKrarYqMyP/L2u71////" +
		"m8H////6/+b9//j/2wBDASstLTw1PHZBQXb4pYyl+Pj4+Pj4+Pj4+Pj4+Pj4+Pj4+Pj4+Pj4+Pj4+Pj4+Pj4+Pj4+Pj4+Pj4+Pj4+Pj4+Pj/" +
		"wAARCAAAAAADASIAAhEBAxEB/8QAHwAAAQUBAQEBAQEAAAAAAAAAAAECAwQFBgcICQoL/" +
		"8QAtRAAAgEDAwIEAwUFBAQAAAF9AQIDAAQRBRIhMUEGE1FhByJxFDKBkaEII0KxwRVS0fAkM2JyggkKFhcYGRolJicoKSo0NTY3ODk6Q0R" +
		"FRkdISUpTVFVWV1hZWmNkZWZnaGlqc3R1dnd4eXqDhIWGh4iJipKTlJWWl5iZmqKjpKWmp6ipqrKztLW2t7i5usLDxMXGx8jJytLT1NXW19jZ2" +
		"uHi4+Tl5ufo6erx8vP09fb3+Pn6/8QAHwEAAwEBAQEBAQEBAQAAAAAAAAECAwQFBgcICQoL/" +
		"8QAtREAAgECBAQDBAcFBAQAAQJ3AAECAxEEBSExBhJBUQdhcRMiMoEIFEKRobHBCSMzUvAVYnLRChYkNOEl8RcYGRomJygpKjU2Nzg5OkN" +
		"ERUZHSElKU1RVVldYWVpjZGVmZ2hpanN0dXZ3eHl6goOEhYaHiImKkpOUlZaXmJmaoqOkpaanqKmqsrO0tba3uLm6wsPExcbHyMnK0tPU1dbX2" +
		"Nna4uPk5ebn6Onq8vP09fb3+Pn6/9oADAMBAAIRAxEAPwA=")

// jpegFooter is the JPEG end-of-image marker.
var jpegFooter = mustBase64("/9k=")

func mustBase64(s string) []byte {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Expand reconstructs a standalone baseline JPEG from a packed
// minithumbnail. The packed form is marker byte, height, width (8-bit
// pixel counts, so at most 255x255) followed by the entropy-coded scan
// data. Returns nil for anything that is not a packed minithumbnail.
//
// The scan data tail is never validated; a corrupt tail yields a
// corrupt-but-parseable JPEG and rendering is the consumer's problem.
func Expand(packed []byte) []byte {
	if len(packed) < 3 {
		return nil
	}
	if packed[0] != packedMarker {
		return nil
	}

	result := make([]byte, 0, len(jpegHeader)+len(packed)-3+len(jpegFooter))
	result = append(result, jpegHeader[:164]...)
	result = append(result, packed[1], jpegHeader[165], packed[2])
	result = append(result, jpegHeader[167:]...)
	result = append(result, packed[3:]...)
	result = append(result, jpegFooter...)

	metrics.MinithumbnailsExpanded.Inc()
	return result
}

// Dimensions returns the packed preview's height and width, or zeros when
// the input is not a packed minithumbnail.
func Dimensions(packed []byte) (height int, width int) {
	if len(packed) < 3 || packed[0] != packedMarker {
		return 0, 0
	}
	return int(packed[1]), int(packed[2])
}
