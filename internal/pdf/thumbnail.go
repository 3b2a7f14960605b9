package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"
)

// ThumbnailMaxDimension bounds the longer side of generated thumbnails.
const ThumbnailMaxDimension = 256

var (
	imageSubtypeMarker = []byte("/Subtype /Image")
	dctFilterMarker    = []byte("/DCTDecode")
	streamMarker       = []byte("stream")
	endstreamMarker    = []byte("endstream")
)

// Thumbnail renders a JPEG preview of the document's first page by locating
// the first embedded DCT-encoded image, decoding it, and downscaling it to
// at most [ThumbnailMaxDimension] on the longer side.
//
// Documents whose first page carries no JPEG image (e.g. text-only PDFs
// from other producers) yield an error; callers treat a missing thumbnail
// as a non-error condition.
func Thumbnail(data []byte) ([]byte, error) {
	jpegData, err := firstEmbeddedJPEG(data)
	if err != nil {
		return nil, err
	}

	src, err := jpeg.Decode(bytes.NewReader(jpegData))
	if err != nil {
		return nil, fmt.Errorf("decode embedded image: %w", err)
	}

	scaled := downscale(src, ThumbnailMaxDimension)

	out := &bytes.Buffer{}
	if err := jpeg.Encode(out, scaled, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	return out.Bytes(), nil
}

// firstEmbeddedJPEG scans the document for the first image XObject with a
// DCTDecode filter and returns its raw stream bytes.
func firstEmbeddedJPEG(data []byte) ([]byte, error) {
	offset := 0
	for {
		idx := bytes.Index(data[offset:], imageSubtypeMarker)
		if idx < 0 {
			return nil, fmt.Errorf("no embedded image found")
		}
		dictStart := offset + idx
		offset = dictStart + len(imageSubtypeMarker)

		streamIdx := bytes.Index(data[dictStart:], streamMarker)
		if streamIdx < 0 {
			return nil, fmt.Errorf("image object has no stream")
		}

		// the filter must appear inside this object's dictionary,
		// before its stream keyword
		dict := data[dictStart : dictStart+streamIdx]
		if !bytes.Contains(dict, dctFilterMarker) {
			continue
		}

		payloadStart := dictStart + streamIdx + len(streamMarker)
		payloadStart += countLeadingEOL(data[payloadStart:])

		end := bytes.Index(data[payloadStart:], endstreamMarker)
		if end < 0 {
			return nil, fmt.Errorf("image stream is not terminated")
		}

		payload := bytes.TrimRight(data[payloadStart:payloadStart+end], "\r\n")
		return payload, nil
	}
}

func countLeadingEOL(data []byte) int {
	n := 0
	for n < len(data) && (data[n] == '\r' || data[n] == '\n') {
		n++
	}
	return n
}

func downscale(src image.Image, maxDim int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}

	dst := image.NewRGBA(image.Rect(0, 0,
		int(float64(w)*scale), int(float64(h)*scale)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
