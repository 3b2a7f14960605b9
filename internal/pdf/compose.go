// Package pdf implements the minimal PDF support the vault needs: composing
// image-only documents, counting pages, and extracting a first-page
// thumbnail. It is not a general-purpose PDF library; anything beyond
// scanned-page documents is out of scope.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
)

// Letter-size page geometry in PDF points (1/72 inch).
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	pageMargin = 36.0
)

const jpegQuality = 85

// ComposeImages builds a PDF document with one letter-sized page per input
// image. Each image is encoded as a JPEG XObject, scaled to fit inside the
// page margins preserving aspect ratio, and centered in the remaining space.
func ComposeImages(images []image.Image) ([]byte, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images to compose")
	}

	w := newWriter()

	// Object layout: 1 = catalog, 2 = page tree, then for page i
	// (0-based): 3+3i = page, 4+3i = content stream, 5+3i = image.
	catalogRef := 1
	pagesRef := 2

	pageRefs := make([]int, len(images))
	for i := range images {
		pageRefs[i] = 3 + 3*i
	}

	w.writeObject(catalogRef, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesRef))

	kids := &bytes.Buffer{}
	for i, ref := range pageRefs {
		if i > 0 {
			kids.WriteByte(' ')
		}
		fmt.Fprintf(kids, "%d 0 R", ref)
	}
	w.writeObject(pagesRef, fmt.Sprintf(
		"<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), len(images)))

	for i, img := range images {
		pageRef := pageRefs[i]
		contentRef := pageRef + 1
		imageRef := pageRef + 2

		jpegData, width, height, err := encodeJPEG(img)
		if err != nil {
			return nil, fmt.Errorf("encode page %d image: %w", i+1, err)
		}

		drawW, drawH, drawX, drawY := fitToPage(float64(width), float64(height))

		w.writeObject(pageRef, fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %g %g] "+
				"/Resources << /XObject << /Im%d %d 0 R >> >> /Contents %d 0 R >>",
			pagesRef, pageWidth, pageHeight, i, imageRef, contentRef))

		content := fmt.Sprintf("q\n%.2f 0 0 %.2f %.2f %.2f cm\n/Im%d Do\nQ\n",
			drawW, drawH, drawX, drawY, i)
		w.writeStreamObject(contentRef, "<< /Length %d >>", []byte(content))

		imageDict := fmt.Sprintf(
			"<< /Type /XObject /Subtype /Image /Width %d /Height %d "+
				"/ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode /Length %%d >>",
			width, height)
		w.writeStreamObject(imageRef, imageDict, jpegData)
	}

	return w.finish(catalogRef), nil
}

// fitToPage scales a width x height image to fit inside the page margins,
// preserving aspect ratio, and centers it in the remaining space.
func fitToPage(width, height float64) (drawW, drawH, drawX, drawY float64) {
	availW := pageWidth - 2*pageMargin
	availH := pageHeight - 2*pageMargin

	scale := availW / width
	if s := availH / height; s < scale {
		scale = s
	}

	drawW = width * scale
	drawH = height * scale
	drawX = pageMargin + (availW-drawW)/2
	drawY = pageMargin + (availH-drawH)/2
	return drawW, drawH, drawX, drawY
}

func encodeJPEG(img image.Image) (data []byte, width, height int, err error) {
	bounds := img.Bounds()

	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, 0, 0, err
	}

	return buf.Bytes(), bounds.Dx(), bounds.Dy(), nil
}
