package pdf

import (
	"bytes"
	"fmt"
	"regexp"
)

var pdfHeader = []byte("%PDF-")

// pageObjectPattern matches page object dictionaries. The negative class
// keeps the page tree root (/Type /Pages) from being counted.
var pageObjectPattern = regexp.MustCompile(`/Type\s*/Page[^s]`)

// PageCount derives the number of pages of a PDF document by scanning for
// page object dictionaries. The lexical scan deliberately avoids a full
// cross-reference parse: scanned documents produced by this application
// (and by the capture surfaces feeding it) always store one object per
// page, and a wrong-but-positive count is preferable to rejecting a
// slightly malformed file.
func PageCount(data []byte) (int, error) {
	if !bytes.HasPrefix(data, pdfHeader) {
		return 0, fmt.Errorf("not a PDF document")
	}

	count := len(pageObjectPattern.FindAllIndex(data, -1))
	// a page object right at EOF has no trailing byte for the pattern
	if bytes.HasSuffix(bytes.TrimRight(data, "\r\n \t"), []byte("/Type /Page")) {
		count++
	}

	if count == 0 {
		return 0, fmt.Errorf("no page objects found")
	}

	return count, nil
}
