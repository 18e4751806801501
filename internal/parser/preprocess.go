package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Preprocessed is the output of per-format normalization: a single UTF-8
// text blob plus the method that produced it.
type Preprocessed struct {
	Text   string
	Method string
}

// ExtractPDFText extracts the text layer of a PDF with a real PDF reader.
// Pages that fail to decode are skipped rather than failing the document.
func ExtractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrScannedPDF
	}
	return text, nil
}

var pdfMarkerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`%PDF-\d\.\d`),
	regexp.MustCompile(`\d+\s+\d+\s+obj\b`),
	regexp.MustCompile(`\bendobj\b`),
	regexp.MustCompile(`\bstream\b[\s\S]*?\bendstream\b`),
	regexp.MustCompile(`\bxref\b`),
	regexp.MustCompile(`\btrailer\b`),
	regexp.MustCompile(`\bstartxref\b`),
	regexp.MustCompile(`<<[^>]*>>`),
	regexp.MustCompile(`%%EOF`),
}

// StripPDFMarkers removes raw PDF object syntax from text recovered by
// naive byte-level extraction. Used by the legacy strategy when proper
// extraction is unavailable.
func StripPDFMarkers(raw string) string {
	for _, pat := range pdfMarkerPatterns {
		raw = pat.ReplaceAllString(raw, " ")
	}
	return CollapseWhitespace(raw)
}

// scannedCheckWindow is how much of the document the scanned-PDF heuristic
// inspects.
const scannedCheckWindow = 500

// scannedTextRatio is the minimum text-to-total ratio below which a PDF is
// considered image-only.
const scannedTextRatio = 0.3

// LooksScanned reports whether extracted PDF text is too thin to be a real
// text layer, which routes the document to the image strategy.
func LooksScanned(text string) bool {
	window := text
	if len(window) > scannedCheckWindow {
		window = window[:scannedCheckWindow]
	}
	if len(window) == 0 {
		return true
	}
	textLike := 0
	for _, r := range window {
		if r == ' ' || r == '\n' || r == '\t' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || strings.ContainsRune(".,;:@-+()/'", r) {
			textLike++
		}
	}
	return float64(textLike)/float64(len([]rune(window))) < scannedTextRatio
}

var zipMarkers = [][]byte{
	[]byte("PK\x03\x04"),
	[]byte("[Content_Types].xml"),
	[]byte("word/document.xml"),
}

// ExtractDocxText reads word/document.xml out of the DOCX ZIP container and
// walks its paragraph/run structure. Paragraphs are joined by blank lines.
// A payload with package markers but no readable paragraphs is rejected as
// unrecoverable binary rather than returned as garbage.
func ExtractDocxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if hasZipMarkers(data) {
			return "", ErrBinaryDocx
		}
		return "", fmt.Errorf("open docx container: %w", err)
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("open document.xml: %w", err)
			}
			docXML = rc
			break
		}
	}
	if docXML == nil {
		return "", ErrBinaryDocx
	}
	defer docXML.Close()

	paragraphs, err := docxParagraphs(docXML)
	if err != nil {
		return "", err
	}
	if len(paragraphs) == 0 {
		return "", ErrBinaryDocx
	}
	return strings.Join(paragraphs, "\n\n"), nil
}

// docxParagraphs walks the WordprocessingML token stream collecting the
// text runs (<w:t>) of each paragraph (<w:p>).
func docxParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inRun := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inRun = inParagraph
			case "tab":
				if inParagraph {
					current.WriteByte('\t')
				}
			case "br":
				if inParagraph {
					current.WriteByte('\n')
				}
			}
		case xml.CharData:
			if inRun {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				if inParagraph {
					if text := strings.TrimSpace(current.String()); text != "" {
						paragraphs = append(paragraphs, text)
					}
				}
				inParagraph = false
			}
		}
	}
	return paragraphs, nil
}

func hasZipMarkers(data []byte) bool {
	for _, marker := range zipMarkers {
		if bytes.Contains(data, marker) {
			return true
		}
	}
	return false
}

var reHTMLTag = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes tags, decodes entities and collapses whitespace.
func StripHTML(s string) string {
	s = reHTMLTag.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return CollapseWhitespace(s)
}

var (
	reHorizSpace = regexp.MustCompile(`[ \t\r\f\v]+`)
	reBlankRuns  = regexp.MustCompile(`\n{3,}`)
)

// CollapseWhitespace normalizes horizontal whitespace and caps blank-line
// runs while preserving the line structure the segmenter depends on.
func CollapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = reHorizSpace.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// PreprocessText normalizes an HTML or plain-text payload.
func PreprocessText(data []byte) Preprocessed {
	text := string(data)
	if strings.Contains(text, "<") && reHTMLTag.MatchString(text) {
		return Preprocessed{Text: StripHTML(text), Method: "html-strip"}
	}
	return Preprocessed{Text: CollapseWhitespace(text), Method: "text-normalize"}
}
