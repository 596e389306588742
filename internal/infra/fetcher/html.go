package fetcher

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlSniffLimit bounds how much of the staged file is inspected when
// deciding whether the server returned an HTML error page. Only the
// detection is bounded; the title is extracted from the whole file since
// error pages can front-load scripts and styles past any fixed prefix.
const htmlSniffLimit = 4096

// detectHTML reports whether the staged file looks like an HTML document
// rather than CSV data. When it does, the returned reason includes the
// page title if one can be extracted.
func detectHTML(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	head := make([]byte, htmlSniffLimit)
	n, _ := f.Read(head)
	head = head[:n]

	trimmed := strings.TrimSpace(string(bytes.ToLower(head)))
	if !strings.HasPrefix(trimmed, "<!doctype html") &&
		!strings.HasPrefix(trimmed, "<html") &&
		!strings.Contains(trimmed, "<head") {
		return "", false
	}

	reason := "server returned an HTML page instead of data"
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return reason, true
	}
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return reason, true
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		reason = fmt.Sprintf("server returned an HTML page instead of data: %q", title)
	}
	return reason, true
}
