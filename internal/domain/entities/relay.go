package entities

import (
	"bytes"
	"fmt"
	"strings"
)

// RelayFileName is the artifact transferred between the working directory
// and the publish repository.
const RelayFileName = "latest_chart_urls.txt"

// ChartUpload pairs an asset symbol with its hosted chart URL.
type ChartUpload struct {
	Symbol string
	URL    string
}

// EncodeRelayFile renders uploads as newline-delimited "SYMBOL: URL" lines,
// in input order. An empty slice yields an empty payload.
func EncodeRelayFile(uploads []ChartUpload) []byte {
	var buf bytes.Buffer
	for _, upload := range uploads {
		fmt.Fprintf(&buf, "%s: %s\n", upload.Symbol, upload.URL)
	}
	return buf.Bytes()
}

// ParseRelayFile parses a relay payload back into uploads. Lines without a
// separator are skipped; surrounding whitespace is trimmed.
func ParseRelayFile(data []byte) []ChartUpload {
	var uploads []ChartUpload
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		symbol, url, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		uploads = append(uploads, ChartUpload{
			Symbol: strings.TrimSpace(symbol),
			URL:    strings.TrimSpace(url),
		})
	}
	return uploads
}

// RelayContentEqual reports whether two relay payloads are byte-identical.
// Publication commits only when this is false.
func RelayContentEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}
