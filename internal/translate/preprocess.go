package translate

import (
	"regexp"
	"strings"
)

// Private Use Area runes carry ==mark== spans through goldmark, which would
// otherwise escape a literal <mark> since raw HTML is disabled.
const (
	markStart = "\uE000"
	markEnd   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	markPattern        = regexp.MustCompile(`==([^\s=](?:[^=\n]*[^\s=])?)==`)
)

// preprocessMarkdown normalizes line endings, compresses blank line runs
// and turns ==text== outside code into mark placeholders.
func preprocessMarkdown(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = convertMarks(content)
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// convertMarks rewrites ==text== on lines outside fenced blocks, skipping
// inline code spans.
func convertMarks(content string) string {
	lines := strings.Split(content, "\n")
	fence := ""
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if fence != "" {
			if strings.HasPrefix(trimmed, fence) {
				fence = ""
			}
			continue
		}
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			fence = trimmed[:3]
			continue
		}
		if !strings.Contains(line, "==") {
			continue
		}

		segments := strings.Split(line, "`")
		for j := 0; j < len(segments); j += 2 {
			segments[j] = markPattern.ReplaceAllString(segments[j], markStart+"$1"+markEnd)
		}
		lines[i] = strings.Join(segments, "`")
	}
	return strings.Join(lines, "\n")
}

// restoreMarks turns placeholders left in rendered HTML into mark elements.
func restoreMarks(htmlContent string) string {
	return strings.NewReplacer(markStart, "<mark>", markEnd, "</mark>").Replace(htmlContent)
}
