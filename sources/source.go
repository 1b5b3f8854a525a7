package sources

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Quote renders the line containing loc followed by a caret marking the
// column, for showing diagnostics in context.
func (s *Source) Quote(loc Location) string {
	idx := loc.Line - 1
	if idx < 0 || idx >= len(s.Lines) {
		return ""
	}

	var sb strings.Builder
	line := s.Lines[idx]
	sb.WriteString(line)
	sb.WriteString("\n")

	runes := []rune(line)
	col := loc.Column - 1
	for i, r := range runes {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			w := runeWidth(r)
			for k := 0; k < w; k++ {
				sb.WriteString(" ")
			}
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
