package narrative

import (
	"strings"
	"unicode/utf8"
)

// Windows holds one text window per stage; index i belongs to stage i+1.
type Windows []string

// Partition cuts text into count contiguous windows of equal rune length.
// The last window absorbs the remainder, so short texts leave leading
// windows empty. Windows are slices of the original bytes; an invalid
// UTF-8 byte counts as one rune and is kept as is.
func Partition(text string, count int) Windows {
	if count < 1 {
		return Windows{}
	}
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	size := (len(offsets) - 1) / count

	windows := make(Windows, count)
	for i := 0; i < count; i++ {
		start := offsets[i*size]
		end := offsets[(i+1)*size]
		if i == count-1 {
			end = len(text)
		}
		windows[i] = text[start:end]
	}
	return windows
}

// Window returns the text of the stage with the given number, or "" when
// there is none.
func (w Windows) Window(number int) string {
	if number < 1 || number > len(w) {
		return ""
	}
	return w[number-1]
}

// Length returns the total rune length of the given stages' windows.
func (w Windows) Length(stages []Stage) int {
	total := 0
	for _, s := range stages {
		total += utf8.RuneCountInString(w.Window(s.Number))
	}
	return total
}

// ByKey maps normalized stage names to their windows.
func (w Windows) ByKey(c Catalog) map[string]string {
	out := make(map[string]string, c.Len())
	for _, s := range c.stages {
		out[StageKey(s.Name)] = w.Window(s.Number)
	}
	return out
}

// StageKey lowercases the name and joins words with underscores.
func StageKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
