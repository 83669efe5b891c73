package report

import "strings"

// wrapText breaks text into lines no wider than maxWidth. Words are taken
// greedily; a word wider than maxWidth on its own is split between
// characters so nothing is dropped. Runs of whitespace collapse to one space.
func wrapText(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	var current []string

	for _, word := range strings.Fields(text) {
		candidate := word
		if len(current) > 0 {
			candidate = strings.Join(current, " ") + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = append(current, word)
			continue
		}

		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = nil
		}

		if measure(word) <= maxWidth {
			current = []string{word}
			continue
		}

		var piece []rune
		for _, r := range word {
			next := append(piece, r)
			if measure(string(next)) <= maxWidth {
				piece = next
				continue
			}
			if len(piece) > 0 {
				lines = append(lines, string(piece))
			}
			piece = []rune{r}
		}
		if len(piece) > 0 {
			current = []string{string(piece)}
		}
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}
