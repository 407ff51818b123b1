package layout

// splitWords tokenizes text for greedy word-wrap. It treats a run of ASCII spaces or
// tabs as a break point and collapses runs of separators, but - unlike
// strings.Fields - keeps a non-breaking space (U+00A0) inside its token
// instead of splitting on it, the same "preserve NBSP" rule the pack's
// Krispeckt-glimo text wrapper applies (instructions/text_wrap.go,
// splitWordsPreserveNBSP) so a phrase like "10 kg" never breaks
// mid-phrase.
func splitWords(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := -1
	for i, r := range s {
		sep := r == ' ' || r == '\t' || r == '\n' || r == '\r'
		if sep {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}
