package markup

import "strings"

// quoteRun is a run of consecutive apostrophes. Length is normalized the way
// the wiki parser sees it: a run of four is an apostrophe followed by a bold
// marker, anything longer than five is bold+italic with stray apostrophes.
type quoteRun struct {
	start, end int
	n          int
}

func quoteRuns(s string) []quoteRun {
	var runs []quoteRun
	for i := 0; i < len(s); {
		if s[i] != '\'' {
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] == '\'' {
			j++
		}
		n := j - i
		switch {
		case n == 1:
			i = j
			continue
		case n == 4:
			n = 3
		case n > 5:
			n = 5
		}
		runs = append(runs, quoteRun{start: i, end: j, n: n})
		i = j
	}
	return runs
}

// wrapped finds opening and closing runs spanning the whole of s and checks
// that no run in between has one of the delimiting lengths.
func wrapped(s string, delims ...int) bool {
	runs := quoteRuns(s)
	if len(runs) < 2 {
		return false
	}
	first, last := runs[0], runs[len(runs)-1]
	if first.start != 0 || last.end != len(s) {
		return false
	}
	is := func(n int) bool {
		for _, d := range delims {
			if n == d {
				return true
			}
		}
		return false
	}
	if !is(first.n) || !is(last.n) {
		return false
	}
	for _, r := range runs[1 : len(runs)-1] {
		if is(r.n) {
			return false
		}
	}
	return true
}

// IsFullyBold reports whether the trimmed line is one bold span: '''x''' or
// the bold+italic '''''x'''''.
func IsFullyBold(line string) bool {
	return wrapped(strings.TrimSpace(line), 3, 5)
}

// IsFullyItalic reports whether the trimmed line is one italic span: ''x''
// or '''''x'''''. Bold spans nested inside italics are allowed, a bold
// wrapper is never mistaken for an italic one.
func IsFullyItalic(line string) bool {
	return wrapped(strings.TrimSpace(line), 2, 5)
}
