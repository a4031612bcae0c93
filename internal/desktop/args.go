package desktop

import "strings"

// SplitArguments splits a console application's argument string the way a
// shell would for plain words and single or double quoted runs. Quoted
// runs directly following another token are glued to it.
func SplitArguments(s string) []string {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inToken bool
	)
	flush := func() {
		if inToken {
			args = append(args, current.String())
			current.Reset()
			inToken = false
		}
	}
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case r == ' ' || r == '\t' || r == '\n':
			flush()
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	flush()
	return args
}
