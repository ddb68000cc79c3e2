package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// fieldRule pairs a compiled pattern with a submatch extractor. Rules
// for one field are tried in order and the first pattern that matches
// wins: a match whose extractor cannot produce a value (for example an
// unparsable number) resolves the field to nil rather than falling
// through to later rules.
type fieldRule struct {
	re    *regexp.Regexp
	parse func(m []string) any
}

func resolve(t string, rules []fieldRule) any {
	for _, r := range rules {
		if m := r.re.FindStringSubmatch(t); m != nil {
			return r.parse(m)
		}
	}
	return nil
}

func floatGroup(i int) func(m []string) any {
	return func(m []string) any {
		v, err := strconv.ParseFloat(m[i], 64)
		if err != nil {
			return nil
		}
		return v
	}
}

func intGroup(i int) func(m []string) any {
	return func(m []string) any {
		v, err := strconv.Atoi(m[i])
		if err != nil {
			return nil
		}
		return v
	}
}

func trimmedGroup(i int) func(m []string) any {
	return func(m []string) any {
		return strings.TrimSpace(m[i])
	}
}
