package tube

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	wordBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// Classify returns a camel cased version of a dashed word.
//
//  Classify("job-name") // => "JobName"
//
func Classify(dashed string) string {
	var sb strings.Builder
	for _, part := range strings.Split(dashed, "-") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(part[size:])
	}
	return sb.String()
}

// Dasherize turns a job type name into the dashed form used for tube names.
// Namespace separators ("::") become slashes.
//
//  Dasherize("JobName")      // => "job-name"
//  Dasherize("HTTPJobName")  // => "http-job-name"
//
func Dasherize(word string) string {
	s := strings.ReplaceAll(Classify(word), "::", "/")
	s = acronymBoundary.ReplaceAllString(s, "${1}_${2}")
	s = wordBoundary.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(strings.ReplaceAll(s, "_", "-"))
}
