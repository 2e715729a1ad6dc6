package template

import "regexp"

// Reference tokens are exactly "{{" + word characters + "}}". Anything else
// is literal text, including malformed or unterminated "{{" sequences.
// There is no escape for a literal "{{" in source text.
var referencePattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

type segmentKind int

const (
	literalSegment segmentKind = iota
	referenceSegment
)

// segment is one node of the compiled form: either literal text emitted
// verbatim or a reference name resolved at render time.
type segment struct {
	kind segmentKind
	text string
}

// scan splits source into segments, left to right, non-overlapping.
func scan(source string) []segment {
	var segments []segment
	last := 0
	for _, loc := range referencePattern.FindAllStringSubmatchIndex(source, -1) {
		if loc[0] > last {
			segments = append(segments, segment{kind: literalSegment, text: source[last:loc[0]]})
		}
		segments = append(segments, segment{kind: referenceSegment, text: source[loc[2]:loc[3]]})
		last = loc[1]
	}
	if last < len(source) || len(segments) == 0 {
		segments = append(segments, segment{kind: literalSegment, text: source[last:]})
	}
	return segments
}

// References returns every reference name in source in extraction order,
// repeats included.
func References(source string) []string {
	var out []string
	for _, seg := range scan(source) {
		if seg.kind == referenceSegment {
			out = append(out, seg.text)
		}
	}
	return out
}
