package prompt

import "strings"

// FallbackNegative is used when a reply carries no negative section.
const FallbackNegative = "baja calidad, borroso, distorsionado, anatomía incorrecta"

const (
	markerPositive = "POSITIVE:"
	markerNegative = "NEGATIVE:"
)

type section int

const (
	sectionNone section = iota
	sectionPositive
	sectionNegative
)

// ParseResponse extracts the positive and negative prompts from a model reply.
//
// Lines starting with POSITIVE: or NEGATIVE: switch the active section; text
// left once every copy of the marker is removed from the line replaces
// whatever that section held. Other non-empty lines
// are appended to the active section with a single space. It never fails:
// a reply without markers yields an empty positive and FallbackNegative.
func ParseResponse(raw string) Result {
	var (
		current  = sectionNone
		positive string
		negative string
	)

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, markerPositive):
			current = sectionPositive
			if rest := strings.TrimSpace(strings.ReplaceAll(line, markerPositive, "")); rest != "" {
				positive = rest
			}
		case strings.HasPrefix(line, markerNegative):
			current = sectionNegative
			if rest := strings.TrimSpace(strings.ReplaceAll(line, markerNegative, "")); rest != "" {
				negative = rest
			}
		case line == "":
			continue
		case current == sectionPositive:
			positive = appendLine(positive, line)
		case current == sectionNegative:
			negative = appendLine(negative, line)
		}
	}

	res := Result{
		Positive: strings.TrimSpace(positive),
		Negative: strings.TrimSpace(negative),
	}
	if res.Negative == "" {
		res.Negative = FallbackNegative
	}
	return res
}

func appendLine(acc, line string) string {
	if acc == "" {
		return line
	}
	return acc + " " + line
}
