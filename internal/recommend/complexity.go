package recommend

import (
	"regexp"
	"strings"
)

// complexityKeywords each add keywordBonus at most once per text.
var complexityKeywords = compileKeywords("urgent", "critical", "complex", "important", "high priority")

const keywordBonus = 2.0

func compileKeywords(words ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile("(?i)"+regexp.QuoteMeta(w)))
	}
	return out
}

// EstimateComplexity scores how demanding a piece of text looks: a tenth of
// a point per word plus a bonus for every distinct keyword it mentions.
func EstimateComplexity(text string) float64 {
	score := float64(len(strings.Fields(text))) / 10
	for _, kw := range complexityKeywords {
		if kw.MatchString(text) {
			score += keywordBonus
		}
	}
	return score
}
