package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateComplexity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0},
		{"whitespace only", "   \t\n ", 0},
		{"plain words", "write the quarterly report", 0.4},
		{"one keyword", "this is urgent", 2.3},
		{"repeated keyword counts once", "urgent urgent", 2.2},
		{"case insensitive", "CRITICAL Fix", 2.2},
		{"substring match", "overcomplexified", 2.1},
		{"multi word keyword", "high priority item", 2.3},
		{"several keywords", "urgent and important", 4.3},
		{"complex and critical", "complex critical", 4.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimateComplexity(tt.text), 1e-9)
		})
	}
}

func TestEstimateComplexity_HighPrioritySplitAcrossLines(t *testing.T) {
	// the keyword needs a single space between the words
	assert.InDelta(t, 0.2, EstimateComplexity("high\npriority"), 1e-9)
}
