package services

import (
	"reflect"
	"strings"
	"testing"
)

func TestSentenceSegmenter_Segment(t *testing.T) {
	segmenter := NewSentenceSegmenter()

	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{
			name:   "two sentences",
			script: "The sky is blue. Water boils at 100 degrees.",
			want:   []string{"The sky is blue.", "Water boils at 100 degrees.."},
		},
		{
			name:   "mixed terminators",
			script: "Hello! Is anyone there? Yes",
			want:   []string{"Hello.", "Is anyone there.", "Yes."},
		},
		{
			name:   "no boundary yields one unit",
			script: "a single fragment without terminal punctuation",
			want:   []string{"a single fragment without terminal punctuation."},
		},
		{
			name:   "punctuation runs collapse",
			script: "Wait... really?! Sure thing",
			want:   []string{"Wait.", "really.", "Sure thing."},
		},
		{
			name:   "extra whitespace is trimmed",
			script: "First.   Second.\n\nThird",
			want:   []string{"First.", "Second.", "Third."},
		},
		{
			name:   "non-latin script",
			script: "Trời hôm nay rất đẹp. Tôi muốn đi dạo",
			want:   []string{"Trời hôm nay rất đẹp.", "Tôi muốn đi dạo."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units := segmenter.Segment(tt.script)

			got := make([]string, 0, len(units))
			for i, unit := range units {
				if unit.Ordinal != i {
					t.Errorf("unit %d has ordinal %d", i, unit.Ordinal)
				}
				if !strings.HasSuffix(unit.Text, ".") {
					t.Errorf("unit %d text %q does not end with a period", i, unit.Text)
				}
				got = append(got, unit.Text)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %v, want %v", tt.script, got, tt.want)
			}
		})
	}
}

func TestSentenceSegmenter_Deterministic(t *testing.T) {
	segmenter := NewSentenceSegmenter()
	script := "One. Two! Three? Four"

	first := segmenter.Segment(script)
	second := segmenter.Segment(script)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same input differ: %v vs %v", first, second)
	}
}
