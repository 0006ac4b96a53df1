package session

import "testing"

func TestParseContent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Content
	}{
		{
			name: "with delimiter",
			raw:  "  Passage and Q1-Q3 \n### Answer & Explanation\n  Q1: B  ",
			want: Content{Passage: "Passage and Q1-Q3", Answer: "Q1: B", AnswerAvailable: true},
		},
		{
			name: "without delimiter",
			raw:  "Only a passage\n",
			want: Content{Passage: "Only a passage", Answer: AnswerUnavailable},
		},
		{
			name: "split at first delimiter",
			raw:  "P ### Answer & Explanation A ### Answer & Explanation B",
			want: Content{Passage: "P", Answer: "A ### Answer & Explanation B", AnswerAvailable: true},
		},
		{
			name: "empty answer",
			raw:  "P\n### Answer & Explanation",
			want: Content{Passage: "P", Answer: "", AnswerAvailable: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseContent(tt.raw); got != tt.want {
				t.Errorf("ParseContent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
