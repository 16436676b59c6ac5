package cv

import "testing"

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{
			name:   "empty string",
			input:  "",
			expect: 0.0,
		},
		{
			name:   "no unit tokens",
			input:  "worked there a while",
			expect: 0.0,
		},
		{
			name:   "mongolian years and months",
			input:  "3 жил 6 сар",
			expect: 3.5,
		},
		{
			name:   "english years and months",
			input:  "3 year 6 month",
			expect: 3.5,
		},
		{
			name:   "years only",
			input:  "2 жил",
			expect: 2.0,
		},
		{
			name:   "months only",
			input:  "6 сар",
			expect: 0.5,
		},
		{
			name:   "tokens inside other text",
			input:  "нийт 4 жил ажилласан",
			expect: 4.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseDuration(tt.input); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}
