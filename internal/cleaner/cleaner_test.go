package cleaner

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "empty input",
			input:  "",
			expect: "",
		},
		{
			name:   "collapses whitespace runs",
			input:  "Наранбаатар   Бат\n\nSoftware\tEngineer",
			expect: "Наранбаатар Бат Software Engineer",
		},
		{
			name:   "pads colons",
			input:  "Phone:99112233 Email :test@example.mn",
			expect: "Phone : 99112233 Email : test@example.mn",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  Skills: Excel  ",
			expect: "Skills : Excel",
		},
		{
			name:   "whitespace only",
			input:  " \n\t ",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
