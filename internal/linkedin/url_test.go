package linkedin

import "testing"

func TestValidateProfileURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"empty", "", false},
		{"standard profile", "https://www.linkedin.com/in/jane-doe", true},
		{"pub profile", "https://linkedin.com/pub/john-smith", true},
		{"no scheme", "linkedin.com/in/jane_doe", true},
		{"uppercase host", "HTTPS://WWW.LINKEDIN.COM/IN/JANE-DOE", true},
		{"surrounding whitespace", "  https://linkedin.com/in/jane  ", true},
		{"wrong host", "https://example.com/in/jane-doe", false},
		{"company page", "https://www.linkedin.com/company/acme", false},
		{"bare host", "https://linkedin.com", false},
		{"profile path elsewhere", "https://notlinkedin.example/in/jane", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateProfileURL(tt.url); got != tt.want {
				t.Errorf("ValidateProfileURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}
