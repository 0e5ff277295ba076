package catalog

import (
	"slices"
	"strings"
	"testing"
)

func TestLexiconDetect(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name        string
		text        string
		wantSkills  []string
		absentSkill string
	}{
		{
			name:       "single language",
			text:       "Experienced in Python and Django web development",
			wantSkills: []string{"Python"},
		},
		{
			name:        "javascript does not imply java",
			text:        "javascript developer",
			wantSkills:  []string{"Javascript"},
			absentSkill: "Java",
		},
		{
			name:       "case insensitive",
			text:       "PYTHON and pYtHoN and python",
			wantSkills: []string{"Python"},
		},
		{
			name:       "symbol skills via alphabetic aliases",
			text:       "Worked with cpp and csharp on dotnet services with CI/CD pipelines",
			wantSkills: []string{"C#", "C++", "Ci/Cd"},
		},
		{
			// \b cannot assert next to '+', '#', or a leading '.', so the
			// symbol spellings are only reachable through cpp/csharp/dotnet
			name:       "literal symbol spellings do not match",
			text:       "Worked with C++ and C# on .NET",
			wantSkills: []string{},
		},
		{
			name:       "multi word synonyms",
			text:       "Strong object oriented design and data structures knowledge",
			wantSkills: []string{"Data Structures", "Oop"},
		},
		{
			name:       "empty text",
			text:       "",
			wantSkills: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lex.Detect(tt.text)
			for _, want := range tt.wantSkills {
				if !slices.Contains(got, want) {
					t.Errorf("Detect(%q) = %v, missing %q", tt.text, got, want)
				}
			}
			if tt.absentSkill != "" && slices.Contains(got, tt.absentSkill) {
				t.Errorf("Detect(%q) = %v, should not contain %q", tt.text, got, tt.absentSkill)
			}
			if len(tt.wantSkills) == 0 && len(got) != 0 {
				t.Errorf("Detect(%q) = %v, want empty", tt.text, got)
			}
			if !slices.IsSorted(got) {
				t.Errorf("Detect(%q) = %v, result not sorted", tt.text, got)
			}
		})
	}
}

func TestLexiconDetectIdempotent(t *testing.T) {
	lex := DefaultLexicon()

	text := "Python, JavaScript, React, Node.js, SQL, Git, REST API development, Data structures, Algorithms, Problem solving, OOP"
	first := lex.Detect(text)
	if len(first) == 0 {
		t.Fatal("expected skills to be detected")
	}

	// Feeding the detector its own output must not change the result
	second := lex.Detect(strings.Join(first, ", "))
	if !slices.Equal(first, second) {
		t.Errorf("detection not idempotent: first %v, second %v", first, second)
	}
}

func TestLexiconDetectWordBoundaries(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name   string
		text   string
		absent string
	}{
		{"java inside javascript", "senior javascript engineer", "Java"},
		{"go inside google", "worked at google on search", "Go"},
		{"c inside other words", "communication and clarity", "C"},
		{"ts inside other words", "tsunami response planning", "Typescript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lex.Detect(tt.text); slices.Contains(got, tt.absent) {
				t.Errorf("Detect(%q) = %v, should not contain %q", tt.text, got, tt.absent)
			}
		})
	}
}

func TestLexiconDisplayNames(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		text string
		want string
	}{
		{"built node.js services", "Node.Js"},
		{"query tuning in postgresql", "Sql"},
		{"inheritance and polymorphism", "Oop"},
		{"trained models with sklearn", "Scikit-Learn"},
		{"designed restful endpoints", "Rest Api"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := lex.Detect(tt.text)
			if !slices.Contains(got, tt.want) {
				t.Errorf("Detect(%q) = %v, want %q present", tt.text, got, tt.want)
			}
			if !lex.Contains(tt.want) {
				t.Errorf("Contains(%q) = false, want true", tt.want)
			}
		})
	}
}

func BenchmarkLexiconDetect(b *testing.B) {
	lex := DefaultLexicon()
	text := strings.Repeat("Experienced Python developer with React, Docker, Kubernetes and SQL. ", 20)

	for b.Loop() {
		lex.Detect(text)
	}
}
