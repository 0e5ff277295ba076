package catalog

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// skillEntry maps a canonical skill display name to the synonyms that count
// as a mention of it. Synonyms are matched as whole words against lowercased
// text, so "javascript" never counts as "java".
type skillEntry struct {
	Name     string
	Synonyms []string
}

// skillEntries is the built-in skill lexicon. Order is not significant for
// detection (results are sorted), but keep related skills grouped for
// maintenance.
var skillEntries = []skillEntry{
	// Programming languages
	{"Python", []string{"python", "py", "django", "flask", "fastapi"}},
	{"Java", []string{"java", "spring", "spring boot", "hibernate", "maven"}},
	{"Javascript", []string{"javascript", "js", "node.js", "nodejs", "express", "react", "vue", "angular"}},
	{"C", []string{"c programming", " c ", "c language"}},
	// The c++ / c# / .net spellings never match: \b cannot assert next to a
	// non-word character, so these skills hit via cpp, csharp, and dotnet.
	{"C++", []string{"c++", "cpp"}},
	{"C#", []string{"c#", "csharp", ".net", "dotnet"}},
	{"Sql", []string{"sql", "mysql", "postgresql", "postgres", "sqlite", "oracle", "database"}},
	{"Html", []string{"html", "html5"}},
	{"Css", []string{"css", "css3", "sass", "scss", "tailwind", "bootstrap"}},
	{"Typescript", []string{"typescript", "ts"}},
	{"Go", []string{"golang", "go lang"}},
	{"Rust", []string{"rust"}},
	{"Php", []string{"php", "laravel"}},
	{"Ruby", []string{"ruby", "rails", "ruby on rails"}},
	{"Swift", []string{"swift", "ios development"}},
	{"Kotlin", []string{"kotlin", "android"}},

	// Computer science fundamentals
	{"Oop", []string{"oop", "object oriented", "object-oriented", "object oriented programming", "inheritance", "polymorphism", "encapsulation"}},
	{"Data Structures", []string{"data structures", "data structure", "arrays", "linked list", "trees", "graphs", "hash table", "heap", "stack", "queue"}},
	{"Algorithms", []string{"algorithms", "algorithm", "sorting", "searching", "dynamic programming", "recursion", "complexity analysis"}},

	// Data science and machine learning
	{"Machine Learning", []string{"machine learning", "ml", "deep learning", "neural network", "ai", "artificial intelligence"}},
	{"Tensorflow", []string{"tensorflow", "tf"}},
	{"Pytorch", []string{"pytorch", "torch"}},
	{"Pandas", []string{"pandas", "dataframe"}},
	{"Numpy", []string{"numpy", "np"}},
	{"Scikit-Learn", []string{"scikit-learn", "sklearn", "scikit learn"}},
	{"Statistics", []string{"statistics", "statistical", "statistical analysis", "probability", "hypothesis testing", "regression"}},
	{"Nlp", []string{"nlp", "natural language processing", "text mining", "sentiment analysis", "language model"}},
	{"Computer Vision", []string{"computer vision", "cv", "image processing", "object detection", "image recognition"}},
	{"Deep Learning", []string{"deep learning", "neural networks", "cnn", "rnn", "lstm", "transformer"}},
	{"Data Analysis", []string{"data analysis", "data analytics", "analytics"}},
	{"Data Visualization", []string{"data visualization", "tableau", "power bi", "matplotlib", "seaborn", "plotly"}},

	// Infrastructure and tooling
	{"Docker", []string{"docker", "container", "dockerfile"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
	{"Aws", []string{"aws", "amazon web services", "ec2", "s3", "lambda"}},
	{"Azure", []string{"azure", "microsoft azure"}},
	{"Gcp", []string{"gcp", "google cloud", "google cloud platform"}},
	{"Linux", []string{"linux", "ubuntu", "centos", "debian", "unix"}},
	{"Git", []string{"git", "github", "gitlab", "bitbucket", "version control"}},
	{"Ci/Cd", []string{"ci/cd", "cicd", "jenkins", "github actions", "gitlab ci", "continuous integration"}},
	{"Terraform", []string{"terraform", "infrastructure as code", "iac"}},
	{"Bash", []string{"bash", "shell script", "shell scripting", "bash script"}},

	// Web development
	{"React", []string{"react", "reactjs", "react.js"}},
	{"Angular", []string{"angular", "angularjs"}},
	{"Vue", []string{"vue", "vuejs", "vue.js"}},
	{"Node.Js", []string{"node", "nodejs", "node.js", "express"}},
	{"Rest Api", []string{"rest", "restful", "api", "rest api"}},
	{"Mongodb", []string{"mongodb", "mongo", "nosql"}},
	{"Responsive Design", []string{"responsive design", "responsive", "mobile first", "media queries", "responsive web"}},

	// General professional skills
	{"Excel", []string{"excel", "microsoft excel", "spreadsheet", "xlookup", "pivot table", "vlookup"}},
	{"Problem Solving", []string{"problem solving", "problem-solving", "analytical", "critical thinking"}},
	{"Communication", []string{"communication", "presentation", "public speaking"}},
	{"Teamwork", []string{"teamwork", "team player", "collaboration", "collaborative"}},
	{"Leadership", []string{"leadership", "lead", "managed", "mentored"}},
	{"Agile", []string{"agile", "scrum", "kanban", "sprint"}},
}

// compiledSkill holds a lexicon entry with its synonym patterns compiled
type compiledSkill struct {
	name     string
	patterns []*regexp.Regexp
}

// Lexicon detects canonical skills in free text. It is immutable once built
// and safe for concurrent use.
type Lexicon struct {
	skills []compiledSkill
	names  map[string]struct{}
}

var (
	defaultLexicon     *Lexicon
	defaultLexiconOnce sync.Once
)

// DefaultLexicon returns the shared lexicon built from the built-in skill
// entries. The lexicon is compiled once per process.
func DefaultLexicon() *Lexicon {
	defaultLexiconOnce.Do(func() {
		defaultLexicon = newLexicon(skillEntries)
	})
	return defaultLexicon
}

func newLexicon(entries []skillEntry) *Lexicon {
	lex := &Lexicon{
		skills: make([]compiledSkill, 0, len(entries)),
		names:  make(map[string]struct{}, len(entries)),
	}
	for _, entry := range entries {
		cs := compiledSkill{
			name:     entry.Name,
			patterns: make([]*regexp.Regexp, 0, len(entry.Synonyms)),
		}
		for _, synonym := range entry.Synonyms {
			pattern := `\b` + regexp.QuoteMeta(strings.ToLower(synonym)) + `\b`
			cs.patterns = append(cs.patterns, regexp.MustCompile(pattern))
		}
		lex.skills = append(lex.skills, cs)
		lex.names[entry.Name] = struct{}{}
	}
	return lex
}

// Detect returns the sorted display names of all skills mentioned in the
// text. Matching is case-insensitive and whole-word, so the operation is
// idempotent over its own output.
func (l *Lexicon) Detect(text string) []string {
	textLower := strings.ToLower(text)
	detected := make([]string, 0, 16)
	for _, skill := range l.skills {
		for _, pattern := range skill.patterns {
			if pattern.MatchString(textLower) {
				detected = append(detected, skill.name)
				break
			}
		}
	}
	sort.Strings(detected)
	return detected
}

// Contains reports whether the given display name is part of the lexicon
func (l *Lexicon) Contains(name string) bool {
	_, ok := l.names[name]
	return ok
}

// Size returns the number of canonical skills in the lexicon
func (l *Lexicon) Size() int {
	return len(l.skills)
}
