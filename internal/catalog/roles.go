package catalog

import "resumelens/internal/types"

// DefaultRoleID is used when a caller asks for a role the catalog does not
// know. Matches the behavior users expect from the public analyzer: an
// unknown role silently falls back to the general software role.
const DefaultRoleID = "software_engineer"

// RoleProfile describes a target job role: its ordered required skills and
// the relative weight of each. Skills without an explicit weight count as 1.
type RoleProfile struct {
	ID     string
	Title  string
	Skills []string
	Weight map[string]float64
}

// SkillWeight returns the weight of a required skill, defaulting to 1
func (r RoleProfile) SkillWeight(skill string) float64 {
	if w, ok := r.Weight[skill]; ok {
		return w
	}
	return 1
}

// roleOrder preserves catalog listing order
var roleOrder = []string{
	"software_engineer",
	"data_analyst",
	"web_developer",
	"ml_engineer",
	"devops_engineer",
}

var roleProfiles = map[string]RoleProfile{
	"software_engineer": {
		ID:     "software_engineer",
		Title:  "Software Engineer",
		Skills: []string{"Python", "JavaScript", "React", "Git", "SQL", "REST API", "Data Structures", "Algorithms", "Problem Solving", "OOP"},
		Weight: map[string]float64{"Python": 2, "JavaScript": 2, "Git": 1.5, "SQL": 1.5},
	},
	"data_analyst": {
		ID:     "data_analyst",
		Title:  "Data Analyst",
		Skills: []string{"Python", "SQL", "Excel", "Tableau", "Power BI", "Statistics", "Data Visualization", "Pandas", "NumPy", "Machine Learning"},
		Weight: map[string]float64{"SQL": 2, "Python": 2, "Data Visualization": 1.5},
	},
	"web_developer": {
		ID:     "web_developer",
		Title:  "Web Developer",
		Skills: []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "Git", "REST API", "Responsive Design", "TypeScript", "MongoDB"},
		Weight: map[string]float64{"JavaScript": 2, "HTML": 1.5, "CSS": 1.5, "React": 2},
	},
	"ml_engineer": {
		ID:     "ml_engineer",
		Title:  "ML Engineer",
		Skills: []string{"Python", "TensorFlow", "PyTorch", "Machine Learning", "Deep Learning", "NLP", "Computer Vision", "Pandas", "NumPy", "Scikit-learn"},
		Weight: map[string]float64{"Python": 2, "Machine Learning": 2, "TensorFlow": 1.5, "PyTorch": 1.5},
	},
	"devops_engineer": {
		ID:     "devops_engineer",
		Title:  "DevOps Engineer",
		Skills: []string{"Linux", "Docker", "Kubernetes", "CI/CD", "AWS", "Azure", "Terraform", "Git", "Python", "Bash"},
		Weight: map[string]float64{"Docker": 2, "Kubernetes": 2, "AWS": 1.5, "Linux": 1.5},
	},
}

// Role returns the profile for the given role id, falling back to the
// default role when the id is unknown.
func Role(id string) RoleProfile {
	if profile, ok := roleProfiles[id]; ok {
		return profile
	}
	return roleProfiles[DefaultRoleID]
}

// HasRole reports whether the catalog knows the given role id
func HasRole(id string) bool {
	_, ok := roleProfiles[id]
	return ok
}

// Roles returns the catalog listing in stable order
func Roles() types.RoleList {
	list := types.RoleList{Roles: make([]types.RoleInfo, 0, len(roleOrder))}
	for _, id := range roleOrder {
		list.Roles = append(list.Roles, types.RoleInfo{ID: id, Title: roleProfiles[id].Title})
	}
	return list
}
