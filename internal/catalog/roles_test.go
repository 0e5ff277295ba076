package catalog

import "testing"

func TestRoleLookup(t *testing.T) {
	tests := []struct {
		name      string
		roleID    string
		wantID    string
		wantTitle string
	}{
		{"known role", "data_analyst", "data_analyst", "Data Analyst"},
		{"devops role", "devops_engineer", "devops_engineer", "DevOps Engineer"},
		{"unknown role falls back", "astronaut", "software_engineer", "Software Engineer"},
		{"empty role falls back", "", "software_engineer", "Software Engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role := Role(tt.roleID)
			if role.ID != tt.wantID {
				t.Errorf("Role(%q).ID = %q, want %q", tt.roleID, role.ID, tt.wantID)
			}
			if role.Title != tt.wantTitle {
				t.Errorf("Role(%q).Title = %q, want %q", tt.roleID, role.Title, tt.wantTitle)
			}
			if len(role.Skills) != 10 {
				t.Errorf("Role(%q) has %d required skills, want 10", tt.roleID, len(role.Skills))
			}
		})
	}
}

func TestRoleSkillWeight(t *testing.T) {
	role := Role("software_engineer")

	if w := role.SkillWeight("Python"); w != 2 {
		t.Errorf("SkillWeight(Python) = %v, want 2", w)
	}
	if w := role.SkillWeight("Git"); w != 1.5 {
		t.Errorf("SkillWeight(Git) = %v, want 1.5", w)
	}
	if w := role.SkillWeight("OOP"); w != 1 {
		t.Errorf("SkillWeight(OOP) = %v, want default 1", w)
	}
}

func TestRolesListing(t *testing.T) {
	list := Roles()

	wantOrder := []string{"software_engineer", "data_analyst", "web_developer", "ml_engineer", "devops_engineer"}
	if len(list.Roles) != len(wantOrder) {
		t.Fatalf("Roles() returned %d entries, want %d", len(list.Roles), len(wantOrder))
	}
	for i, id := range wantOrder {
		if list.Roles[i].ID != id {
			t.Errorf("Roles()[%d].ID = %q, want %q", i, list.Roles[i].ID, id)
		}
		if list.Roles[i].Title == "" {
			t.Errorf("Roles()[%d].Title is empty", i)
		}
	}
}

func TestInterviewGuide(t *testing.T) {
	tests := []struct {
		name     string
		roleID   string
		wantRole string
	}{
		{"known role", "ml_engineer", "ml_engineer"},
		{"unknown role falls back", "chef", "software_engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guide := InterviewGuide(tt.roleID)
			if guide.Role != tt.wantRole {
				t.Errorf("InterviewGuide(%q).Role = %q, want %q", tt.roleID, guide.Role, tt.wantRole)
			}
			if len(guide.Tips) != 8 {
				t.Errorf("InterviewGuide(%q) has %d tips, want 8", tt.roleID, len(guide.Tips))
			}
			if len(guide.Questions) != 10 {
				t.Errorf("InterviewGuide(%q) has %d questions, want 10", tt.roleID, len(guide.Questions))
			}
		})
	}
}
