package analysis

import (
	"strings"

	"resumelens/internal/catalog"
)

// MatchRole computes the weighted coverage of a role's required skills by
// the detected skills. Comparison is case-insensitive. Weights are used as
// configured, without normalization, so a weighted skill moves the
// percentage more than an unweighted one. Missing skills come back in the
// role's required order.
func MatchRole(detected []string, role catalog.RoleProfile) (int, []string) {
	detectedSet := make(map[string]struct{}, len(detected))
	for _, skill := range detected {
		detectedSet[strings.ToLower(skill)] = struct{}{}
	}

	var totalWeight, matchedWeight float64
	missing := []string{}
	for _, skill := range role.Skills {
		weight := role.SkillWeight(skill)
		totalWeight += weight
		if _, ok := detectedSet[strings.ToLower(skill)]; ok {
			matchedWeight += weight
		} else {
			missing = append(missing, skill)
		}
	}

	percent := 0
	if totalWeight > 0 {
		percent = int(matchedWeight / totalWeight * 100)
	}
	return percent, missing
}
