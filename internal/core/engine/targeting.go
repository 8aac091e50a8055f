// Package engine holds the pure decision logic of the ad delivery
// pipeline: targeting eligibility, relevance scoring, slot auction and
// fraud scoring. Nothing in this package performs I/O.
package engine

import (
	"slices"
	"strings"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

// Matches reports whether the candidate is eligible for the user in the
// requested placement. All constraints are hard: any unmet one excludes the
// ad, with no partial credit. Closeness is relevance scoring's job.
func Matches(c port.AdCandidate, user domain.UserContext, placement string) bool {
	tgt := c.AdSet.Targeting

	if platforms := c.AdSet.Placement.Platforms; len(platforms) > 0 && !slices.Contains(platforms, placement) {
		return false
	}

	age := user.Age
	if age <= 0 {
		age = domain.AssumedAge
	}
	if d := tgt.Demographics; d.AgeMin > 0 && age < d.AgeMin || d.AgeMax > 0 && age > d.AgeMax {
		return false
	}

	if genders := tgt.Demographics.Genders; len(genders) > 0 && !slices.Contains(genders, user.Gender) {
		return false
	}

	if len(tgt.Locations) > 0 && !slices.Contains(tgt.Locations, user.Country) {
		return false
	}

	if len(tgt.Interests) > 0 && !anyInterestMatch(tgt.Interests, user.Interests) {
		return false
	}
	if len(tgt.Behaviors) > 0 && !anyInterestMatch(tgt.Behaviors, user.Interests) {
		return false
	}

	return true
}

// anyInterestMatch implements the any-match policy: one user keyword
// substring-matching one target interest, case-insensitively, is enough.
func anyInterestMatch(targets, userInterests []string) bool {
	for _, t := range targets {
		t = strings.ToLower(t)
		for _, u := range userInterests {
			u = strings.ToLower(u)
			if strings.Contains(t, u) || strings.Contains(u, t) {
				return true
			}
		}
	}
	return false
}
