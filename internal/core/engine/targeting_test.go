package engine

import (
	"testing"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

func candidateWith(tgt domain.Targeting, platforms ...string) port.AdCandidate {
	return port.AdCandidate{
		AdSet: domain.AdSet{
			Targeting: tgt,
			Placement: domain.Placement{Platforms: platforms},
		},
	}
}

// TestMatchesAgeBounds ensures age constraints are hard: a 30 year old never
// sees an 18-24 ad regardless of how well everything else fits.
func TestMatchesAgeBounds(t *testing.T) {
	c := candidateWith(domain.Targeting{
		Demographics: domain.Demographics{AgeMin: 18, AgeMax: 24},
	})

	if Matches(c, domain.UserContext{UserID: "u", Age: 30}, "web") {
		t.Fatal("age 30 must not match 18-24 targeting")
	}
	if !Matches(c, domain.UserContext{UserID: "u", Age: 21}, "web") {
		t.Fatal("age 21 must match 18-24 targeting")
	}
	// unknown age falls back to the assumed default, which is above 24
	if Matches(c, domain.UserContext{UserID: "u"}, "web") {
		t.Fatal("unknown age assumes 25 and must not match 18-24")
	}
}

func TestMatchesPlacement(t *testing.T) {
	c := candidateWith(domain.Targeting{}, "ios", "android")
	if Matches(c, domain.UserContext{UserID: "u"}, "web") {
		t.Fatal("web placement must not match a mobile-only ad set")
	}
	if !Matches(c, domain.UserContext{UserID: "u"}, "ios") {
		t.Fatal("ios placement must match")
	}
	// empty platform list imposes no constraint
	if !Matches(candidateWith(domain.Targeting{}), domain.UserContext{UserID: "u"}, "web") {
		t.Fatal("unconstrained placement must match everything")
	}
}

func TestMatchesGenderAndLocation(t *testing.T) {
	c := candidateWith(domain.Targeting{
		Demographics: domain.Demographics{Genders: []string{"female"}},
		Locations:    []string{"US", "CA"},
	})

	if !Matches(c, domain.UserContext{UserID: "u", Gender: "female", Country: "US"}, "web") {
		t.Fatal("matching gender and country must pass")
	}
	if Matches(c, domain.UserContext{UserID: "u", Gender: "male", Country: "US"}, "web") {
		t.Fatal("gender outside the list must fail")
	}
	if Matches(c, domain.UserContext{UserID: "u", Gender: "female", Country: "DE"}, "web") {
		t.Fatal("country outside the list must fail")
	}
}

// TestMatchesInterests checks the any-match policy with case-insensitive
// substring comparison in both directions.
func TestMatchesInterests(t *testing.T) {
	c := candidateWith(domain.Targeting{
		Interests: []string{"Electronic Music", "Tech"},
	})

	cases := []struct {
		interests []string
		want      bool
	}{
		{[]string{"music"}, true},             // substring of a target
		{[]string{"technology"}, true},        // target is substring of keyword
		{[]string{"TECH"}, true},              // case-insensitive
		{[]string{"cooking", "music"}, true},  // one hit is enough
		{[]string{"cooking", "travel"}, false},
		{nil, false}, // targeted ad set needs at least one hit
	}
	for _, tc := range cases {
		got := Matches(c, domain.UserContext{UserID: "u", Interests: tc.interests}, "web")
		if got != tc.want {
			t.Fatalf("interests %v: got %v, want %v", tc.interests, got, tc.want)
		}
	}
}
