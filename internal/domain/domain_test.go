package domain

import "testing"

func TestExperienceLevelRank(t *testing.T) {
	tests := []struct {
		level ExperienceLevel
		rank  int
	}{
		{LevelBeginner, 1},
		{LevelIntermediate, 2},
		{LevelAdvanced, 3},
		{ExperienceLevel(""), 0},
		{ExperienceLevel("expert"), 0},
		{ExperienceLevel("Beginner"), 0}, // case sensitive on purpose
	}
	for _, tt := range tests {
		if got := tt.level.Rank(); got != tt.rank {
			t.Errorf("Rank(%q) = %d, want %d", tt.level, got, tt.rank)
		}
	}
}

func TestCanonicalPairOrdering(t *testing.T) {
	a, b := CanonicalPair("bbb", "aaa")
	if a != "aaa" || b != "bbb" {
		t.Errorf("CanonicalPair(bbb, aaa) = (%q, %q)", a, b)
	}

	a, b = CanonicalPair("aaa", "bbb")
	if a != "aaa" || b != "bbb" {
		t.Errorf("CanonicalPair(aaa, bbb) = (%q, %q)", a, b)
	}
}

func TestPartnershipOtherUserID(t *testing.T) {
	p := &Partnership{ParticipantA: "aaa", ParticipantB: "bbb"}

	if other, ok := p.OtherUserID("aaa"); !ok || other != "bbb" {
		t.Errorf("OtherUserID(aaa) = (%q, %v)", other, ok)
	}
	if other, ok := p.OtherUserID("bbb"); !ok || other != "aaa" {
		t.Errorf("OtherUserID(bbb) = (%q, %v)", other, ok)
	}
	if _, ok := p.OtherUserID("ccc"); ok {
		t.Error("OtherUserID must fail for non-participants")
	}
}

func TestPartnershipStatusValid(t *testing.T) {
	for _, s := range []PartnershipStatus{PartnershipPending, PartnershipAccepted, PartnershipDeclined} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if PartnershipStatus("cancelled").Valid() {
		t.Error("unknown status should be invalid")
	}
}
