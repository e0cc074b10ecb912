package domain

import "time"

type PartnershipStatus string

const (
	PartnershipPending  PartnershipStatus = "pending"
	PartnershipAccepted PartnershipStatus = "accepted"
	PartnershipDeclined PartnershipStatus = "declined"
)

func (s PartnershipStatus) Valid() bool {
	switch s {
	case PartnershipPending, PartnershipAccepted, PartnershipDeclined:
		return true
	}
	return false
}

// Partnership is the persisted outcome of a successful match. Participants
// are always stored in canonical order (lexicographically smaller id first)
// so a pair is never represented by two mirrored rows.
type Partnership struct {
	ID           string            `json:"id" db:"id"`
	ParticipantA string            `json:"participant_a" db:"participant_a"`
	ParticipantB string            `json:"participant_b" db:"participant_b"`
	Status       PartnershipStatus `json:"status" db:"status"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
}

func (p *Partnership) HasUser(userID string) bool {
	return p.ParticipantA == userID || p.ParticipantB == userID
}

func (p *Partnership) OtherUserID(userID string) (string, bool) {
	if p.ParticipantA == userID {
		return p.ParticipantB, true
	}
	if p.ParticipantB == userID {
		return p.ParticipantA, true
	}
	return "", false
}

// CanonicalPair orders two participant ids so an unordered pair has exactly
// one representation in storage.
func CanonicalPair(userA, userB string) (string, string) {
	if userA > userB {
		return userB, userA
	}
	return userA, userB
}
