package signer

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Signer is one approver entry in a routing chain. Rows with a nil
// ProjectID/DepartmentID and empty Category are the form's static default
// chain; everything else is a context-specific override.
type Signer struct {
	ID              uuid.UUID  `json:"signer_id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FormID          uuid.UUID  `json:"signer_form_id" gorm:"type:uuid;index"`
	ProjectID       *uuid.UUID `json:"signer_project_id" gorm:"type:uuid;index"`
	DepartmentID    *uuid.UUID `json:"signer_department_id" gorm:"type:uuid;index"`
	Category        string     `json:"signer_category" gorm:"size:100;index"`
	TeamMemberID    uuid.UUID  `json:"signer_team_member_id" gorm:"type:uuid;not null"`
	IsPrimarySigner bool       `json:"signer_is_primary_signer"`
	Action          string     `json:"signer_action" gorm:"size:50;not null"`
	Order           int        `json:"signer_order" gorm:"column:sort_order"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (Signer) TableName() string {
	return "form_signers"
}

// NormalizeAction folds signer actions to one fixed case on load.
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}

// Normalize returns a copy of list with actions case-normalized and entries
// ordered primary-signer-first, then by signer order. The sort is stable so
// equal entries keep their source order.
func Normalize(list []Signer) []Signer {
	out := make([]Signer, len(list))
	copy(out, list)
	for i := range out {
		out[i].Action = NormalizeAction(out[i].Action)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPrimarySigner != out[j].IsPrimarySigner {
			return out[i].IsPrimarySigner
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// Merge builds the union of several signer lists keyed by team member.
// The first occurrence of an approver wins; later sources never re-add or
// re-order an already-seen approver.
func Merge(lists ...[]Signer) []Signer {
	var merged []Signer
	seen := make(map[uuid.UUID]bool)
	for _, list := range lists {
		for _, s := range list {
			if seen[s.TeamMemberID] {
				continue
			}
			seen[s.TeamMemberID] = true
			merged = append(merged, s)
		}
	}
	return Normalize(merged)
}

// HasPrimary reports whether the list contains at least one primary signer.
func HasPrimary(list []Signer) bool {
	for _, s := range list {
		if s.IsPrimarySigner {
			return true
		}
	}
	return false
}
