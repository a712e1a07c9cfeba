package domain

import (
	"strings"
	"time"
)

// OtherPosition is the form choice that switches a role to free text.
const OtherPosition = "Other"

// DateLayout is the DD/MM/YYYY form printed on every order.
const DateLayout = "02/01/2006"

const htmlDateLayout = "2006-01-02"

type RoleInput struct {
	Position string
	Other    string
}

type DraftRequest struct {
	Language    Language
	ReferenceID string
	OrderDate   string
	Instruction string
	From        RoleInput
	To          RoleInput
}

// Role is a resolved sender or recipient. Custom roles carry the literal
// free text in Key and are printed as-is in both languages.
type Role struct {
	Key    string `json:"key"`
	Custom bool   `json:"custom,omitempty"`
}

// NormalizeOrderDate defaults an empty date to today and rewrites the
// browser's YYYY-MM-DD date input into DD/MM/YYYY. Other input is kept.
func NormalizeOrderDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Format(DateLayout)
	}
	if t, err := time.Parse(htmlDateLayout, raw); err == nil {
		return t.Format(DateLayout)
	}
	return raw
}
