package domain

import "time"

type ProfileName string

// Profile names one assistant backend plus the local credential reference
// used to talk to it. The token itself lives in the secret store, never in
// the profile registry.
type Profile struct {
	Name         ProfileName
	BaseURL      string
	TokenRef     string
	HistoryLimit int
	LastUsedAt   time.Time
}
