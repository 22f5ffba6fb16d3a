package shared

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/xid"
)

// UniqueID returns a sortable, time based id used in report file names.
func UniqueID() string {
	return xid.New().String()
}

// RandomSuffix returns n random hex characters. n is capped at 32.
func RandomSuffix(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
