package id

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// JobIDPrefix is the fixed prefix of video job identifiers.
const JobIDPrefix = "video_"

var jobIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// New generates a new UUID string. Used for entity ids (users, stories, resources).
func New() string {
	return uuid.New().String()
}

// IsValid reports whether s is a well-formed UUID.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// NewJobID mints a time-based video job identifier, e.g.
// "video_1717622400123_9d3f2a4c". The random suffix keeps jobs accepted
// in the same millisecond from sharing a work dir or output file. Job
// ids double as file names, so they stay within [a-zA-Z0-9_].
func NewJobID() string {
	return fmt.Sprintf("%s%d_%08x", JobIDPrefix, time.Now().UnixMilli(), rand.Uint32())
}

// IsValidJobID reports whether s looks like a job id this service minted.
// The check also guards the download path against traversal, so it must stay strict.
func IsValidJobID(s string) bool {
	if len(s) <= len(JobIDPrefix) || s[:len(JobIDPrefix)] != JobIDPrefix {
		return false
	}
	return jobIDPattern.MatchString(s)
}
