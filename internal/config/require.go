package config

import "log"

// The server refuses to start without these. In particular there is no
// fallback signing secret: a missing JWT_SECRET is a deployment error.

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatalf("missing required env %s", envName)
	}
}
