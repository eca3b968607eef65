// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

// Package readtime estimates how long a post takes to read.
package readtime

import (
	"fmt"
	"strings"
)

// wordsPerMinute is the assumed adult reading speed.
const wordsPerMinute = 200

// Estimate returns a human-readable read time for the given content,
// e.g. "2 min read". The estimate is ceil(words / 200) with a floor of
// one minute, so even empty content reads as "1 min read".
func Estimate(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
