package service

import "strings"

// wordsPerMinute is the reading speed the estimate divides by.
const wordsPerMinute = 200

// EstimateReadingTime returns the minutes-to-read for a plain-text
// projection of a post: words divided by 200, rounded up, never below 1.
func EstimateReadingTime(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
