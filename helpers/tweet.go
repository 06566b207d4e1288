package helpers

import (
	"unicode/utf8"

	"mvdan.cc/xurls"
)

const (
	// TweetMaxLength is the weighted length twitter accepts for a status
	TweetMaxLength = 280

	// TweetURLLength is what every link counts as after t.co wrapping
	TweetURLLength = 23
)

// TweetLength approximates the weighted length twitter computes for $text:
// every URL counts as TweetURLLength, everything else per rune.
func TweetLength(text string) int {
	length := 0
	last := 0
	for _, loc := range xurls.Relaxed.FindAllStringIndex(text, -1) {
		length += utf8.RuneCountInString(text[last:loc[0]]) + TweetURLLength
		last = loc[1]
	}
	return length + utf8.RuneCountInString(text[last:])
}
