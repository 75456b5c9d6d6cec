package account

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Categories holds the 15 content categories, indexed by hash mod 15.
var Categories = []string{
	"Lifestyle",
	"Travel",
	"Food & Cooking",
	"Fitness",
	"Beauty",
	"Technology",
	"Gaming",
	"Music",
	"Art & Design",
	"Photography",
	"Comedy",
	"Education",
	"Sports",
	"Fashion",
	"Business",
}

// Locations holds the 16 account locations, indexed by hash mod 16.
var Locations = []string{
	"Los Angeles, CA",
	"New York, NY",
	"Miami, FL",
	"Chicago, IL",
	"Houston, TX",
	"San Francisco, CA",
	"Seattle, WA",
	"Austin, TX",
	"Denver, CO",
	"Las Vegas, NV",
	"Portland, OR",
	"Atlanta, GA",
	"Boston, MA",
	"San Diego, CA",
	"Nashville, TN",
	"Phoenix, AZ",
}

const nameTransformCount = 4

// displayName picks one of four capitalization transforms of the handle,
// selected by hash mod 4. The title caser is constructed per call: a
// cases.Caser carries transform state and must not be shared across request
// goroutines.
func displayName(handle string, hash int) string {
	switch hash % nameTransformCount {
	case 0:
		return upperFirst(handle)
	case 1:
		return cases.Title(language.English).String(splitSeparators(handle))
	case 2:
		return strings.ToUpper(handle)
	default:
		return upperFirst(stripSeparators(handle))
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

func splitSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '.' || r == '_' {
			return ' '
		}

		return r
	}, s)
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '.' || r == '_' {
			return -1
		}

		return r
	}, s)
}
