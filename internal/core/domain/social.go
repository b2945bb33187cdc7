package domain

import "strings"

// Platform is the social network an action is performed on.
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformTwitter   Platform = "Twitter"
	PlatformTikTok    Platform = "TikTok"
	PlatformYouTube   Platform = "YouTube"
	PlatformFacebook  Platform = "Facebook"
)

// Action is the kind of engagement requested.
type Action string

const (
	ActionLike    Action = "Like"
	ActionFollow  Action = "Follow"
	ActionView    Action = "View"
	ActionComment Action = "Comment"
	ActionShare   Action = "Share"
)

// Worldwide marks a task or campaign without a country restriction.
const Worldwide = "Worldwide"

var platforms = []Platform{PlatformInstagram, PlatformTwitter, PlatformTikTok, PlatformYouTube, PlatformFacebook}

var actions = []Action{ActionLike, ActionFollow, ActionView, ActionComment, ActionShare}

// Valid reports whether p is a supported platform.
func (p Platform) Valid() bool {
	for _, v := range platforms {
		if v == p {
			return true
		}
	}
	return false
}

// Valid reports whether a is a supported action.
func (a Action) Valid() bool {
	for _, v := range actions {
		if v == a {
			return true
		}
	}
	return false
}

// CountryMatches reports whether a resource restricted to target is
// available to a user in country. Empty and Worldwide targets match every
// country, and a user without a country sees every target.
func CountryMatches(target, country string) bool {
	if target == "" || strings.EqualFold(target, Worldwide) {
		return true
	}
	if country == "" || strings.EqualFold(country, Worldwide) {
		return true
	}
	return strings.EqualFold(target, country)
}
