package chatlog

import (
	"regexp"
	"strings"
)

// NotificationSender is the synthetic sender assigned to system messages
// that carry no "name: " prefix (join notices, encryption banners, ...).
const NotificationSender = "group_notification"

// A sender prefix is the shortest leading run of non-colon characters
// followed by ": ". A display name containing a colon therefore
// misattributes; that limitation comes with the export format itself.
var senderRE = regexp.MustCompile(`^([^:]+?):\s`)

// SplitAttribution separates a leading "sender: " prefix from the body.
// Bodies without the prefix belong to NotificationSender.
func SplitAttribution(body string) (sender, text string) {
	if m := senderRE.FindStringSubmatchIndex(body); m != nil {
		return strings.TrimSpace(body[m[2]:m[3]]), strings.TrimSpace(body[m[1]:])
	}
	return NotificationSender, strings.TrimSpace(body)
}
