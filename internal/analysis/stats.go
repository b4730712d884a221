package analysis

import (
	"strings"

	"mvdan.cc/xurls/v2"

	"github.com/avasilev/chatlens/internal/chatlog"
	"github.com/avasilev/chatlens/internal/model"
)

// Relaxed matching also catches scheme-less links ("example.com/x"), the
// way chat messages usually carry them.
var urlFinder = xurls.Relaxed()

// Totals counts messages, whitespace-separated words, media placeholders,
// and shared links for the selected sender.
func Totals(sender string, msgs []model.Message) model.Totals {
	var t model.Totals
	for _, m := range filtered(sender, msgs) {
		t.Messages++
		t.Words += len(strings.Fields(m.Body))
		if strings.Contains(m.Body, chatlog.MediaPlaceholder) {
			t.Media++
		}
		t.Links += len(urlFinder.FindAllString(m.Body, -1))
	}
	return t
}
