package analysis

import (
	"sort"

	"github.com/forPelevin/gomoji"

	"github.com/avasilev/chatlens/internal/model"
)

// TopEmoji counts emoji codepoints across message bodies, ranked by
// frequency. Classification is per rune, so multi-codepoint sequences count
// their parts separately. k <= 0 returns all emojis.
func TopEmoji(sender string, msgs []model.Message, k int) []model.EmojiCount {
	counts := make(map[string]int)
	for _, m := range filtered(sender, msgs) {
		for _, r := range m.Body {
			if r < 0x2000 {
				continue
			}
			s := string(r)
			if gomoji.ContainsEmoji(s) {
				counts[s]++
			}
		}
	}
	out := make([]model.EmojiCount, 0, len(counts))
	for e, count := range counts {
		out = append(out, model.EmojiCount{Emoji: e, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Emoji < out[j].Emoji
		}
		return out[i].Count > out[j].Count
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}
