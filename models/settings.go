package models

import "strings"

const (
	SidebarLeft  = "left"
	SidebarRight = "right"
	SidebarOff   = "off"
)

const (
	DefaultVolume          = 5
	DefaultSpeed           = 1.0
	DefaultSidebarPosition = SidebarLeft
)

// UserSettings is one row of per-user preferences. Subreddit lists are
// stored as comma-separated lowercase names without the r/ prefix; order
// is meaningful, deduplication is the caller's job.
type UserSettings struct {
	UserID          uint    `gorm:"primaryKey"`
	PinnedSubs      string  `gorm:"default:''"`
	BannedSubs      string  `gorm:"default:''"`
	FeedPinnedSubs  string  `gorm:"default:''"`
	DefaultVolume   int     `gorm:"default:5"`
	DefaultSpeed    float64 `gorm:"default:1.0"`
	SidebarPosition string  `gorm:"default:left"`
	TitleLinks      *bool   `gorm:"default:true"`
}

func (s *UserSettings) Pinned() []string {
	return SplitSubs(s.PinnedSubs)
}

func (s *UserSettings) Banned() []string {
	return SplitSubs(s.BannedSubs)
}

func (s *UserSettings) FeedPinned() []string {
	return SplitSubs(s.FeedPinnedSubs)
}

func (s *UserSettings) TitleLinksEnabled() bool {
	if s.TitleLinks == nil {
		return true
	}
	return *s.TitleLinks
}

func SplitSubs(raw string) []string {
	if raw == "" {
		return nil
	}
	var subs []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			subs = append(subs, part)
		}
	}
	return subs
}

func JoinSubs(subs []string) string {
	return strings.Join(subs, ",")
}
