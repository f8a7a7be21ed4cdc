package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSubs(t *testing.T) {
	assert.Nil(t, SplitSubs(""))
	assert.Equal(t, []string{"golang"}, SplitSubs("golang"))
	assert.Equal(t, []string{"golang", "programming"}, SplitSubs("golang,programming"))
	assert.Equal(t, []string{"a", "b"}, SplitSubs(" a , ,b, "))
}

func TestJoinSubs(t *testing.T) {
	assert.Equal(t, "", JoinSubs(nil))
	assert.Equal(t, "golang,programming", JoinSubs([]string{"golang", "programming"}))
}

func TestSubsRoundTrip(t *testing.T) {
	subs := []string{"golang", "programming", "linux"}
	assert.Equal(t, subs, SplitSubs(JoinSubs(subs)))
}

func TestTitleLinksEnabled(t *testing.T) {
	var s UserSettings
	assert.True(t, s.TitleLinksEnabled())

	disabled := false
	s.TitleLinks = &disabled
	assert.False(t, s.TitleLinksEnabled())

	enabled := true
	s.TitleLinks = &enabled
	assert.True(t, s.TitleLinksEnabled())
}
