package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextReaction(t *testing.T) {
	like := ReactionLike
	dislike := ReactionDislike

	cases := []struct {
		name     string
		current  *ReactionType
		desired  ReactionType
		expected ReactionChange
	}{
		{"нет реакции + like", nil, ReactionLike, ReactionInsert},
		{"нет реакции + dislike", nil, ReactionDislike, ReactionInsert},
		{"like + like снимает", &like, ReactionLike, ReactionDelete},
		{"dislike + dislike снимает", &dislike, ReactionDislike, ReactionDelete},
		{"like + dislike меняет знак", &like, ReactionDislike, ReactionUpdate},
		{"dislike + like меняет знак", &dislike, ReactionLike, ReactionUpdate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NextReaction(tc.current, tc.desired))
		})
	}
}

func TestParseReactionType(t *testing.T) {
	rt, ok := ParseReactionType("like")
	assert.True(t, ok)
	assert.Equal(t, ReactionLike, rt)

	rt, ok = ParseReactionType("dislike")
	assert.True(t, ok)
	assert.Equal(t, ReactionDislike, rt)

	for _, bad := range []string{"", "Like", "LIKE", "superlike", "1"} {
		_, ok := ParseReactionType(bad)
		assert.False(t, ok, "значение %q", bad)
	}
}

func TestReactionTypeString(t *testing.T) {
	assert.Equal(t, "like", ReactionLike.String())
	assert.Equal(t, "dislike", ReactionDislike.String())
}
