package session_test

import (
	"testing"

	"github.com/rpggio/wordbook/internal/domain/dictionary"
	"github.com/rpggio/wordbook/internal/domain/session"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	sess := session.New("s1", false)
	require.Equal(t, "s1", sess.ID)
	require.Nil(t, sess.Dictionary)
	require.Nil(t, sess.Printout)
	require.Nil(t, sess.Statistics)
	require.Empty(t, sess.Path)
	require.False(t, sess.DatesEnabled)
	require.Empty(t, sess.DictionaryName())
}

func TestDictionaryName(t *testing.T) {
	d, err := dictionary.New("Words")
	require.NoError(t, err)

	sess := session.New("s1", true)
	sess.Dictionary = d
	require.Equal(t, "Words", sess.DictionaryName())
	require.True(t, sess.DatesEnabled)
}
