package wkt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hangxie/citygeom/common"
)

func Test_Tokenizer(t *testing.T) {
	tz := NewTokenizer("SRID=4326;POINT(1 -2.5e3) # comment ( , \n)")
	expected := []Token{
		{Word, "SRID", 0},
		{Equals, "=", 4},
		{Word, "4326", 5},
		{Semicolon, ";", 9},
		{Word, "POINT", 10},
		{LeftParen, "(", 15},
		{Word, "1", 16},
		{Word, "-2.5e3", 18},
		{RightParen, ")", 24},
		{RightParen, ")", 41},
		{EOF, "", 42},
	}
	for _, want := range expected {
		got, err := tz.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	// EOF is sticky
	got, err := tz.Next()
	require.NoError(t, err)
	require.Equal(t, EOF, got.Kind)
}

func Test_TokenizerPushBack(t *testing.T) {
	tz := NewTokenizer("a, b")
	a, err := tz.Next()
	require.NoError(t, err)
	tz.PushBack(a)

	again, err := tz.Next()
	require.NoError(t, err)
	require.Equal(t, a, again)

	peeked, err := tz.Peek()
	require.NoError(t, err)
	require.Equal(t, Comma, peeked.Kind)
	comma, err := tz.Next()
	require.NoError(t, err)
	require.Equal(t, peeked, comma)
}

func Test_TokenizerInvalidCharacter(t *testing.T) {
	tz := NewTokenizer("POINT [1 2]")
	_, err := tz.Next()
	require.NoError(t, err)

	_, err = tz.Next()
	require.ErrorIs(t, err, common.ErrMalformedInput)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 6, perr.Pos)
	require.Equal(t, "[", perr.Token)
}

func Test_TokenKindString(t *testing.T) {
	require.Equal(t, "end of input", EOF.String())
	require.Equal(t, "')'", RightParen.String())
	require.Equal(t, "unknown", TokenKind(99).String())
}
