package token

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsProjectsBareBytes(t *testing.T) {
	s := Stream{
		{Kind: 1, Spelling: "a"},
		{Kind: 2, Spelling: "b"},
		{Kind: 3, Spelling: "c"},
	}
	assert.Equal(t, []byte{1, 2, 3}, s.Kinds())
}

func TestSliceIsHalfOpen(t *testing.T) {
	s := Stream{{Kind: 1}, {Kind: 2}, {Kind: 3}, {Kind: 4}}
	sub := s.Slice(1, 3)
	assert.Equal(t, Stream{{Kind: 2}, {Kind: 3}}, sub)
}

func TestFuncAdaptsTokenizer(t *testing.T) {
	var tok Tokenizer = Func(func(ctx context.Context, path, content string) (Stream, error) {
		return Stream{{Kind: 9}}, nil
	})
	out, err := tok.TokenizeString(context.Background(), "x.py", "ignored")
	assert.NoError(t, err)
	assert.Equal(t, Stream{{Kind: 9}}, out)
}
