package token

import "context"

// Tokenizer is the contract every language plug-in must satisfy: turn
// source content into a Stream, or report that it could not.
//
// Implementations must make Kind assignment a pure, deterministic
// function of source-tree node type — the same content tokenized twice
// must produce byte-identical Kind sequences, even across process
// restarts, since nothing else about a Token is compared during
// matching.
type Tokenizer interface {
	// TokenizeString tokenizes content taken to already be the full text
	// of one source file. path is used only to annotate errors; it need
	// not correspond to a real filesystem path.
	TokenizeString(ctx context.Context, path, content string) (Stream, error)
}

// Func adapts a plain function to the Tokenizer interface.
type Func func(ctx context.Context, path, content string) (Stream, error)

// TokenizeString implements Tokenizer.
func (f Func) TokenizeString(ctx context.Context, path, content string) (Stream, error) {
	return f(ctx, path, content)
}
