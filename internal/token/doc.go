// Package token defines lexical token kinds for the sage notation.
// Invariants:
//   - Tokens are immutable once produced.
//   - Token.Span covers the token's source bytes exactly, except for
//     StringLit where Text holds the unescaped inner content while
//     Span still covers the quotes.
//   - Newlines are significant and appear as Newline tokens.
//   - Comments appear as Comment tokens; the parser treats them as
//     structural noise, tools still see them.
//   - An unknown @word is an Ident, never an error.
package token
