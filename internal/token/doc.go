// Package token defines lexical token kinds and trivia for the Solar
// compiler front-end.
//
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Sized elementary type names (uint256, bytes32, int8, ...) lex as
//     Ident; the type interner recognizes them by name, not the lexer.
//   - Doc comments ('///' and '/**') are preserved as leading Trivia on the
//     following token and never appear in the main token stream.
package token
