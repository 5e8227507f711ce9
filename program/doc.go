// Package program implements the lexer and loop resolver for the bft
// tape language.
//
// Source text is lexed into positioned tokens, one per instruction
// character; every other character is a comment. A Program pairs the
// tokens with a jump table that maps each loop bracket to its match, so a
// constructed Program is always loop-consistent.
package program
