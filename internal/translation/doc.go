// Package translation wraps external translation providers behind a single
// client with retry, circuit breaking, and fallback to the original text.
// The target language is Korean.
package translation
