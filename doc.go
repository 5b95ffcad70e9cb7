// Package mdfix normalizes Japanese Markdown so emphasis and parenthesized
// URLs render the way authors expect.
//
// CommonMark refuses to open or close an emphasis span when the delimiter
// sits between punctuation and a letter with no space. Japanese prose has no
// spaces, so **「強調」**です renders with literal asterisks. mdfix inserts a
// half-width space outside such spans, and rewrites "（https://…）" or
// "(https://…)" into the canonical " (url) " form.
//
// # Quick Start
//
//	out := mdfix.Transform("これは**「重要」**です")
//	// out == "これは **「重要」** です"
//
// Transform is pure and never fails. List markers and indentation are copied
// verbatim. The output usually has as many lines as the input, but a
// parenthesized URL at a line edge absorbs the adjacent line breaks:
// "詳しくは\n(https://a.com)\nを参照" becomes "詳しくは (https://a.com) を参照".
// Diff matches unchanged lines first, so such joins are reported as one
// region.
//
// # Fixer
//
// Fixer wraps Transform with document-level options and an HTML preview:
//
//	f, err := mdfix.NewFixer(
//	    mdfix.WithProtectCode(true),
//	    mdfix.WithSkipFrontmatter(true),
//	    mdfix.WithStyle("minimal"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := f.Fix(ctx, mdfix.Input{Markdown: src, HTML: true})
//
// A Fixer holds no mutable state after construction and is safe for
// concurrent use.
//
// # Known quirks
//
// The transform is not idempotent: running it twice over an already spaced
// span doubles the surrounding spaces. List items are returned unchanged.
// Both behaviors are kept for compatibility with existing documents.
package mdfix
