// Package pipeline implements the Markdown normalization and preview stages.
//
// The fixing stages run in a fixed order over plain text:
//   - URL normalization over the whole document (parenthesized http/https URLs)
//   - line-structured emphasis spacing (list prefixes kept verbatim)
//   - optional segment protection for fenced code and YAML frontmatter
//
// No AST is built for fixing; every rule is a textual pattern. The HTML
// preview stage (GoldmarkConverter) is separate and only reads the fixed text.
package pipeline
