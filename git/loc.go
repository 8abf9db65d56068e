package git

import (
	"fmt"
	"langtypes/lang"
	"strings"

	"golang.org/x/net/html/charset"
)

// lineCommentPrefixes are single-line comment markers beyond // and #.
var lineCommentPrefixes = map[lang.Language][]string{
	lang.Clojure: {";"},
	lang.Erlang:  {"%"},
	lang.Haskell: {"--"},
	lang.Lua:     {"--"},
}

func isLanguageLineComment(cleanLine string, language lang.Language) bool {
	for _, prefix := range lineCommentPrefixes[language] {
		if strings.HasPrefix(cleanLine, prefix) {
			return true
		}
	}
	return false
}

// countLinesOfCode counts lines of code of a file in the given language:
// - Auto-detects character encoding
// - Normalizes line endings (\r\n -> \n)
// - Skips blank lines
// - Skips single-line comments (// and #, plus -- % ; where the language uses them)
// - Skips multi-line comment blocks (/* */, python """, ruby =begin/=end)
//
// language is an identity of the built-in table; any other value only gets
// the common comment rules.
func countLinesOfCode(contentBytes []byte, language lang.Language) (int, error) {
	encoding, _, _ := charset.DetermineEncoding(contentBytes, "")
	decodedBytes, err := encoding.NewDecoder().Bytes(contentBytes)
	if err != nil {
		return 0, fmt.Errorf("failed to decode file: %v", err)
	}

	// Normalize line endings and split into lines
	content := strings.ReplaceAll(string(decodedBytes), "\r\n", "\n")
	lines := strings.Split(content, "\n")

	linesOfCode := 0
	expectEndingComment := ""

	for _, line := range lines {
		// Handle multi-line comment continuation
		if len(expectEndingComment) > 0 {
			endCommentIndex := strings.Index(line, expectEndingComment)
			if endCommentIndex == -1 {
				// Still in comment block
				continue
			}
			// Comment block ended on this line
			line = strings.TrimSpace(line[endCommentIndex+len(expectEndingComment):])
			expectEndingComment = ""
		}

		cleanLine := strings.TrimSpace(line)

		// Skip blank lines
		if len(cleanLine) == 0 {
			continue
		}

		// Skip single-line comments
		if strings.HasPrefix(cleanLine, "//") || strings.HasPrefix(cleanLine, "#") {
			continue
		}
		if isLanguageLineComment(cleanLine, language) {
			continue
		}

		// Check for multi-line comment start
		const pythonMultilineString = "\"\"\""
		postCommentLine := ""

		if isStartOfMultiLineComment(cleanLine) {
			expectEndingComment = "*/"
			commentIndex := strings.Index(cleanLine, "/*")
			postCommentLine = strings.TrimSpace(cleanLine[2+commentIndex:])
			cleanLine = strings.TrimSpace(cleanLine[:commentIndex])
		} else if language == lang.Python && strings.Contains(cleanLine, pythonMultilineString) {
			expectEndingComment = pythonMultilineString
			commentIndex := strings.Index(cleanLine, pythonMultilineString)
			postCommentLine = strings.TrimSpace(cleanLine[len(pythonMultilineString)+commentIndex:])
			cleanLine = strings.TrimSpace(cleanLine[:commentIndex])
		} else if language == lang.Ruby && strings.HasPrefix(cleanLine, "=begin") {
			expectEndingComment = "=end"
			continue
		} else if language == lang.Ruby && strings.HasPrefix(cleanLine, "<<-DOC") {
			expectEndingComment = "DOC"
			continue
		}

		// Check if comment ends on the same line
		if len(postCommentLine) > 0 {
			endCommentIndex := strings.Index(postCommentLine, expectEndingComment)
			if endCommentIndex == -1 {
				// Comment continues to next line
				if len(cleanLine) == 0 {
					continue
				}
			} else {
				// Comment block ended on this line
				expectEndingComment = ""
			}
		}

		// Skip if line is now empty after removing comment start
		if len(cleanLine) == 0 {
			continue
		}

		linesOfCode++
	}

	return linesOfCode, nil
}

// isStartOfMultiLineComment checks if a line starts a /* */ comment block
func isStartOfMultiLineComment(cleanLine string) bool {
	_, after, found := strings.Cut(cleanLine, "/*")

	if !found {
		return false
	}

	if len(after) > 1 {
		nextChar := after[0:1]
		// Avoid false positives for regex patterns like /*. or strings containing /*
		if strings.ContainsAny(nextChar, "'\".") {
			return false
		}
	}
	return true
}
