package summary

import "strings"

// permissiveTargets scans a Markdown body line by line for link destinations
// containing raw whitespace. CommonMark rejects such destinations, so the AST
// walk in Targets never sees them, but the bracket-parenthesis link form
// admits any characters up to the closing paren and books do carry pages with
// spaces in their names. Only whitespace-bearing destinations are returned;
// everything else is the AST walk's job.
func permissiveTargets(body []byte) []string {
	lines := strings.Split(string(body), "\n")

	inCodeBlock := false
	activeFence := ""

	out := make([]string, 0)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock, activeFence = toggleFencedBlock(inCodeBlock, activeFence, "```")
			continue
		}
		if strings.HasPrefix(trimmed, "~~~") {
			inCodeBlock, activeFence = toggleFencedBlock(inCodeBlock, activeFence, "~~~")
			continue
		}
		if inCodeBlock || strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
			continue
		}

		clean := stripInlineCodeSpans(line)

		out = append(out, inlineTargetsPermissive(clean)...)
		out = append(out, referenceDefinitionTargetPermissive(clean)...)
	}

	return out
}

func containsWhitespace(s string) bool {
	return strings.ContainsAny(s, " \t")
}

func toggleFencedBlock(inCodeBlock bool, activeFence string, fence string) (bool, string) {
	if !inCodeBlock {
		return true, fence
	}
	if activeFence == fence {
		return false, ""
	}
	return inCodeBlock, activeFence
}

func stripInlineCodeSpans(s string) string {
	if !strings.Contains(s, "`") {
		return s
	}

	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '`' {
			out.WriteByte(s[i])
			i++
			continue
		}

		run := 1
		for i+run < len(s) && s[i+run] == '`' {
			run++
		}

		marker := strings.Repeat("`", run)
		closeRel := strings.Index(s[i+run:], marker)
		if closeRel == -1 {
			// Unclosed code span; keep the backticks and continue.
			out.WriteString(marker)
			i += run
			continue
		}

		// Skip the entire code span, including delimiters.
		i = i + run + closeRel + run
	}

	return out.String()
}

// inlineTargetsPermissive extracts whitespace-bearing destinations from
// `[label](target)` and `![alt](target)` forms on a single line.
func inlineTargetsPermissive(line string) []string {
	targets := make([]string, 0)

	for i := 0; i+1 < len(line); i++ {
		if line[i] != ']' || line[i+1] != '(' {
			continue
		}
		if findLinkTextStart(line, i) == -1 {
			continue
		}

		end := strings.Index(line[i+2:], ")")
		if end == -1 {
			continue
		}

		target := line[i+2 : i+2+end]
		if containsWhitespace(target) {
			targets = append(targets, target)
		}
	}

	return targets
}

// findLinkTextStart locates the opening bracket matching the `](` at
// closeBracketPos, or -1 when the bracket pair is incomplete.
func findLinkTextStart(line string, closeBracketPos int) int {
	for j := closeBracketPos - 1; j >= 0; j-- {
		if line[j] == '[' {
			return j
		}
	}
	return -1
}

// referenceDefinitionTargetPermissive extracts a whitespace-bearing target
// from a `[label]: target` reference definition line.
func referenceDefinitionTargetPermissive(line string) []string {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[") {
		return nil
	}

	label, after, ok := strings.Cut(trimmed, "]:")
	if !ok {
		return nil
	}

	// Footnote definitions look like: [^1]: ...
	// They are not Markdown reference link definitions and must not be treated as links.
	if strings.HasPrefix(strings.TrimSpace(label), "[^") {
		return nil
	}

	rest := strings.TrimSpace(after)
	if rest == "" {
		return nil
	}

	target := rest
	if before, _, ok := strings.Cut(rest, " \""); ok {
		target = before
	} else if before, _, ok := strings.Cut(rest, " '"); ok {
		target = before
	}

	target = strings.TrimSpace(target)
	if target == "" {
		return nil
	}

	if !containsWhitespace(target) {
		return nil
	}

	return []string{target}
}
