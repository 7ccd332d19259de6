// Package scan holds structural string-format scanners. Every scanner is a
// single forward pass over the input with no backtracking, so worst-case cost
// stays linear in the input length.
package scan

import "strings"

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isAlnum(b byte) bool { return isDigit(b) || isLower(b) || (b >= 'A' && b <= 'Z') }
func isHex(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Email checks local@domain with a printable-ASCII local part and a
// hostname-shaped domain.
func Email(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if local == "" || domain == "" {
		return false
	}
	for i := 0; i < len(local); i++ {
		b := local[i]
		if isAlnum(b) || strings.IndexByte("!#$%&'*+/=?^_`{|}~.-", b) >= 0 {
			continue
		}
		return false
	}
	return Hostname(domain)
}

// UUID checks the canonical 8-4-4-4-12 hex-with-dashes form.
func UUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < 36; i++ {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return false
			}
		default:
			if !isHex(s[i]) {
				return false
			}
		}
	}
	return true
}

// URL checks for an http or https scheme followed by a non-empty,
// whitespace-free remainder.
func URL(s string) bool {
	rest, ok := strings.CutPrefix(s, "https://")
	if !ok {
		rest, ok = strings.CutPrefix(s, "http://")
	}
	if !ok || rest == "" {
		return false
	}
	return strings.IndexFunc(rest, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) < 0
}

// IPv4 checks dotted-quad form with no leading zeros.
func IPv4(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		if part == "" || len(part) > 3 {
			return false
		}
		if len(part) > 1 && part[0] == '0' {
			return false
		}
		n := 0
		for i := 0; i < len(part); i++ {
			if !isDigit(part[i]) {
				return false
			}
			n = n*10 + int(part[i]-'0')
		}
		if n > 255 {
			return false
		}
	}
	return true
}

// IPv6 checks colon-grouped hex form, allowing one "::" shorthand.
func IPv6(s string) bool {
	if s == "::" {
		return true
	}
	left, right, hasDouble := s, "", false
	if pos := strings.Index(s, "::"); pos >= 0 {
		left, right, hasDouble = s[:pos], s[pos+2:], true
	}
	var groups []string
	if left != "" {
		groups = strings.Split(left, ":")
	}
	if right != "" {
		groups = append(groups, strings.Split(right, ":")...)
	}
	if hasDouble {
		if len(groups) > 7 {
			return false
		}
	} else if len(groups) != 8 {
		return false
	}
	for _, g := range groups {
		if g == "" || len(g) > 4 {
			return false
		}
		for i := 0; i < len(g); i++ {
			if !isHex(g[i]) {
				return false
			}
		}
	}
	return true
}

// Base64 checks standard-alphabet base64 with at most two trailing pads and a
// length divisible by four.
func Base64(s string) bool {
	if s == "" || len(s)%4 != 0 {
		return false
	}
	padStarted := false
	pads := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if padStarted {
			if b != '=' {
				return false
			}
			pads++
		} else if b == '=' {
			padStarted = true
			pads++
		} else if !isAlnum(b) && b != '+' && b != '/' {
			return false
		}
	}
	return pads <= 2
}

// digits consumes exactly n ASCII digits from s, returning the parsed value
// and the remainder.
func digits(s string, n int) (int, string, bool) {
	if len(s) < n {
		return 0, "", false
	}
	v := 0
	for i := 0; i < n; i++ {
		if !isDigit(s[i]) {
			return 0, "", false
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, s[n:], true
}

// ISODate checks YYYY-MM-DD. Any four-digit year is accepted; days are
// bounded 1..31 without calendar awareness.
func ISODate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, rest, ok := digits(s, 4)
	if !ok {
		return false
	}
	rest = strings.TrimPrefix(rest, "-")
	month, rest, ok := digits(rest, 2)
	if !ok {
		return false
	}
	rest = strings.TrimPrefix(rest, "-")
	day, rest, ok := digits(rest, 2)
	if !ok || rest != "" {
		return false
	}
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// ISOTime checks HH:MM[:SS[.frac]].
func ISOTime(s string) bool {
	if len(s) < 5 {
		return false
	}
	hour, rest, ok := digits(s, 2)
	if !ok {
		return false
	}
	rest, ok = strings.CutPrefix(rest, ":")
	if !ok {
		return false
	}
	min, rest, ok := digits(rest, 2)
	if !ok || hour > 23 || min > 59 {
		return false
	}
	if rest == "" {
		return true
	}
	rest, ok = strings.CutPrefix(rest, ":")
	if !ok {
		return false
	}
	sec, rest, ok := digits(rest, 2)
	if !ok || sec > 59 {
		return false
	}
	if rest == "" {
		return true
	}
	rest, ok = strings.CutPrefix(rest, ".")
	if !ok || rest == "" {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if !isDigit(rest[i]) {
			return false
		}
	}
	return true
}

// ISODateTime checks YYYY-MM-DDTHH:MM[:SS[.frac]][Z|+HH:MM|-HH:MM].
func ISODateTime(s string) bool {
	tPos := strings.IndexByte(s, 'T')
	if tPos < 0 {
		return false
	}
	if !ISODate(s[:tPos]) {
		return false
	}
	afterT := s[tPos+1:]
	timePart := afterT
	if pos := strings.LastIndexByte(afterT, 'Z'); pos >= 0 {
		timePart = afterT[:pos]
	} else if pos := strings.LastIndexByte(afterT, '+'); pos >= 0 {
		timePart = afterT[:pos]
	} else if len(afterT) > 1 {
		// skip the first char so the hour field never looks like a sign
		if pos := strings.LastIndexByte(afterT[1:], '-'); pos >= 0 {
			timePart = afterT[:pos+1]
		}
	}
	return ISOTime(timePart)
}

// Hostname checks dot-separated labels of up to 63 chars each, alphanumeric
// plus inner hyphens, 253 chars total.
func Hostname(s string) bool {
	if s == "" || len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if label == "" || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			if !isAlnum(label[i]) && label[i] != '-' {
				return false
			}
		}
	}
	return true
}

// CUID2 checks a lowercase-letter start followed by lowercase alphanumerics.
func CUID2(s string) bool {
	if s == "" || !isLower(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLower(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// ULID checks 26 chars from Crockford's Base32 (no I, L, O, U).
func ULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		switch {
		case b >= '0' && b <= '9':
		case b >= 'A' && b <= 'H':
		case b == 'J' || b == 'K' || b == 'M' || b == 'N':
		case b >= 'P' && b <= 'T':
		case b >= 'V' && b <= 'Z':
		default:
			return false
		}
	}
	return true
}

// NanoID checks a non-empty run of URL-safe alphabet chars.
func NanoID(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlnum(s[i]) && s[i] != '_' && s[i] != '-' {
			return false
		}
	}
	return true
}

// Emoji reports whether the string contains at least one codepoint from the
// common emoji blocks.
func Emoji(s string) bool {
	for _, r := range s {
		cp := uint32(r)
		switch {
		case cp >= 0x1F600 && cp <= 0x1F64F,
			cp >= 0x1F300 && cp <= 0x1F5FF,
			cp >= 0x1F680 && cp <= 0x1F6FF,
			cp >= 0x1F1E0 && cp <= 0x1F1FF,
			cp >= 0x2702 && cp <= 0x27B0,
			cp >= 0x2600 && cp <= 0x26FF,
			cp >= 0xFE00 && cp <= 0xFE0F,
			cp >= 0x1F900 && cp <= 0x1F9FF,
			cp >= 0x1FA00 && cp <= 0x1FA6F,
			cp >= 0x1FA70 && cp <= 0x1FAFF,
			cp >= 0x231A && cp <= 0x231B,
			cp >= 0x23E9 && cp <= 0x23F3,
			cp >= 0x23F8 && cp <= 0x23FA,
			cp == 0x200D, cp == 0x2B50, cp == 0x2764:
			return true
		}
	}
	return false
}

// Slug checks lowercase alphanumeric runs separated by single hyphens.
func Slug(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	prevHyphen := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '-' {
			if prevHyphen {
				return false
			}
			prevHyphen = true
			continue
		}
		if !isLower(b) && !isDigit(b) {
			return false
		}
		prevHyphen = false
	}
	return true
}
