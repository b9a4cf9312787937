package manifest

import "strings"

// IsValidName reports whether s is a valid package or export name:
// a lowercase letter followed by lowercase letters, digits, '_' or '-'.
func IsValidName(s string) bool {
	if s == "" {
		return false
	}
	if s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

// ToSnakeCase converts a name to snake_case.
// "my-ext" -> "my_ext", "MyExt" -> "my_ext", "parse" -> "parse"
func ToSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				prev := rune(s[i-1])
				if prev >= 'a' && prev <= 'z' || prev >= '0' && prev <= '9' {
					b.WriteByte('_')
				}
			}
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// QualifiedExport returns the name an export registers under when its
// bare name is already taken: <package>_<export>.
func QualifiedExport(pkg, export string) string {
	return ToSnakeCase(pkg) + "_" + ToSnakeCase(export)
}
