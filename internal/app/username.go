package app

import "fmt"

const maxUsernameLen = 39

// ValidateUsername accepts GitHub logins: 1-39 ASCII letters, digits and
// hyphens, with no leading, trailing or doubled hyphen.
func ValidateUsername(name string) error {
	if name == "" {
		return fmt.Errorf("username is empty")
	}
	if len(name) > maxUsernameLen {
		return fmt.Errorf("invalid GitHub username %q: longer than %d characters", name, maxUsernameLen)
	}
	prevHyphen := false
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			prevHyphen = false
		case r == '-':
			if i == 0 || i == len(name)-1 || prevHyphen {
				return fmt.Errorf("invalid GitHub username %q: misplaced hyphen", name)
			}
			prevHyphen = true
		default:
			return fmt.Errorf("invalid GitHub username %q: unexpected character %q", name, r)
		}
	}
	return nil
}
