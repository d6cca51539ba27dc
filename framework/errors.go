package framework

import (
	"errors"
	"strings"
)

// reformatError cleans up multi-line assertion failure messages (such as the
// ones produced by testify) so they indent sensibly in console output.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	var kept []string
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" && len(kept) == 0 {
			continue
		}
		kept = append(kept, trimmed)
	}
	for len(kept) > 0 && kept[len(kept)-1] == "" {
		kept = kept[:len(kept)-1]
	}
	return errors.New(strings.Join(kept, "\n"))
}
