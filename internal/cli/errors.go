package cli

import (
	"fmt"
	"strconv"
	"strings"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type invalidLineError struct {
	arg string
}

func (e invalidLineError) Error() string {
	return fmt.Sprintf("invalid line %q: want a positive number such as 0003", e.arg)
}

// parseLine reads a displayed line number ("0003" or "3").
func parseLine(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, invalidLineError{arg: arg}
	}
	return n, nil
}
