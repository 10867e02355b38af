package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptProfile asks for a profile name on out and reads one line from in.
// It returns the raw answer; an empty answer or read error yields "".
func PromptProfile(in io.Reader, out io.Writer, names []string) string {
	fmt.Fprintf(out, "Choose a simulation [%s] (default worm): ", strings.Join(names, ", "))
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
