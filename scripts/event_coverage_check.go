// event_coverage_check.go: Static check that every domain event has a handler
// Usage: go run ./scripts
// Reads the event type constants from pkg/domain/events/event_type.go and the
// bus.Register calls in pkg/app/setup_eventbus.go, and reports any event type
// nothing listens to.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
)

var (
	constRe    = regexp.MustCompile(`^\s*(EventType[A-Za-z0-9]+)\s+EventType\s*=`)
	registerRe = regexp.MustCompile(`bus\.Register\(\s*events\.(EventType[A-Za-z0-9]+)`)
)

// scan returns the first submatch of re for every line of the file at path.
func scan(path string, re *regexp.Regexp) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := re.FindStringSubmatch(scanner.Text()); len(m) == 2 {
			out = append(out, m[1])
		}
	}
	return out, scanner.Err()
}

func eventCoverageCheck(root string, w io.Writer) int {
	declared, err := scan(filepath.Join(root, "pkg/domain/events/event_type.go"), constRe)
	if err != nil {
		fmt.Fprintln(w, "Error: could not read event types:", err) //nolint:errcheck
		return 1
	}
	registered, err := scan(filepath.Join(root, "pkg/app/setup_eventbus.go"), registerRe)
	if err != nil {
		fmt.Fprintln(w, "Error: could not read event registrations:", err) //nolint:errcheck
		return 1
	}

	fmt.Fprintln(w, "Event Handlers:") //nolint:errcheck
	var missing []string
	for _, et := range declared {
		n := 0
		for _, r := range registered {
			if r == et {
				n++
			}
		}
		fmt.Fprintf(w, "  %s -> %d handler(s)\n", et, n) //nolint:errcheck
		if n == 0 {
			missing = append(missing, et)
		}
	}
	for _, r := range registered {
		if !slices.Contains(declared, r) {
			fmt.Fprintf(w, "  %s is registered but not declared\n", r) //nolint:errcheck
			missing = append(missing, r)
		}
	}

	if len(declared) == 0 {
		fmt.Fprintln(w, "\n❌ No event types found.") //nolint:errcheck
		return 1
	}
	if len(missing) > 0 {
		fmt.Fprintln(w, "\n❌ Unhandled event types:", missing) //nolint:errcheck
		return 1
	}
	fmt.Fprintln(w, "\n✅ Every event type has a handler.") //nolint:errcheck
	return 0
}

func main() {
	os.Exit(eventCoverageCheck(".", os.Stdout))
}
