// Command tinygrep prints the lines of its input that match a tinyre pattern.
//
// Usage:
//
//	tinygrep [-o] [-n] [-c] [-backend backtrack|re2] [-v] -e PATTERN [FILE...]
//
// With no FILE, standard input is read. The exit status is 0 if a line
// matched, 1 if none did and 2 on error.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coregx/tinyre"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

type options struct {
	onlyMatching bool
	lineNumbers  bool
	count        bool
	withFilename bool
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tinygrep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pattern := fs.String("e", "", "pattern to search for")
	backend := fs.String("backend", string(tinyre.BackendBacktrack), "matching engine: backtrack or re2")
	verbose := fs.Bool("v", false, "log compilation and search statistics to stderr")
	var opts options
	fs.BoolVar(&opts.onlyMatching, "o", false, "print only the matched parts of each line")
	fs.BoolVar(&opts.lineNumbers, "n", false, "prefix each line with its line number")
	fs.BoolVar(&opts.count, "c", false, "print only a count of matching lines")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tinygrep [options] -e PATTERN [FILE...]\n\n")
		fmt.Fprintln(stderr, "Prints lines matching a tinyre pattern.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitMatch
		}
		return exitError
	}

	files := fs.Args()
	if *pattern == "" {
		if len(files) == 0 {
			fmt.Fprintln(stderr, "error: a pattern is required")
			fs.Usage()
			return exitError
		}
		*pattern, files = files[0], files[1:]
	}
	opts.withFilename = len(files) > 1

	log := newLogger(*verbose, stderr)
	config := tinyre.DefaultConfig()
	config.Backend = tinyre.Backend(*backend)
	re, err := tinyre.CompileWithConfig(*pattern, config)
	if err != nil {
		fmt.Fprintf(stderr, "tinygrep: %v\n", err)
		return exitError
	}
	log.Log("pattern %q: %d groups, backend %s, prefilter %s",
		re.String(), re.NumSubexp(), re.Backend(), re.Prefilter())

	status := exitNoMatch
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		matched, err := grepFile(re, name, stdin, stdout, opts)
		if err != nil {
			fmt.Fprintf(stderr, "tinygrep: %v\n", err)
			status = exitError
			continue
		}
		if matched && status == exitNoMatch {
			status = exitMatch
		}
	}

	stats := re.Stats()
	log.Log("searches=%d attempts=%d candidates=%d confirms=%d misses=%d abandoned=%d literal=%d native=%d",
		stats.Searches, stats.Attempts, stats.PrefilterCandidates, stats.PrefilterConfirms,
		stats.PrefilterMisses, stats.PrefilterAbandoned, stats.LiteralMatches, stats.NativeSearches)
	return status
}

func grepFile(re *tinyre.Regex, name string, stdin io.Reader, stdout io.Writer, opts options) (bool, error) {
	if name == "-" {
		return grep(re, "(standard input)", stdin, stdout, opts)
	}
	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return grep(re, name, f, stdout, opts)
}

// grep scans r line by line and writes the output for one input.
func grep(re *tinyre.Regex, name string, r io.Reader, stdout io.Writer, opts options) (bool, error) {
	w := bufio.NewWriter(stdout)
	defer w.Flush()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	count := 0
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if !re.MatchString(line) {
			continue
		}
		count++
		if opts.count {
			continue
		}

		prefix := ""
		if opts.withFilename {
			prefix += name + ":"
		}
		if opts.lineNumbers {
			prefix += fmt.Sprintf("%d:", lineNo)
		}
		if !opts.onlyMatching {
			fmt.Fprintf(w, "%s%s\n", prefix, line)
			continue
		}
		for _, m := range re.FindAllString(line, -1) {
			if m != "" {
				fmt.Fprintf(w, "%s%s\n", prefix, m)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return count > 0, fmt.Errorf("read %s: %w", name, err)
	}

	if opts.count {
		if opts.withFilename {
			fmt.Fprintf(w, "%s:", name)
		}
		fmt.Fprintf(w, "%d\n", count)
	}
	return count > 0, nil
}
