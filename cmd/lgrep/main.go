package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/patrickward/lgrep"
)

const (
	appName    = "lgrep"
	appVersion = "0.1.0"
)

// Process exit statuses
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// parseArgs extracts the two required positional arguments.
func parseArgs(args []string) (pattern, path string, err error) {
	switch len(args) {
	case 0:
		return "", "", &lgrep.ArgumentError{Name: "<pattern>"}
	case 1:
		return "", "", &lgrep.ArgumentError{Name: "<path>"}
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", &lgrep.ArgumentError{Unexpected: args[2]}
	}
}

// exitCode maps a pipeline error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var argErr *lgrep.ArgumentError
	if errors.As(err, &argErr) {
		return exitUsage
	}

	return exitFailure
}

// report writes err as a single line to the error stream and returns its exit status.
func report(stderr io.Writer, err error) int {
	log.Printf("error: %v", err)
	_, _ = fmt.Fprintf(stderr, "%s: %v\n", appName, err)
	return exitCode(err)
}

// run is the whole program; it returns the exit status instead of exiting.
func run(args []string, stdout, stderr io.Writer) int {
	var logFile string
	var identityFile string
	var showVersion bool

	DisableLogging()

	flagSet := flag.NewFlagSet(appName, flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&logFile, "log", "", "Write diagnostic logs to the given file (rotated).")
	flagSet.StringVar(&logFile, "l", "", "Write diagnostic logs to the given file (rotated).")
	flagSet.StringVar(&identityFile, "identity", "", "Use the age identity file at the specified path to decrypt encrypted files.")
	flagSet.StringVar(&identityFile, "i", "", "Use the age identity file at the specified path to decrypt encrypted files.")
	flagSet.BoolVar(&showVersion, "version", false, "Show application version.")

	flagSet.Usage = func() {
		_, _ = fmt.Fprintf(flagSet.Output(), "lgrep - print the lines of a file that contain a pattern\n\n")
		_, _ = fmt.Fprintf(flagSet.Output(), "Usage:\n")
		_, _ = fmt.Fprintf(flagSet.Output(), "  %s [options] [--] <pattern> <path>\n\n", appName)
		_, _ = fmt.Fprintf(flagSet.Output(), "Examples:\n")
		_, _ = fmt.Fprintf(flagSet.Output(), "  # Search a plain text file:\n")
		_, _ = fmt.Fprintf(flagSet.Output(), "  %s apple fruit.txt\n\n", appName)
		_, _ = fmt.Fprintf(flagSet.Output(), "  # Search an age-encrypted note:\n")
		_, _ = fmt.Fprintf(flagSet.Output(), "  %s -identity ~/.padd/keys/key.txt todo inbox.md\n\n", appName)
		_, _ = fmt.Fprintf(flagSet.Output(), "Options:\n")
		flagSet.PrintDefaults()
	}

	// The flag package has already printed the problem and the usage text
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if showVersion {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", appName, appVersion)
		return exitOK
	}

	pattern, path, err := parseArgs(flagSet.Args())
	if err != nil {
		return report(stderr, err)
	}

	if logFile != "" {
		closer, err := SetupLogging(DefaultLogConfig(logFile))
		if err != nil {
			return report(stderr, fmt.Errorf("cannot open log file %s: %w", logFile, err))
		}
		defer func() {
			_ = closer.Close()
		}()
	}

	encryptionManager := lgrep.NewEncryptionManager()
	if identityFile != "" {
		if err := encryptionManager.AddIdentitiesFromFile(identityFile); err != nil {
			return report(stderr, fmt.Errorf("cannot load identity file %s: %w", identityFile, err))
		}
		log.Printf("loaded age identities from %s", identityFile)
	}

	log.Printf("searching %s for %q", path, pattern)

	matcher := lgrep.NewMatcher(pattern, lgrep.WithEncryptionManager(encryptionManager))
	matches, err := matcher.Search(path)
	if err != nil {
		return report(stderr, err)
	}

	if err := lgrep.WriteMatches(stdout, matches); err != nil {
		return report(stderr, err)
	}

	log.Printf("%d matching lines in %s", len(matches), path)
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
