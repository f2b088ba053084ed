// Package main provides a static health probe for distroless explorer
// images. It understands a subset of wget flags so it can drop into a
// container HEALTHCHECK unchanged, and with --upstream it checks the AAS
// repository passthrough instead of the explorer's own liveness endpoint.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort    = "5010"
	defaultTimeout = 5 * time.Second

	livenessEndpoint = "health"
	upstreamEndpoint = "health/upstream"
)

type probe struct {
	url      string
	endpoint string
	output   string
	quiet    bool
	spider   bool
	debug    bool
	timeout  time.Duration
}

func main() {
	p, err := parseArgs(os.Args)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if p.url == "" {
		p.url = serviceURL(p.endpoint)
	}

	if p.debug {
		_, _ = fmt.Fprintf(os.Stderr, "healthprobe url=%s timeout=%s\n", p.url, p.timeout)
	}

	if err := run(p); err != nil {
		if !p.quiet {
			_, _ = fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

func parseArgs(args []string) (probe, error) {
	p := probe{
		endpoint: livenessEndpoint,
		output:   "-",
		timeout:  defaultTimeout,
	}

	// Invoked under its own name the probe stays silent; wget callers
	// opt in with --quiet.
	if filepath.Base(args[0]) == "healthprobe" {
		p.quiet = true
	}

	rest := args[1:]
	for len(rest) > 0 {
		arg := rest[0]
		rest = rest[1:]

		switch {
		case arg == "--upstream":
			p.endpoint = upstreamEndpoint
		case arg == "--quiet" || arg == "-q":
			p.quiet = true
		case arg == "--spider":
			p.spider = true
		case arg == "--debug":
			p.debug = true
		case arg == "--tries":
			if len(rest) == 0 {
				return p, errors.New("HEALTHPROBE-PARSE-MISSINGTRIES")
			}
			rest = rest[1:]
		case strings.HasPrefix(arg, "--tries="):
			// Retries are the orchestrator's job.
		case arg == "--output-document" || arg == "-O":
			if len(rest) == 0 {
				return p, errors.New("HEALTHPROBE-PARSE-MISSINGOUTPUT")
			}
			p.output = rest[0]
			rest = rest[1:]
		case strings.HasPrefix(arg, "--output-document="):
			p.output = strings.TrimPrefix(arg, "--output-document=")
		case arg == "--timeout":
			if len(rest) == 0 {
				return p, errors.New("HEALTHPROBE-PARSE-MISSINGTIMEOUT")
			}
			seconds, err := strconv.Atoi(rest[0])
			if err != nil || seconds <= 0 {
				return p, errors.New("HEALTHPROBE-PARSE-INVALIDTIMEOUT")
			}
			p.timeout = time.Duration(seconds) * time.Second
			rest = rest[1:]
		case strings.HasPrefix(arg, "-"):
			// Unknown wget flags are tolerated, not fatal.
		default:
			p.url = arg
		}
	}

	if !p.spider && p.output == "" {
		p.output = "-"
	}

	return p, nil
}

// serviceURL targets the explorer on the loopback interface, honoring the
// same SERVER_PORT and SERVER_CONTEXTPATH the service itself was started
// with.
func serviceURL(endpoint string) string {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = defaultPort
	}

	contextPath := strings.TrimSuffix(os.Getenv("SERVER_CONTEXTPATH"), "/")
	return fmt.Sprintf("http://127.0.0.1:%s%s/%s", port, contextPath, endpoint)
}

func run(p probe) error {
	client := &http.Client{Timeout: p.timeout}

	response, err := client.Get(p.url)
	if err != nil {
		return fmt.Errorf("HEALTHPROBE-RUN-REQUESTFAILED: %w", err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	// The upstream passthrough answers 503 with {"status":"DOWN"} when
	// the repository is unreachable; any 4xx/5xx fails the probe.
	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("HEALTHPROBE-RUN-UNHEALTHYSTATUS: %d", response.StatusCode)
	}

	if p.spider {
		_, _ = io.Copy(io.Discard, response.Body)
		return nil
	}

	if p.output == "-" {
		if _, err = io.Copy(os.Stdout, response.Body); err != nil {
			return fmt.Errorf("HEALTHPROBE-RUN-WRITESTDOUTFAILED: %w", err)
		}
		return nil
	}

	file, err := os.Create(p.output)
	if err != nil {
		return fmt.Errorf("HEALTHPROBE-RUN-CREATEOUTPUTFAILED: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err = io.Copy(file, response.Body); err != nil {
		return fmt.Errorf("HEALTHPROBE-RUN-WRITEOUTPUTFAILED: %w", err)
	}
	return nil
}
