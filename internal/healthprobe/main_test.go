/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func TestParseArgsDefaults(t *testing.T) {
	p, err := parseArgs([]string{"healthprobe"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !p.quiet {
		t.Fatal("expected quiet default under the healthprobe name")
	}
	if p.endpoint != livenessEndpoint {
		t.Fatalf("expected liveness endpoint, got %q", p.endpoint)
	}
	if p.timeout != defaultTimeout {
		t.Fatalf("expected timeout %v, got %v", defaultTimeout, p.timeout)
	}
}

func TestParseArgsUpstreamMode(t *testing.T) {
	p, err := parseArgs([]string{"healthprobe", "--upstream", "--timeout", "3"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if p.endpoint != upstreamEndpoint {
		t.Fatalf("expected upstream endpoint, got %q", p.endpoint)
	}
	if p.timeout != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %v", p.timeout)
	}
}

func TestParseArgsWgetCompatibility(t *testing.T) {
	p, err := parseArgs([]string{
		"wget",
		"--quiet",
		"--tries=1",
		"--spider",
		"--no-verbose",
		"http://localhost:5010/health",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !p.quiet || !p.spider {
		t.Fatal("expected quiet spider probe")
	}
	if p.url != "http://localhost:5010/health" {
		t.Fatalf("unexpected url %q", p.url)
	}
}

func TestParseArgsRejectsInvalidTimeout(t *testing.T) {
	for _, value := range []string{"abc", "0", "-2"} {
		if _, err := parseArgs([]string{"wget", "--timeout", value}); err == nil {
			t.Fatalf("expected error for timeout %q", value)
		}
	}
}

func TestServiceURL(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SERVER_CONTEXTPATH", "")

	if url := serviceURL(livenessEndpoint); url != "http://127.0.0.1:5010/health" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestServiceURLWithContextPath(t *testing.T) {
	t.Setenv("SERVER_PORT", "8089")
	t.Setenv("SERVER_CONTEXTPATH", "/aas/")

	if url := serviceURL(upstreamEndpoint); url != "http://127.0.0.1:8089/aas/health/upstream" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestRunSucceedsOnHealthyService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		_, _ = writer.Write([]byte(`{"status":"UP"}`))
	}))
	defer server.Close()

	err := run(probe{url: server.URL, spider: true, timeout: time.Second})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestRunFailsWhenUpstreamIsDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusServiceUnavailable)
		_, _ = writer.Write([]byte(`{"status":"DOWN"}`))
	}))
	defer server.Close()

	err := run(probe{url: server.URL, spider: true, timeout: time.Second})
	if err == nil {
		t.Fatal("expected error for 503 upstream status")
	}
}

func TestRunWritesBodyToFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		_, _ = writer.Write([]byte(`{"status":"UP"}`))
	}))
	defer server.Close()

	originalDir, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatalf("failed getting working directory: %v", wdErr)
	}
	if chdirErr := os.Chdir(t.TempDir()); chdirErr != nil {
		t.Fatalf("failed changing directory: %v", chdirErr)
	}
	t.Cleanup(func() { _ = os.Chdir(originalDir) })

	err := run(probe{url: server.URL, output: "health.json", timeout: time.Second})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, readErr := os.ReadFile("health.json")
	if readErr != nil {
		t.Fatalf("failed reading output file: %v", readErr)
	}
	if string(content) != `{"status":"UP"}` {
		t.Fatalf("unexpected file content %q", string(content))
	}
}
