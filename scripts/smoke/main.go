// Command smoke exercises the core endpoints of a running remark-assist
// server and exits non-zero on the first failure. Intended for post-deploy
// checks; it needs no API key because generation degrades gracefully.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type check struct {
	Name       string
	Method     string
	Path       string
	Body       interface{}
	WantStatus int
}

func main() {
	var (
		base    string
		prefix  string
		timeout time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&prefix, "prefix", "/api/v1", "API route prefix")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	roster := []map[string]interface{}{
		{"sequence_number": 1, "full_name": "Nguyễn Văn A", "score": 9},
		{"sequence_number": 2, "full_name": "Trần Thị B", "score": 6.5},
	}

	checks := []check{
		{Name: "health", Method: http.MethodGet, Path: "/health", WantStatus: http.StatusOK},
		{Name: "ready", Method: http.MethodGet, Path: "/ready", WantStatus: http.StatusOK},
		{Name: "metrics", Method: http.MethodGet, Path: "/metrics", WantStatus: http.StatusOK},
		{Name: "subjects", Method: http.MethodGet, Path: prefix + "/subjects", WantStatus: http.StatusOK},
		{
			Name:       "process",
			Method:     http.MethodPost,
			Path:       prefix + "/remarks/process",
			Body:       map[string]interface{}{"subject": "Toán", "records": roster},
			WantStatus: http.StatusOK,
		},
		{
			Name:       "export-remarks",
			Method:     http.MethodPost,
			Path:       prefix + "/exports/remarks?format=csv",
			Body:       map[string]interface{}{"records": roster},
			WantStatus: http.StatusOK,
		},
		{
			Name:       "session",
			Method:     http.MethodPost,
			Path:       prefix + "/sessions",
			Body:       map[string]interface{}{"subject": "Toán", "grade": "Khối 3", "semester": "Học kỳ 1"},
			WantStatus: http.StatusCreated,
		},
	}

	client := &http.Client{Timeout: timeout}
	failures := 0
	for _, c := range checks {
		status, dur, err := run(client, base, c)
		if err != nil {
			log.Printf("FAIL %-16s %v", c.Name, err)
			failures++
			continue
		}
		if status != c.WantStatus {
			log.Printf("FAIL %-16s status %d, want %d", c.Name, status, c.WantStatus)
			failures++
			continue
		}
		log.Printf("ok   %-16s %d (%s)", c.Name, status, dur.Round(time.Millisecond))
	}

	fmt.Printf("Failures: %d\n", failures)
	if failures > 0 {
		os.Exit(1)
	}
}

func run(client *http.Client, base string, c check) (int, time.Duration, error) {
	var body io.Reader
	if c.Body != nil {
		payload, err := json.Marshal(c.Body)
		if err != nil {
			return 0, 0, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(c.Method, base+c.Path, body)
	if err != nil {
		return 0, 0, err
	}
	if c.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	dur := time.Since(start)
	if err != nil {
		return 0, dur, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, dur, nil
}
