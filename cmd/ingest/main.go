package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ameya/pathserve/internal/config"
	"github.com/ameya/pathserve/internal/logging"
)

func main() {
	var (
		graphPath = flag.String("graph", "", "Path to the graph JSON file to upload")
		serverURL = flag.String("server", "http://localhost:8080", "Base URL of a running pathserve server")
		start     = flag.String("start", "", "Start node ID for an optional shortest-path query")
		end       = flag.String("end", "", "End node ID for an optional shortest-path query")
		timeout   = flag.Duration("timeout", 30*time.Second, "Request timeout")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "ingest")

	if *graphPath == "" {
		logger.Error("missing -graph flag")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := &http.Client{Timeout: *timeout}

	if err := uploadGraph(ctx, client, *serverURL, *graphPath); err != nil {
		logger.Error("graph upload failed", "error", err, "path", *graphPath)
		os.Exit(1)
	}
	logger.Info("graph uploaded", "path", *graphPath)

	if *start == "" || *end == "" {
		return
	}

	result, err := solveShortestPath(ctx, client, *serverURL, *start, *end)
	if err != nil {
		logger.Error("shortest path query failed", "error", err)
		os.Exit(1)
	}
	logger.Info("shortest path solved", "start", *start, "end", *end, "result", result)
}

func uploadGraph(ctx context.Context, client *http.Client, serverURL, path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read graph file: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverURL+"/graphs", &body)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server rejected upload (%d): %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}

func solveShortestPath(ctx context.Context, client *http.Client, serverURL, start, end string) (string, error) {
	query := url.Values{}
	query.Set("start", start)
	query.Set("end", end)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverURL+"/paths/shortest?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build solve request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("solve request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read solve response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server rejected query (%d): %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	var pretty bytes.Buffer
	if err := json.Compact(&pretty, raw); err != nil {
		return string(raw), nil
	}
	return pretty.String(), nil
}
