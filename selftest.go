package main

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/code679/course-builder/fixtures"
	"github.com/code679/course-builder/store"
	"github.com/code679/course-builder/stubapp"
)

// startSelfTestApp seeds a throwaway store from the CSV fixtures and serves
// the stub application on an ephemeral local port. The returned stop function
// shuts the server down and removes the store.
func startSelfTestApp(dataDir string, verbose bool) (string, func(), error) {
	dir, err := os.MkdirTemp("", "course-builder-selftest")
	if err != nil {
		return "", nil, err
	}

	st, err := store.Open(filepath.Join(dir, "store.db"))
	if err != nil {
		os.RemoveAll(dir)
		return "", nil, err
	}

	ns := st.Namespace("selftest-" + uuid.NewString())
	if err := fixtures.Load(ns, dataDir); err != nil {
		st.Close()
		os.RemoveAll(dir)
		return "", nil, fmt.Errorf("loading fixtures: %w", err)
	}

	logOutput := io.Discard
	if verbose {
		logOutput = os.Stdout
	}
	logger := slog.New(slog.NewTextHandler(logOutput, nil))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		st.Close()
		os.RemoveAll(dir)
		return "", nil, err
	}
	server := &http.Server{Handler: stubapp.New(ns, logger).Handler()}
	go func() {
		_ = server.Serve(ln)
	}()

	stop := func() {
		_ = server.Close()
		_ = st.Close()
		_ = os.RemoveAll(dir)
	}
	return "http://" + ln.Addr().String(), stop, nil
}
