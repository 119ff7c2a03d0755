package aoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// session returns the adventofcode.com session cookie. See loadSession.
var session = sync.OnceValues(loadSession)

// loadSession reads the session cookie from $AOC_SESSION (a .env file in
// the working directory is honored) or from ~/keys/aoc.session.
func loadSession() (string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("loading .env: %w", err)
	}
	if s := strings.TrimSpace(os.Getenv("AOC_SESSION")); s != "" {
		return s, nil
	}
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	if err != nil {
		return "", fmt.Errorf("no AOC_SESSION and no session file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func fetch(url string) ([]byte, error) {
	sess, err := session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: sess})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

// fileOrFetch returns the contents of filename, fetching them from url and
// caching them in filename if the file does not exist.
func fileOrFetch(filename, url string) ([]byte, error) {
	f, err := os.ReadFile(filename)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	body, err := fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}
