package api

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"

	apierrors "github.com/edalrymple/horizon/internal/errors"
)

// SaveImage downloads an image URL and writes it to directory under the
// given name. The file extension is taken from the URL, lower-cased, and
// defaults to ".jpg" when the URL has none. An empty directory means the
// current working directory, resolved at call time. An existing file at the
// destination is overwritten; a missing directory is not created.
// Returns the path written.
func (c *Client) SaveImage(imgURL, directory, name string) (string, error) {
	if directory == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
		directory = wd
	}

	req, err := fhttp.NewRequest(fhttp.MethodGet, imgURL, nil)
	if err != nil {
		return "", apierrors.NewDownloadError(imgURL, "failed to create request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewDownloadError(imgURL, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != 200 {
		return "", apierrors.NewDownloadError(imgURL, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewDownloadError(imgURL, "failed to read response", err)
	}

	dest := filepath.Join(directory, name+imageExt(imgURL))
	if err := os.WriteFile(dest, body, 0o644); err != nil {
		return "", apierrors.NewFileWriteError(dest, err)
	}
	return dest, nil
}

// imageExt derives the output extension from a URL's path, ignoring any
// query string.
func imageExt(imgURL string) string {
	p := imgURL
	if u, err := url.Parse(imgURL); err == nil && u.Path != "" {
		p = u.Path
	}
	ext := strings.ToLower(path.Ext(p))
	if ext == "" {
		ext = ".jpg"
	}
	return ext
}

// ImageWalk saves every image referenced by a response body. It searches the
// body for "img_src" keys; if none exist it falls back to the "url" results
// followed by the "hdurl" results. Each resolved URL is downloaded in result
// order and written as name1, name2, ... under directory.
//
// Downloads are fail-fast: the first failure aborts the walk. The paths
// already written are returned alongside the error.
func (c *Client) ImageWalk(body any, directory, name string) ([]string, error) {
	var finds []Path
	for p := range FindInResponse(body, "img_src") {
		finds = append(finds, p)
	}
	if len(finds) == 0 {
		for p := range FindInResponse(body, "url") {
			finds = append(finds, p)
		}
		for p := range FindInResponse(body, "hdurl") {
			finds = append(finds, p)
		}
	}

	var saved []string
	for i, find := range finds {
		img, err := ResolvePath(body, find)
		if err != nil {
			return saved, err
		}
		imgURL, ok := img.(string)
		if !ok {
			return saved, apierrors.NewDownloadError(fmt.Sprintf("%v", img), "resolved value is not a URL string", nil)
		}
		dest, err := c.SaveImage(imgURL, directory, fmt.Sprintf("%s%d", name, i+1))
		if err != nil {
			return saved, err
		}
		saved = append(saved, dest)
	}
	return saved, nil
}
