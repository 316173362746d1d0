package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// DownloadImage fetches the image behind url into a temporary file.
// The caller is responsible for closing and removing the file.
func DownloadImage(url string) (*os.File, error) {
	res, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("unable to download image file from URI %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download image file from URI %s: status %s", url, res.Status)
	}

	tmpfile, err := os.CreateTemp("", "image")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %w", err)
	}

	if _, err := io.Copy(tmpfile, res.Body); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("unable to copy the source URI into the destination file: %w", err)
	}

	ctype, err := DetectContentType(tmpfile)
	if err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, err
	}
	if !strings.HasPrefix(ctype, "image/") {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("the downloaded file is not a valid image type: %s", ctype)
	}

	return tmpfile, nil
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	if _, err := url.ParseRequestURI(uri); err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

// DetectContentType sniffs the MIME type of f and rewinds it to the beginning.
func DetectContentType(f io.ReadSeeker) (string, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	// Only the first 512 bytes are used to sniff the content type.
	buffer := make([]byte, 512)
	n, err := io.ReadFull(f, buffer)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buffer[:n]), nil
}
