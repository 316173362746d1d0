package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/esimov/seamcarver"
	"github.com/esimov/seamcarver/utils"
	"golang.org/x/term"
)

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// result holds the outcome of resizing one image of a directory.
type result struct {
	path string
	out  string
	err  error
}

// carve resizes src into dst. The source can be a URL, a pipe, a single
// image file or a directory, in which case every supported image it
// contains is resized concurrently into the dst directory.
func carve(ctx context.Context, proc *seamcarver.Processor, src, dst string, workers int) error {
	logger := loggerFromContext(ctx)

	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return err
		}
		defer os.Remove(f.Name())
		defer f.Close()

		logger.Debug("downloaded source image", "url", src, "file", f.Name())
		return carveFile(ctx, proc, f.Name(), dst)
	}

	if src == pipeName {
		return carveFile(ctx, proc, src, dst)
	}

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to load the source image: %w", err)
	}
	if fi.IsDir() {
		return carveDir(ctx, proc, src, dst, workers)
	}
	return carveFile(ctx, proc, src, dst)
}

// carveDir walks src and resizes every supported image into dst with a pool of workers.
func carveDir(ctx context.Context, proc *seamcarver.Processor, src, dst string, workers int) error {
	logger := loggerFromContext(ctx)
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	paths, errc := walkDir(ctx, src, seamcarver.Extensions)
	results := make(chan result)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			consumer(ctx, proc, src, dst, paths, results)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(results)
		wg.Wait()
	}()

	var errs []error
	for res := range results {
		if res.err != nil {
			logger.Error("resizing image failed", "file", res.path, "err", res.err)
			errs = append(errs, fmt.Errorf("%s: %w", res.path, res.err))
			continue
		}
		logger.Info("image resized", "file", res.out)
	}
	if err := <-errc; err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// walkDir starts a goroutine walking the src directory tree and sending the
// path of every regular file with a supported extension. The walk result is
// sent on the error channel once the paths channel is closed.
func walkDir(ctx context.Context, src string, exts []string) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() || !isValidExtension(filepath.Ext(f.Name()), exts) {
				return nil
			}
			select {
			case <-ctx.Done():
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// consumer resizes the images received on paths and reports every outcome on res.
func consumer(
	ctx context.Context,
	proc *seamcarver.Processor,
	root, dest string,
	paths <-chan string,
	res chan<- result,
) {
	for src := range paths {
		out, err := destPath(dest, root, src)
		if err == nil {
			err = os.MkdirAll(filepath.Dir(out), 0755)
		}
		if err == nil {
			err = carveFile(ctx, proc, src, out)
		}

		select {
		case <-ctx.Done():
			return
		case res <- result{path: src, out: out, err: err}:
		}
	}
}

// destPath returns the output path of src inside the dest directory,
// keeping its location relative to the root source directory so that
// files sharing a name in different subdirectories do not collide.
// Formats that can only be decoded are written as png.
func destPath(dest, root, src string) (string, error) {
	rel, err := filepath.Rel(root, src)
	if err != nil {
		return "", fmt.Errorf("unable to resolve the destination of %s: %w", src, err)
	}
	if _, err := seamcarver.FormatFromPath(rel); err != nil {
		rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".png"
	}
	return filepath.Join(dest, rel), nil
}

// carveFile resizes a single image. The destination file is removed when the resize fails.
func carveFile(ctx context.Context, proc *seamcarver.Processor, in, out string) error {
	format, err := seamcarver.FormatFromPath(out)
	if err != nil {
		return err
	}

	src, err := openSource(in)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := openDest(out)
	if err != nil {
		return err
	}

	err = proc.Process(ctx, src, dst, format)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil && out != pipeName {
		os.Remove(out)
	}
	return err
}

// loadImage decodes the image found at a URL, a pipe or a file path.
func loadImage(in string) (image.Image, error) {
	if utils.IsValidUrl(in) {
		f, err := utils.DownloadImage(in)
		if err != nil {
			return nil, err
		}
		defer os.Remove(f.Name())
		defer f.Close()

		img, _, err := seamcarver.Decode(f)
		return img, err
	}

	src, err := openSource(in)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	img, _, err := seamcarver.Decode(src)
	return img, err
}

// saveImage encodes img to out, picking the format from the file extension.
func saveImage(img image.Image, out string) error {
	format, err := seamcarver.FormatFromPath(out)
	if err != nil {
		return err
	}
	dst, err := openDest(out)
	if err != nil {
		return err
	}
	if err := seamcarver.Encode(dst, img, format); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// openSource opens a regular file, or stdin when in is the pipe name.
func openSource(in string) (io.ReadCloser, error) {
	if in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, nil
}

// openDest creates a regular file, or returns stdout when out is the pipe name.
func openDest(out string) (io.WriteCloser, error) {
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	ext = strings.ToLower(ext)
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}
