package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Stages of loading the input; callers match them with errors.Is to pick a
// diagnostic.
var (
	ErrOpen  = errors.New("open input")
	ErrRead  = errors.New("read input")
	ErrClose = errors.New("close input")
)

// Options controls how input content is normalised after loading.
type Options struct {
	DecodeUTF16 bool
}

// ReadInput loads the whole of path, or of stdin when path is empty. The file
// is closed before returning; a failed close is reported like a failed read.
func ReadInput(path string, stdin io.Reader, opts Options) (data []byte, err error) {
	if path == "" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		return NormalizeTextContent(data, opts.DecodeUTF16), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			data = nil
			err = fmt.Errorf("%w: %w", ErrClose, cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrRead, path)
	}

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return NormalizeTextContent(data, opts.DecodeUTF16), nil
}
