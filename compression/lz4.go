package compression

import (
	"bytes"
	"io"
	"strings"

	"github.com/pierrec/lz4/v4"
)

const Lz4Extension = ".lz4"

func IsLz4Path(path string) bool {
	return strings.HasSuffix(path, Lz4Extension)
}

func CompressLz4(src []byte, output *bytes.Buffer) error {
	zw := lz4.NewWriter(output)

	_, writeErr := zw.Write(src)
	if writeErr != nil {
		return writeErr
	}

	flushErr := zw.Flush()
	if flushErr != nil {
		return flushErr
	}

	return zw.Close()
}

// NewLz4Writer wraps w, the caller must Close the returned writer to
// flush the frame footer
func NewLz4Writer(w io.Writer) *lz4.Writer {
	return lz4.NewWriter(w)
}

func NewLz4Reader(r io.Reader) io.Reader {
	return lz4.NewReader(r)
}

func DecompressLz4(src []byte) ([]byte, error) {
	out := bytes.Buffer{}

	_, err := io.Copy(&out, lz4.NewReader(bytes.NewReader(src)))
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
