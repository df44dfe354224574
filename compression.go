package gwaspost

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType attempts to detect the compression of a stream by checking
// its leading bytes against a set of known signatures. Association tables are
// frequently gzipped before they leave the compute cluster, so the tools here
// cannot assume plain text.
func DetectDataType(r io.Reader) (DataType, error) {
	buff := make([]byte, 6)
	if _, err := io.ReadAtLeast(r, buff, 3); err != nil {
		return DataTypeInvalid, err
	}

Outer:
	for dt, sig := range byteCodeSigs {
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt, nil
	}

	return DataTypeNoCompression, nil
}

// OpenMaybeCompressed opens path and, if its leading bytes identify a known
// compression format, wraps it in the matching decompressor. The caller closes
// the returned ReadCloser; the underlying file is closed along with it.
func OpenMaybeCompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	rc, err := maybeDecompress(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &fileBackedReadCloser{Reader: rc, file: f}, nil
}

func maybeDecompress(f *os.File) (io.Reader, error) {
	dt, err := DetectDataType(f)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		// Shorter than any signature; certainly not compressed.
		_, err := f.Seek(0, io.SeekStart)
		return f, err
	} else if err != nil {
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	switch dt {
	case DataTypeGzip:
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		return gzr, nil
	case DataTypeZip:
		return zipstream.NewReader(f), nil
	case DataTypeBZip2:
		return bzip2.NewReader(f), nil
	case DataTypeXZ:
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		return xzr, nil
	case DataTypeZ:
		zr, err := zlib.NewReader(f)
		if err != nil {
			return nil, err
		}
		return zr, nil
	}

	return f, nil
}

// fileBackedReadCloser closes the underlying *os.File regardless of whether
// the decompressor itself has a Close method.
type fileBackedReadCloser struct {
	io.Reader
	file *os.File
}

func (c *fileBackedReadCloser) Close() error {
	if closer, ok := c.Reader.(io.Closer); ok && c.Reader != io.Reader(c.file) {
		closer.Close()
	}

	return c.file.Close()
}
