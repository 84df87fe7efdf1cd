package util

import (
	"io"
	"net/http"
)

// GetSafeContentType detecta o content type pelos primeiros bytes do
// arquivo, ignorando a extensão informada pelo cliente.
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}
