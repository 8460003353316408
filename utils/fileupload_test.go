package utils

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImageFile(t *testing.T) {
	tests := []struct {
		name         string
		fileName     string
		size         int64
		expectedCode string
	}{
		{"valid png", "swatch.png", 1024, ""},
		{"uppercase extension", "SWATCH.PNG", 1024, ""},
		{"jpg rejected", "swatch.jpg", 1024, "INVALID_FILE_FORMAT"},
		{"no extension", "swatch", 1024, "INVALID_FILE_FORMAT"},
		{"too large", "swatch.png", MaxFileSize + 1, "FILE_TOO_LARGE"},
		{"exactly at the limit", "swatch.png", MaxFileSize, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := &multipart.FileHeader{Filename: tt.fileName, Size: tt.size}
			err := ValidateImageFile(header)

			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var uploadErr *FileUploadError
			require.ErrorAs(t, err, &uploadErr)
			assert.Equal(t, tt.expectedCode, uploadErr.Code)
		})
	}
}
