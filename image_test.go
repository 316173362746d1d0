package seamcarver

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_FormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"out.jpg", FormatJPEG},
		{"out.JPEG", FormatJPEG},
		{"-", FormatJPEG},
		{"dir/out.png", FormatPNG},
		{"out.gif", FormatGIF},
		{"out.bmp", FormatBMP},
	}
	for _, tc := range tests {
		got, err := FormatFromPath(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}

	_, err := FormatFromPath("out.tiff")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestImage_EncodeDecode(t *testing.T) {
	src := newUniformImage(6, 4, color.NRGBA{R: 0x40, G: 0x80, B: 0xc0, A: 0xff})

	for _, format := range []string{FormatJPEG, FormatPNG, FormatGIF, FormatBMP} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, format))

			img, got, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, format, got)
			assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
		})
	}
}

func TestImage_EncodeLosslessFormatsKeepPixels(t *testing.T) {
	src := newIndexedImage(5, 3)

	for _, format := range []string{FormatPNG, FormatBMP} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, src, format))

		img, _, err := Decode(&buf)
		require.NoError(t, err)
		g, err := GridFromImage(img)
		require.NoError(t, err)
		for y := 0; y < 3; y++ {
			for x := 0; x < 5; x++ {
				assert.Equal(t, src.NRGBAAt(x, y), g.At(x, y), "%s pixel (%d, %d)", format, x, y)
			}
		}
	}
}

func TestImage_EncodeRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, newIndexedImage(2, 2), "tiff")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestImage_DecodeRejectsGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewBufferString("garbage"))
	assert.Error(t, err)
}
