package imaging

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/klauspost/compress/flate"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// FixPNG writes a standard PNG copy of src to dest. Apple-crushed
// (CgBI) images are decoded and re-encoded; anything else is copied
// byte for byte.
func FixPNG(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	if !isCgBI(data) {
		return os.WriteFile(dest, data, 0644)
	}

	img, err := decodeCgBI(data)
	if err != nil {
		return fmt.Errorf("cgbi %s: %w", filepath.Base(src), err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

// EncodePNG writes m to dest as a PNG with the alpha channel intact.
func EncodePNG(m image.Image, dest string) error {
	dc := gg.NewContextForImage(m)

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	return dc.EncodePNG(f)
}

// isCgBI reports whether data starts with a PNG signature followed by
// Apple's CgBI chunk.
func isCgBI(data []byte) bool {
	return len(data) >= 16 &&
		bytes.Equal(data[:8], pngMagic) &&
		string(data[12:16]) == "CgBI"
}

type chunk struct {
	typ  string
	data []byte
}

func readChunks(data []byte) ([]chunk, error) {
	if len(data) < len(pngMagic) || !bytes.Equal(data[:len(pngMagic)], pngMagic) {
		return nil, errors.New("not a PNG file")
	}

	var chunks []chunk
	off := len(pngMagic)
	for off+8 <= len(data) {
		n := int(binary.BigEndian.Uint32(data[off : off+4]))
		typ := string(data[off+4 : off+8])
		if n < 0 || off+8+n+4 > len(data) {
			return nil, fmt.Errorf("truncated %s chunk", typ)
		}
		chunks = append(chunks, chunk{typ: typ, data: data[off+8 : off+8+n]})
		off += 8 + n + 4
		if typ == "IEND" {
			break
		}
	}

	return chunks, nil
}

// decodeCgBI reads Apple's proprietary PNG variant: the IDAT stream is
// raw DEFLATE with no zlib envelope, pixels are byte-ordered BGRA, and
// color channels are premultiplied by alpha.
func decodeCgBI(data []byte) (*image.NRGBA, error) {
	chunks, err := readChunks(data)
	if err != nil {
		return nil, err
	}

	var (
		w, h int
		idat []byte
		ihdr bool
	)
	for _, c := range chunks {
		switch c.typ {
		case "IHDR":
			if len(c.data) != 13 {
				return nil, errors.New("malformed IHDR chunk")
			}
			w = int(binary.BigEndian.Uint32(c.data[0:4]))
			h = int(binary.BigEndian.Uint32(c.data[4:8]))
			depth, colorType, interlace := c.data[8], c.data[9], c.data[12]
			if depth != 8 || colorType != 6 || interlace != 0 {
				return nil, fmt.Errorf("unsupported layout: depth %d, color type %d, interlace %d",
					depth, colorType, interlace)
			}
			ihdr = true
		case "IDAT":
			idat = append(idat, c.data...)
		}
	}
	if !ihdr {
		return nil, errors.New("missing IHDR chunk")
	}
	if len(idat) == 0 {
		return nil, errors.New("missing IDAT data")
	}
	if w <= 0 || h <= 0 || w > 1<<15 || h > 1<<15 {
		return nil, fmt.Errorf("bad dimensions %dx%d", w, h)
	}

	zr := flate.NewReader(bytes.NewReader(idat))
	raw, err := io.ReadAll(zr)
	zr.Close()
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}

	pix, err := unfilter(raw, w, h)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(pix); i += 4 {
		b, g, r, a := pix[i], pix[i+1], pix[i+2], pix[i+3]
		if a != 0 {
			r = unmultiply(r, a)
			g = unmultiply(g, a)
			b = unmultiply(b, a)
		}
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}

	return &image.NRGBA{Pix: pix, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}, nil
}

// unfilter reverses the per-scanline PNG filters (None, Sub, Up,
// Average, Paeth) for 4-byte-per-pixel rows.
func unfilter(data []byte, w, h int) ([]byte, error) {
	const bpp = 4
	stride := w * bpp
	if len(data) < h*(stride+1) {
		return nil, fmt.Errorf("short pixel data: %d bytes for %dx%d", len(data), w, h)
	}

	out := make([]byte, h*stride)
	prev := make([]byte, stride)
	for y := 0; y < h; y++ {
		in := data[y*(stride+1):]
		ft := in[0]
		row := out[y*stride : (y+1)*stride]
		copy(row, in[1:stride+1])

		switch ft {
		case 0:
		case 1:
			for i := bpp; i < stride; i++ {
				row[i] += row[i-bpp]
			}
		case 2:
			for i := 0; i < stride; i++ {
				row[i] += prev[i]
			}
		case 3:
			for i := 0; i < stride; i++ {
				var left int
				if i >= bpp {
					left = int(row[i-bpp])
				}
				row[i] += byte((left + int(prev[i])) / 2)
			}
		case 4:
			for i := 0; i < stride; i++ {
				var left, upLeft int
				if i >= bpp {
					left = int(row[i-bpp])
					upLeft = int(prev[i-bpp])
				}
				row[i] += paeth(left, int(prev[i]), upLeft)
			}
		default:
			return nil, fmt.Errorf("unknown filter type %d on row %d", ft, y)
		}

		prev = row
	}

	return out, nil
}

func paeth(a, b, c int) byte {
	p := a + b - c
	pa, pb, pc := abs(p-a), abs(p-b), abs(p-c)
	if pa <= pb && pa <= pc {
		return byte(a)
	}
	if pb <= pc {
		return byte(b)
	}
	return byte(c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func unmultiply(c, a byte) byte {
	v := (int(c)*0xFF + int(a)/2) / int(a)
	if v > 0xFF {
		v = 0xFF
	}
	return byte(v)
}
