package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/webp"
)

const (
	// MaxLogoBytes caps uploaded logo files.
	MaxLogoBytes = 5 << 20
	// svgLogoPx is the longer side SVG logos are rasterized at.
	svgLogoPx = 512
)

// Logo is a decoded center image, kept both as pixels for compositing and
// as PNG bytes for embedding into SVG output.
type Logo struct {
	Name   string
	MIME   string
	Size   int
	Digest string
	Image  image.Image
	PNG    []byte
}

// DecodeLogo accepts PNG, JPEG, GIF, WebP and SVG files.
func DecodeLogo(name string, data []byte) (*Logo, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidLogo)
	}
	if len(data) > MaxLogoBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidLogo, MaxLogoBytes)
	}

	var (
		img  image.Image
		mime string
		err  error
	)
	if isSVG(name, data) {
		img, err = rasterizeSVG(data)
		mime = "image/svg+xml"
	} else {
		var format string
		img, format, err = image.Decode(bytes.NewReader(data))
		mime = "image/" + format
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLogo, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLogo, err)
	}

	return &Logo{
		Name:   filepath.Base(name),
		MIME:   mime,
		Size:   len(data),
		Digest: strconv.FormatUint(xxhash.Sum64(data), 16),
		Image:  img,
		PNG:    buf.Bytes(),
	}, nil
}

func isSVG(name string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(name), ".svg") {
		return true
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}

func rasterizeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = svgLogoPx, svgLogoPx
	}
	k := svgLogoPx / math.Max(w, h)
	pw, ph := int(math.Round(w*k)), int(math.Round(h*k))

	icon.SetTarget(0, 0, float64(pw), float64(ph))
	rgba := image.NewRGBA(image.Rect(0, 0, pw, ph))
	scanner := rasterx.NewScannerGV(pw, ph, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(pw, ph, scanner), 1)
	return rgba, nil
}
