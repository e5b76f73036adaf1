package render

import (
	"fmt"

	"github.com/yeqown/go-qrcode/v2"

	"github.com/cristianadrielbraun/qrstudio/internal/qrconfig"
)

// finderSize is the side of a finder pattern in modules.
const finderSize = 7

// symbol is a captured copy of the encoded module matrix.
type symbol struct {
	dim  int
	dark [][]bool // [y][x]
}

func (s *symbol) isDark(x, y int) bool {
	if x < 0 || y < 0 || x >= s.dim || y >= s.dim {
		return false
	}
	return s.dark[y][x]
}

// isFinder reports whether the module belongs to one of the three finder patterns.
func (s *symbol) isFinder(x, y int) bool {
	far := s.dim - finderSize
	return (x < finderSize && y < finderSize) ||
		(x >= far && y < finderSize) ||
		(x < finderSize && y >= far)
}

// finderOrigins returns the top-left module of each finder pattern.
func (s *symbol) finderOrigins() [3][2]int {
	far := s.dim - finderSize
	return [3][2]int{{0, 0}, {far, 0}, {0, far}}
}

func (s *symbol) isFinderOrigin(x, y int) bool {
	for _, o := range s.finderOrigins() {
		if o[0] == x && o[1] == y {
			return true
		}
	}
	return false
}

// matrixCapture is a qrcode.Writer that copies the matrix instead of drawing it.
type matrixCapture struct {
	sym *symbol
}

func (m *matrixCapture) Write(mat qrcode.Matrix) error {
	w, h := mat.Width(), mat.Height()
	if w != h || w == 0 {
		return fmt.Errorf("%w: unexpected matrix %dx%d", ErrEncodeFailed, w, h)
	}

	sym := &symbol{dim: w, dark: make([][]bool, h)}
	for y := range sym.dark {
		sym.dark[y] = make([]bool, w)
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		sym.dark[y][x] = v.IsSet()
	})
	m.sym = sym
	return nil
}

func (m *matrixCapture) Close() error { return nil }

func correctionLevel(l qrconfig.ErrorCorrection) qrcode.EncodeOption {
	switch l {
	case qrconfig.ErrorCorrectionLow:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case qrconfig.ErrorCorrectionMedium:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	case qrconfig.ErrorCorrectionHigh:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	}
}

// encode builds the QR code for the schema data and captures its matrix.
func encode(s Schema) (*qrcode.QRCode, *symbol, error) {
	qrc, err := qrcode.NewWith(s.Data,
		correctionLevel(s.ErrorCorrectionLevel),
		qrcode.WithEncodingMode(qrcode.EncModeByte),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	capture := &matrixCapture{}
	if err := qrc.Save(capture); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	if capture.sym == nil {
		return nil, nil, fmt.Errorf("%w: empty matrix", ErrEncodeFailed)
	}
	return qrc, capture.sym, nil
}
