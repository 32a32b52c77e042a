package npz

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Array is a dense numeric array in C (row-major) order. Data length must
// equal the product of Shape; rank is limited to 3.
type Array struct {
	Shape []int
	Data  []float64
}

// Len returns the product of the shape, i.e. len(Data) for a valid Array.
func (a Array) Len() int {
	n := 1
	for _, s := range a.Shape {
		n *= s
	}

	return n
}

// Vector builds a rank-1 Array over data (no copy).
func Vector(data []float64) Array {
	return Array{Shape: []int{len(data)}, Data: data}
}

const (
	npyMagic   = "\x93NUMPY"
	maxRank    = 3
	headerUnit = 64 // pad header so the payload starts 64-byte aligned
)

// ReadNPY decodes one .npy stream (format 1.0). Integer and float32 inputs
// are widened to float64.
func ReadNPY(r io.Reader) (Array, error) {
	pre := make([]byte, len(npyMagic)+2+2)
	if _, err := io.ReadFull(r, pre); err != nil {
		return Array{}, fmt.Errorf("npz: reading preamble: %w", err)
	}
	if string(pre[:len(npyMagic)]) != npyMagic {
		return Array{}, ErrBadMagic
	}
	if pre[6] != 1 || pre[7] != 0 {
		return Array{}, ErrUnsupportedVersion
	}

	headerLen := int(binary.LittleEndian.Uint16(pre[8:10]))
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return Array{}, fmt.Errorf("npz: reading header: %w", err)
	}

	descr, fortran, shape, err := parseHeader(string(header))
	if err != nil {
		return Array{}, err
	}
	if fortran {
		return Array{}, ErrFortranOrder
	}
	if len(shape) > maxRank {
		return Array{}, ErrBadShape
	}

	n := 1
	for _, s := range shape {
		n *= s
	}

	data, err := readPayload(r, descr, n)
	if err != nil {
		return Array{}, err
	}

	return Array{Shape: shape, Data: data}, nil
}

// WriteNPY encodes a as a little-endian float64 .npy stream (format 1.0).
func WriteNPY(w io.Writer, a Array) error {
	if len(a.Shape) == 0 || len(a.Shape) > maxRank || a.Len() != len(a.Data) {
		return ErrBadShape
	}

	dims := make([]string, len(a.Shape))
	for i, s := range a.Shape {
		dims[i] = strconv.Itoa(s)
	}
	shape := strings.Join(dims, ", ")
	if len(a.Shape) == 1 {
		shape += "," // numpy's 1-tuple spelling
	}
	header := fmt.Sprintf("{'descr': '<f8', 'fortran_order': False, 'shape': (%s), }", shape)

	// Pad with spaces, terminating newline included in the padded length.
	total := len(npyMagic) + 4 + len(header) + 1
	pad := (headerUnit - total%headerUnit) % headerUnit
	header += strings.Repeat(" ", pad) + "\n"

	pre := make([]byte, 0, len(npyMagic)+4)
	pre = append(pre, npyMagic...)
	pre = append(pre, 1, 0)
	pre = binary.LittleEndian.AppendUint16(pre, uint16(len(header)))
	if _, err := w.Write(pre); err != nil {
		return fmt.Errorf("npz: writing preamble: %w", err)
	}
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("npz: writing header: %w", err)
	}

	buf := make([]byte, 8*len(a.Data))
	for i, v := range a.Data {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("npz: writing payload: %w", err)
	}

	return nil
}

// parseHeader extracts descr, fortran_order and shape from the python-dict
// header literal without a full parser; the three keys are mandatory in
// format 1.0.
func parseHeader(h string) (descr string, fortran bool, shape []int, err error) {
	descr, err = headerString(h, "descr")
	if err != nil {
		return "", false, nil, err
	}

	switch {
	case strings.Contains(h, "'fortran_order': False"):
		fortran = false
	case strings.Contains(h, "'fortran_order': True"):
		fortran = true
	default:
		return "", false, nil, ErrBadHeader
	}

	open := strings.Index(h, "'shape': (")
	if open < 0 {
		return "", false, nil, ErrBadHeader
	}
	rest := h[open+len("'shape': ("):]
	close := strings.Index(rest, ")")
	if close < 0 {
		return "", false, nil, ErrBadHeader
	}

	shape = []int{}
	for _, tok := range strings.Split(rest[:close], ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		dim, convErr := strconv.Atoi(tok)
		if convErr != nil || dim < 0 {
			return "", false, nil, ErrBadHeader
		}
		shape = append(shape, dim)
	}
	if len(shape) == 0 {
		// () scalar: treat as a single element vector.
		shape = []int{1}
	}

	return descr, fortran, shape, nil
}

func headerString(h, key string) (string, error) {
	marker := "'" + key + "': '"
	open := strings.Index(h, marker)
	if open < 0 {
		return "", ErrBadHeader
	}
	rest := h[open+len(marker):]
	close := strings.IndexByte(rest, '\'')
	if close < 0 {
		return "", ErrBadHeader
	}

	return rest[:close], nil
}

// readPayload decodes n elements of the given dtype, widening to float64.
func readPayload(r io.Reader, descr string, n int) ([]float64, error) {
	var width int
	switch descr {
	case "<f8", "<i8":
		width = 8
	case "<f4", "<i4":
		width = 4
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDType, descr)
	}

	raw := make([]byte, n*width)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("npz: reading payload: %w", err)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		chunk := raw[i*width:]
		switch descr {
		case "<f8":
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(chunk))
		case "<f4":
			out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(chunk)))
		case "<i8":
			out[i] = float64(int64(binary.LittleEndian.Uint64(chunk)))
		case "<i4":
			out[i] = float64(int32(binary.LittleEndian.Uint32(chunk)))
		}
	}

	return out, nil
}
