package npz_test

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/lowgrav/lgpd/npz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNPY_WriteRead round-trips a rank-2 float64 array through the npy codec.
func TestNPY_WriteRead(t *testing.T) {
	in := npz.Array{Shape: []int{2, 3}, Data: []float64{1, 2, 3, 4.5, -6, 0}}

	var buf bytes.Buffer
	require.NoError(t, npz.WriteNPY(&buf, in))

	out, err := npz.ReadNPY(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.Shape, out.Shape)
	assert.Equal(t, in.Data, out.Data)
}

// TestNPY_PayloadAlignment verifies the encoded header pads the payload to
// a 64-byte boundary, as numpy's writer does.
func TestNPY_PayloadAlignment(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, npz.WriteNPY(&buf, npz.Vector([]float64{1, 2, 3})))

	raw := buf.Bytes()
	headerLen := int(binary.LittleEndian.Uint16(raw[8:10]))
	assert.Zero(t, (10+headerLen)%64, "payload must start 64-byte aligned")
}

// TestNPY_RejectsGarbage verifies the magic and shape guards.
func TestNPY_RejectsGarbage(t *testing.T) {
	_, err := npz.ReadNPY(bytes.NewReader([]byte("not an npy stream")))
	assert.ErrorIs(t, err, npz.ErrBadMagic)

	err = npz.WriteNPY(&bytes.Buffer{}, npz.Array{Shape: []int{2, 2}, Data: []float64{1}})
	assert.ErrorIs(t, err, npz.ErrBadShape)

	err = npz.WriteNPY(&bytes.Buffer{}, npz.Array{Shape: []int{1, 1, 1, 1}, Data: []float64{1}})
	assert.ErrorIs(t, err, npz.ErrBadShape, "rank above 3 must be rejected")
}

// TestNPY_WidensIntegers verifies '<i8' payloads decode to float64 values.
func TestNPY_WidensIntegers(t *testing.T) {
	// Hand-build a minimal '<i8' npy stream for [2, 3, 5].
	header := "{'descr': '<i8', 'fortran_order': False, 'shape': (3,), }"
	pad := (64 - (10+len(header)+1)%64) % 64
	for i := 0; i < pad; i++ {
		header += " "
	}
	header += "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.Write([]byte{1, 0})
	var lenBytes [2]byte
	binary.LittleEndian.PutUint16(lenBytes[:], uint16(len(header)))
	buf.Write(lenBytes[:])
	buf.WriteString(header)
	for _, v := range []int64{2, 3, 5} {
		var cell [8]byte
		binary.LittleEndian.PutUint64(cell[:], uint64(v))
		buf.Write(cell[:])
	}

	arr, err := npz.ReadNPY(&buf)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, arr.Shape)
	assert.Equal(t, []float64{2, 3, 5}, arr.Data)
}

// TestNPZ_FileRoundTrip round-trips a named archive through the filesystem.
func TestNPZ_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posterior.npz")
	in := map[string]npz.Array{
		"chain":   {Shape: []int{4, 2}, Data: []float64{0, 1, 2, 3, 4, 5, 6, 7}},
		"logprob": npz.Vector([]float64{-1, -2, -3, -4}),
	}
	require.NoError(t, npz.WriteFile(path, in))

	out, err := npz.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, in["chain"].Data, out["chain"].Data)
	assert.Equal(t, in["chain"].Shape, out["chain"].Shape)
	assert.Equal(t, in["logprob"].Data, out["logprob"].Data)
}

// TestNPZ_MissingFile verifies the error names the offending path.
func TestNPZ_MissingFile(t *testing.T) {
	_, err := npz.ReadFile(filepath.Join(t.TempDir(), "absent.npz"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.npz")
}
