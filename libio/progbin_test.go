package libio_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"learn-gl/libio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramBinaryRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("binary shader blob "), 512)
	in := &libio.ProgramBinary{Format: 0x8741, Data: data}

	buf := bytes.NewBuffer(nil)
	require.NoError(t, libio.EncodeProgramBinary(buf, in))
	assert.Less(t, buf.Len(), len(data), "payload should be compressed")

	out, err := libio.DecodeProgramBinary(buf)
	require.NoError(t, err)
	assert.Equal(t, in.Format, out.Format)
	assert.Equal(t, in.Data, out.Data)
}

func TestProgramBinaryCorrupt(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, libio.EncodeProgramBinary(buf, &libio.ProgramBinary{Format: 1, Data: []byte{1, 2, 3, 4}}))

	raw := buf.Bytes()

	badMagic := append([]byte{}, raw...)
	badMagic[0] ^= 0xff
	_, err := libio.DecodeProgramBinary(bytes.NewReader(badMagic))
	assert.ErrorContains(t, err, "corrupt")

	badSum := append([]byte{}, raw...)
	badSum[16] ^= 0xff
	_, err = libio.DecodeProgramBinary(bytes.NewReader(badSum))
	assert.ErrorContains(t, err, "checksum")

	_, err = libio.DecodeProgramBinary(bytes.NewReader(raw[:10]))
	assert.Error(t, err)
}

func TestProgramBinaryRejectsOversizedLength(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, binary.Write(buf, binary.LittleEndian, libio.ProgramBinaryHeader{
		Check:   libio.MagicNumberGLP,
		Version: libio.GLPVersion1,
		Format:  1,
		Length:  0xffff_fff0,
	}))

	_, err := libio.DecodeProgramBinary(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the limit")
}
