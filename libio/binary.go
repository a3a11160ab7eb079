package libio

import (
	"encoding/binary"
	"io"
)

// BinaryReader reads fixed size values and remembers the first error.
// Offset is the position of the value read last.
type BinaryReader struct {
	Order  binary.ByteOrder
	Src    io.Reader
	Offset int
	Err    error
	pos    int
}

func (br *BinaryReader) ReadRef(data any) (ok bool) {
	if br.Err != nil {
		return false
	}
	br.Offset = br.pos
	if br.Err = binary.Read(br.Src, br.Order, data); br.Err != nil {
		return false
	}
	br.pos += binary.Size(data)
	return true
}

// BinaryWriter is the counterpart to BinaryReader.
type BinaryWriter struct {
	Order binary.ByteOrder
	Dst   io.Writer
	Err   error
}

func (bw *BinaryWriter) WriteRef(data any) (ok bool) {
	if bw.Err != nil {
		return false
	}
	bw.Err = binary.Write(bw.Dst, bw.Order, data)
	return bw.Err == nil
}

func (bw *BinaryWriter) WriteBytes(p []byte) (ok bool) {
	if bw.Err != nil {
		return false
	}
	_, bw.Err = bw.Dst.Write(p)
	return bw.Err == nil
}
