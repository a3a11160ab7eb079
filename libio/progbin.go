package libio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/pierrec/lz4/v4"
)

const MagicNumberGLP = 0x4c50_474c

const GLPVersion1 = 1

// MaxProgramBinaryLength bounds the payload a header may announce. Linked
// programs of the tutorials are a few kilobytes.
const MaxProgramBinaryLength = 64 << 20

// ProgramBinaryHeader precedes the lz4 frame of a cached program binary.
type ProgramBinaryHeader struct {
	Check    uint32
	Version  uint32
	Format   uint32
	Length   uint32
	Checksum uint32
}

// ProgramBinary is a driver specific, linked shader program as returned by
// glGetProgramBinary.
type ProgramBinary struct {
	Format uint32
	Data   []byte
}

func EncodeProgramBinary(w io.Writer, prog *ProgramBinary) (err error) {
	if len(prog.Data) > MaxProgramBinaryLength {
		return fmt.Errorf("program binary of %d bytes exceeds the limit of %d bytes", len(prog.Data), MaxProgramBinaryLength)
	}

	bw := &BinaryWriter{
		Dst:   w,
		Order: binary.LittleEndian,
	}

	header := ProgramBinaryHeader{
		Check:    MagicNumberGLP,
		Version:  GLPVersion1,
		Format:   prog.Format,
		Length:   uint32(len(prog.Data)),
		Checksum: crc32.ChecksumIEEE(prog.Data),
	}

	if !bw.WriteRef(header) {
		return fmt.Errorf("could not write program binary header: %w", bw.Err)
	}

	buf := bytes.NewBuffer(nil)
	lzw := lz4.NewWriter(buf)
	err = lzw.Apply(lz4.CompressionLevelOption(lz4.Fast))
	if err != nil {
		return err
	}
	if _, err = lzw.Write(prog.Data); err != nil {
		return fmt.Errorf("could not compress program binary: %w", err)
	}
	if err = lzw.Close(); err != nil {
		return fmt.Errorf("could not compress program binary: %w", err)
	}

	if !bw.WriteBytes(buf.Bytes()) {
		return fmt.Errorf("could not write program binary: %w", bw.Err)
	}
	return nil
}

func DecodeProgramBinary(r io.Reader) (prog *ProgramBinary, err error) {
	br := &BinaryReader{
		Src:   r,
		Order: binary.LittleEndian,
	}

	header := ProgramBinaryHeader{}
	if !br.ReadRef(&header) {
		return nil, fmt.Errorf("expected program binary header; byte 0x%08x: %w", br.Offset, br.Err)
	}

	if header.Check != MagicNumberGLP {
		return nil, fmt.Errorf("program binary header is corrupt; byte 0x%08x", br.Offset)
	}

	if header.Version != GLPVersion1 {
		return nil, fmt.Errorf("program binary version %d unsupported; byte 0x%08x", header.Version, br.Offset)
	}

	if header.Length > MaxProgramBinaryLength {
		return nil, fmt.Errorf("program binary length %d exceeds the limit of %d bytes", header.Length, MaxProgramBinaryLength)
	}

	data := make([]byte, header.Length)
	lzr := lz4.NewReader(br.Src)
	if _, err = io.ReadFull(lzr, data); err != nil {
		return nil, fmt.Errorf("could not decompress program binary: %w", err)
	}

	if crc32.ChecksumIEEE(data) != header.Checksum {
		return nil, fmt.Errorf("program binary checksum mismatch")
	}

	return &ProgramBinary{
		Format: header.Format,
		Data:   data,
	}, nil
}
