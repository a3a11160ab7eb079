package libgl

import (
	"encoding/binary"
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type Buffer struct {
	glId   uint32
	target uint32
	size   int
	usage  uint32
}

func NewBuffer(target uint32) *Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	return &Buffer{
		glId:   id,
		target: target,
	}
}

func (buf *Buffer) Id() uint32 {
	return buf.glId
}

func (buf *Buffer) Size() int {
	return buf.size
}

func (buf *Buffer) Bind() *Buffer {
	if buf.target == gl.ARRAY_BUFFER {
		State.BindArrayBuffer(buf.glId)
	} else {
		gl.BindBuffer(buf.target, buf.glId)
	}
	return buf
}

// Element buffer bindings belong to the bound vertex array, so uploads go
// through the copy-write target to leave the vertex array untouched.
func (buf *Buffer) bindForUpload() uint32 {
	if buf.target == gl.ELEMENT_ARRAY_BUFFER {
		gl.BindBuffer(gl.COPY_WRITE_BUFFER, buf.glId)
		return gl.COPY_WRITE_BUFFER
	}
	buf.Bind()
	return buf.target
}

// Allocate uploads data, replacing the previous storage.
// usage is one of gl.STATIC_DRAW, gl.DYNAMIC_DRAW or gl.STREAM_DRAW.
func (buf *Buffer) Allocate(data any, usage uint32) {
	size := binary.Size(data)
	if size == -1 {
		log.Panicf("%T does not have a fixed size", data)
	}
	target := buf.bindForUpload()
	gl.BufferData(target, size, Pointer(data), usage)
	buf.size = size
	buf.usage = usage
}

func (buf *Buffer) AllocateEmpty(size int, usage uint32) {
	target := buf.bindForUpload()
	gl.BufferData(target, size, nil, usage)
	buf.size = size
	buf.usage = usage
}

// Grow reallocates the buffer when it is smaller than size. The previous
// contents are discarded. Reports whether a reallocation happened.
func (buf *Buffer) Grow(size int) bool {
	if size <= buf.size {
		return false
	}
	newSize := buf.size * 2
	if newSize < size {
		newSize = size
	}
	buf.AllocateEmpty(newSize, buf.usage)
	return true
}

func (buf *Buffer) Write(offset int, data any) {
	size := binary.Size(data)
	if size == -1 {
		log.Panicf("%T does not have a fixed size", data)
	}
	target := buf.bindForUpload()
	gl.BufferSubData(target, offset, size, Pointer(data))
}

// WritePointer uploads size bytes from memory not owned by Go.
func (buf *Buffer) WritePointer(offset, size int, data unsafe.Pointer) {
	target := buf.bindForUpload()
	gl.BufferSubData(target, offset, size, data)
}

func (buf *Buffer) Delete() {
	if State != nil && State.ArrayBuffer == buf.glId {
		State.ArrayBuffer = 0
	}
	gl.DeleteBuffers(1, &buf.glId)
	buf.glId = 0
}

// VertexArray records attribute layouts and the element buffer, and knows
// how to draw its contents.
type VertexArray struct {
	glId      uint32
	Mode      uint32
	Count     int32
	Indexed   bool
	IndexType uint32
	buffers   []*Buffer
	elements  *Buffer
}

func NewVertexArray() *VertexArray {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return &VertexArray{
		glId:      id,
		Mode:      gl.TRIANGLES,
		IndexType: gl.UNSIGNED_INT,
	}
}

func (vao *VertexArray) Id() uint32 {
	return vao.glId
}

func (vao *VertexArray) Bind() *VertexArray {
	State.BindVertexArray(vao.glId)
	return vao
}

// Layout describes one attribute sourced from vbo. stride and offset are
// in bytes.
func (vao *VertexArray) Layout(vbo *Buffer, attribute int, size int, dataType uint32, normalized bool, stride int, offset int) {
	vao.Bind()
	vbo.Bind()
	gl.VertexAttribPointerWithOffset(uint32(attribute), int32(size), dataType, normalized, int32(stride), uintptr(offset))
	gl.EnableVertexAttribArray(uint32(attribute))
	vao.buffers = append(vao.buffers, vbo)
}

func (vao *VertexArray) BindElementBuffer(ebo *Buffer) {
	vao.Bind()
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo.Id())
	vao.elements = ebo
	vao.Indexed = true
}

func (vao *VertexArray) Draw() {
	vao.Bind()
	if vao.Indexed {
		gl.DrawElements(vao.Mode, vao.Count, vao.IndexType, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(vao.Mode, 0, vao.Count)
	}
}

// Delete releases the vertex array together with the buffers it references.
func (vao *VertexArray) Delete() {
	if State != nil && State.VertexArray == vao.glId {
		State.VertexArray = 0
	}
	gl.DeleteVertexArrays(1, &vao.glId)
	vao.glId = 0
	deleted := map[*Buffer]bool{}
	for _, buf := range vao.buffers {
		if !deleted[buf] {
			buf.Delete()
			deleted[buf] = true
		}
	}
	if vao.elements != nil {
		vao.elements.Delete()
	}
	vao.buffers = nil
	vao.elements = nil
}
