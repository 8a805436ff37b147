// Package strings provides pooled, low-allocation string building utilities.
// It is used by the error and stats paths so that formatting diagnostics does
// not itself churn the heap.
package strings

import (
	"fmt"
	"sync"
	"unsafe"
)

// BytesToString converts a byte slice to a string without allocation.
// WARNING: The returned string shares memory with the byte slice.
// Do not modify the byte slice after calling this function.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes converts a string to a byte slice without allocation.
// WARNING: The returned byte slice shares memory with the string.
// Do not modify the returned slice.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Clone creates a copy of a string (useful when you need to own the memory)
func Clone(s string) string {
	if len(s) == 0 {
		return ""
	}
	b := make([]byte, len(s))
	copy(b, StringToBytes(s))
	return BytesToString(b)
}

// Builder provides efficient string building over a reusable byte buffer
type Builder struct {
	buf []byte
}

// NewBuilder creates a new string builder with the given initial capacity
func NewBuilder(capacity int) *Builder {
	return &Builder{
		buf: make([]byte, 0, capacity),
	}
}

// WriteString appends a string to the builder
func (b *Builder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteByte appends a single byte
func (b *Builder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// Write implements the io.Writer interface
func (b *Builder) Write(p []byte) (n int, err error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// String returns the built string using zero-copy conversion.
// The result is only valid until the builder is reset or reused.
func (b *Builder) String() string {
	return BytesToString(b.buf)
}

// Len returns the length of the built string
func (b *Builder) Len() int {
	return len(b.buf)
}

// Reset resets the builder for reuse
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

// Size selects a builder pool bucket
type Size int

const (
	// Small is for strings up to ~1KB
	Small Size = iota
	// Medium is for strings up to ~16KB
	Medium
	// Large is for anything bigger
	Large
)

var builderPools = [...]*sync.Pool{
	Small:  {New: func() interface{} { return NewBuilder(256) }},
	Medium: {New: func() interface{} { return NewBuilder(4096) }},
	Large:  {New: func() interface{} { return NewBuilder(64 * 1024) }},
}

// GetBuilder retrieves a builder from the pool for the given size class
func GetBuilder(size Size) *Builder {
	return builderPools[size].Get().(*Builder)
}

// PutBuilder returns a builder to its pool after resetting it
func PutBuilder(b *Builder, size Size) {
	b.Reset()
	builderPools[size].Put(b)
}

// sizeFor picks a bucket from an estimated output length
func sizeFor(estimated int) Size {
	switch {
	case estimated > 16*1024:
		return Large
	case estimated > 1024:
		return Medium
	default:
		return Small
	}
}

// Sprintf provides a pooled alternative to fmt.Sprintf
func Sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}

	builder := GetBuilder(sizeFor(len(format) + len(args)*16))
	defer PutBuilder(builder, sizeFor(len(format)+len(args)*16))

	fmt.Fprintf(builder, format, args...)

	// Copy out: the builder's buffer is about to be reused
	return Clone(builder.String())
}
