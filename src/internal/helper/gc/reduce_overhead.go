// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Reset()
	ReadFrom(r io.Reader) (int64, error)
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the default buffer pool used for efficient memory reuse in I/O operations.
//
// Example usage for capturing the output streams of an external command:
//
//	stdout := gc.Default.Get()
//	stderr := gc.Default.Get()
//
//	defer func() {
//		stdout.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(stdout) // Return the buffer to the pool for reuse
//		stderr.Reset()
//		gc.Default.Put(stderr)
//	}()
//
//	cmd := exec.CommandContext(ctx, tool, args...)
//	cmd.Stdout = stdout
//	cmd.Stderr = stderr
//
//	if err := cmd.Run(); err != nil {
//		return fmt.Errorf("%s failed: %w: %s", tool, err, stderr.String())
//	}
//
//	parseOutput(stdout.Bytes())
//
// One run of the auditor invokes the external tool once per certificate file,
// so recycling the capture buffers keeps a large recursive walk from allocating
// two fresh buffers per file.
var Default Pool = &pool{p: &bytebufferpool.Pool{}}
