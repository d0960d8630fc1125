package handler

import (
	"bytes"
	"sync"
)

// responseBuffers recycles the scratch buffers respondJSON encodes into.
// Payloads here are small (payment details, round JSON, status objects),
// so buffers stay cheap to retain.
var responseBuffers = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	responseBuffers.Put(buf)
}
