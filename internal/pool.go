package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds scratch buffers used while encoding events.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 64))
	},
}
