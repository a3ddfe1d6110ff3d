// SPDX-License-Identifier: EPL-2.0

package audiofile

import (
	"fmt"
	"sync"
)

// Opener constructs a File session from a path.
type Opener interface {
	Open(path string) (File, error)
}

// OpenerFunc adapts a plain function to the Opener interface.
type OpenerFunc func(path string) (File, error)

func (fn OpenerFunc) Open(path string) (File, error) { return fn(path) }

// Registry maps formats to their openers.
type Registry struct {
	openers map[Format]Opener

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		openers: make(map[Format]Opener),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format Format, o Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.openers[format] = o
}

func (r *Registry) Get(format Format) (Opener, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	o, ok := r.openers[format]
	return o, ok
}

// Open detects the format from the path and opens it with the
// registered opener for that format.
func (r *Registry) Open(path string) (File, error) {
	format := Detect(path)

	o, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	return o.Open(path)
}
