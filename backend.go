// Copyright (C) 2017. See AUTHORS.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package md4

import (
	"os"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Names of the built-in backends.
const (
	BackendNative  = "native"
	BackendXCrypto = "xcrypto"
)

// BackendEnv is the environment variable that overrides the compiled-in
// default backend for the whole process.
const BackendEnv = "MD4_BACKEND"

// A Backend creates digest jobs for one MD4 implementation. All backends
// satisfy the same contract and produce byte-identical digests; SelfTest
// proves as much for any implementation plugged in from outside.
type Backend interface {
	// Name returns the name the backend is registered under.
	Name() string
	// New creates and initialises a fresh digest job.
	New() (Hash, error)
}

type nativeBackend struct{}

func (nativeBackend) Name() string       { return BackendNative }
func (nativeBackend) New() (Hash, error) { return NewNativeHash() }

type cryptoBackend struct{}

func (cryptoBackend) Name() string       { return BackendXCrypto }
func (cryptoBackend) New() (Hash, error) { return NewCryptoHash() }

var (
	backendMtx sync.Mutex
	backends   = make(map[string]Backend)
)

func init() {
	RegisterBackend(nativeBackend{})
	RegisterBackend(cryptoBackend{})
}

// RegisterBackend makes a backend selectable by name, for external
// implementations (an OpenSSL binding, say) that want to serve the same
// contract. Registering twice under one name panics; that is always a
// wiring mistake in the host program.
func RegisterBackend(b Backend) {
	if b == nil {
		log.Panic("md4: RegisterBackend called with nil backend")
	}
	backendMtx.Lock()
	defer backendMtx.Unlock()
	name := b.Name()
	if _, exists := backends[name]; exists {
		log.Panicf("md4: backend %q registered twice", name)
	}
	backends[name] = b
}

// GetBackendByName returns the Backend with the name or nil and an error if
// no such backend is registered.
func GetBackendByName(name string) (Backend, error) {
	backendMtx.Lock()
	defer backendMtx.Unlock()
	if b, exists := backends[name]; exists {
		return b, nil
	}
	return nil, ErrUnknownBackend
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	backendMtx.Lock()
	defer backendMtx.Unlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	defaultOnce    sync.Once
	defaultBackend Backend
)

// DefaultBackend resolves the process-wide backend on first use: the
// MD4_BACKEND environment variable when it names a registered backend,
// otherwise the compile-time choice (native unless the md4_xcrypto build
// tag says otherwise). The result is fixed for the life of the process.
func DefaultBackend() Backend {
	defaultOnce.Do(func() {
		defaultBackend = resolveBackend(os.Getenv(BackendEnv))
	})
	return defaultBackend
}

func resolveBackend(env string) Backend {
	if env != "" {
		if b, err := GetBackendByName(env); err == nil {
			log.Debugf("md4: using %s backend selected by %s", env, BackendEnv)
			return b
		}
		log.Warnf("md4: %s names unknown backend %q, falling back to %q",
			BackendEnv, env, defaultBackendName)
	}
	b, err := GetBackendByName(defaultBackendName)
	if err != nil {
		log.Panicf("md4: compiled-in default backend %q is not registered", defaultBackendName)
	}
	return b
}

// New creates a digest job using the default backend.
func New() (Hash, error) {
	return DefaultBackend().New()
}
