// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package keystone

import (
	"github.com/klauspost/compress/gzip"
)

// DefaultMaxDecompressedSize bounds the size of a decompressed bundle
const DefaultMaxDecompressedSize = 16 * 1024 * 1024

type bundleOptions struct {
	compressionLevel    int
	maxDecompressedSize int64
}

// BundleOptionFunc is a type that represents functions that modify the bundle options
type BundleOptionFunc func(*bundleOptions)

func newBundleOptions(opts ...BundleOptionFunc) bundleOptions {
	ret := bundleOptions{
		compressionLevel:    gzip.DefaultCompression,
		maxDecompressedSize: DefaultMaxDecompressedSize,
	}
	for _, opt := range opts {
		opt(&ret)
	}
	return ret
}

// WithCompressionLevel specifies the gzip compression level used when encoding
func WithCompressionLevel(level int) BundleOptionFunc {
	return func(o *bundleOptions) {
		o.compressionLevel = level
	}
}

// WithMaxDecompressedSize specifies the largest decompressed bundle that will be accepted
func WithMaxDecompressedSize(size int64) BundleOptionFunc {
	return func(o *bundleOptions) {
		o.maxDecompressedSize = size
	}
}
