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
	"bytes"
	"io"

	"github.com/blinklabs-io/urregistry/registry/common"
	"github.com/klauspost/compress/gzip"
)

func compress(data []byte, o bundleOptions) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, o.compressionLevel)
	if err != nil {
		return nil, common.NewCompressionError(err, "create gzip writer")
	}
	if _, err := w.Write(data); err != nil {
		return nil, common.NewCompressionError(err, "compress bundle")
	}
	if err := w.Close(); err != nil {
		return nil, common.NewCompressionError(err, "compress bundle")
	}
	return buf.Bytes(), nil
}

func decompress(data []byte, o bundleOptions) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, common.NewCompressionError(err, "open gzip stream")
	}
	defer r.Close()
	// Read one byte past the limit to detect oversized output
	ret, err := io.ReadAll(io.LimitReader(r, o.maxDecompressedSize+1))
	if err != nil {
		return nil, common.NewCompressionError(err, "decompress bundle")
	}
	if int64(len(ret)) > o.maxDecompressedSize {
		return nil, common.NewCompressionError(
			nil,
			"decompressed bundle exceeds %d bytes",
			o.maxDecompressedSize,
		)
	}
	return ret, nil
}
