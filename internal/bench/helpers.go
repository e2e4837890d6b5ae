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

// Package bench provides benchmark fixtures for the registry codec.
package bench

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/urregistry"
	"github.com/blinklabs-io/urregistry/internal/test"
	"github.com/blinklabs-io/urregistry/internal/testdata"
	"github.com/blinklabs-io/urregistry/registry/common"
)

// Fixture contains a pre-decoded registry value for benchmarking.
type Fixture struct {
	Name     string
	Envelope urregistry.Envelope
	Value    common.Value
}

// FixtureNames returns the names of all available fixtures.
func FixtureNames() []string {
	vectors := testdata.GetVectors()
	ret := make([]string, 0, len(vectors))
	for _, vector := range vectors {
		ret = append(ret, vector.Name)
	}
	return ret
}

// LoadFixture loads the named fixture. Names are matched case-insensitively.
// The payload is decoded once so that a broken fixture fails before timing
// starts.
func LoadFixture(codec *urregistry.Codec, name string) (*Fixture, error) {
	for _, vector := range testdata.GetVectors() {
		if !strings.EqualFold(vector.Name, name) {
			continue
		}
		env := urregistry.NewEnvelope(
			vector.TypeName,
			test.DecodeHexString(vector.Hex),
		)
		value, err := codec.DecodeAny(env)
		if err != nil {
			return nil, fmt.Errorf("decode fixture %s: %w", vector.Name, err)
		}
		return &Fixture{
			Name:     vector.Name,
			Envelope: env,
			Value:    value,
		}, nil
	}
	return nil, fmt.Errorf("unknown fixture: %s", name)
}

// MustLoadFixture is like LoadFixture but panics on error.
func MustLoadFixture(codec *urregistry.Codec, name string) *Fixture {
	fixture, err := LoadFixture(codec, name)
	if err != nil {
		panic(err)
	}
	return fixture
}
