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

package crypto

import (
	"bytes"

	"github.com/blinklabs-io/urregistry/registry/common"
)

var psbtMagic = []byte{0x70, 0x73, 0x62, 0x74, 0xff}

// PSBT (crypto-psbt) is a partially signed Bitcoin transaction, carried as an opaque
// byte string
type PSBT struct {
	Data []byte
}

func (p *PSBT) RegistryType() common.RegistryType {
	return common.TypeCryptoPSBT.RegistryType()
}

func (p *PSBT) MarshalCBOR() ([]byte, error) {
	return common.MarshalByteString(p.Data)
}

func (p *PSBT) UnmarshalCBOR(data []byte) error {
	tmp, err := common.UnmarshalByteString(data, p.RegistryType().Name)
	if err != nil {
		return err
	}
	p.Data = tmp
	return nil
}

// HasMagic reports whether the payload starts with the PSBT magic bytes. The payload
// is otherwise not inspected
func (p *PSBT) HasMagic() bool {
	return bytes.HasPrefix(p.Data, psbtMagic)
}

// Bytes (bytes) is an untyped byte payload
type Bytes struct {
	Data []byte
}

func (b *Bytes) RegistryType() common.RegistryType {
	return common.TypeBytes.RegistryType()
}

func (b *Bytes) MarshalCBOR() ([]byte, error) {
	return common.MarshalByteString(b.Data)
}

func (b *Bytes) UnmarshalCBOR(data []byte) error {
	tmp, err := common.UnmarshalByteString(data, b.RegistryType().Name)
	if err != nil {
		return err
	}
	b.Data = tmp
	return nil
}
