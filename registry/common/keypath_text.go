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

package common

import (
	"strconv"
	"strings"
)

// Levels of the BIP44 account layout m / purpose' / coin_type' / account' / change / address_index
const (
	bip44LevelPurpose = iota
	bip44LevelCoinType
	bip44LevelAccount
	bip44LevelChange
	bip44LevelAddressIndex
)

// ParseKeyPath parses a textual derivation path such as m/44'/60'/0'/0/0. The m/ (or
// M/) prefix is optional, and a component is hardened by a trailing ', h or H. An
// empty string is a path with no components. Wildcards are not accepted in text
// form
func ParseKeyPath(path string) (KeyPath, error) {
	ret := KeyPath{
		Components: []PathComponent{},
	}
	if path == "" {
		return ret, nil
	}
	segments := strings.Split(path, "/")
	if strings.EqualFold(segments[0], "m") {
		segments = segments[1:]
	}
	for idx, segment := range segments {
		c, err := parsePathSegment(segment)
		if err != nil {
			return KeyPath{}, NewMalformedInputError(err, "invalid path segment %d %q in %q", idx, segment, path)
		}
		ret.Components = append(ret.Components, c)
	}
	return ret, nil
}

func parsePathSegment(segment string) (PathComponent, error) {
	hardened := false
	if strings.HasSuffix(segment, "'") ||
		strings.HasSuffix(segment, "h") ||
		strings.HasSuffix(segment, "H") {
		hardened = true
		segment = segment[:len(segment)-1]
	}
	// ParseUint rejects empty strings and sign prefixes
	index, err := strconv.ParseUint(segment, 10, 32)
	if err != nil {
		return PathComponent{}, err
	}
	return NewPathComponent(uint32(index), hardened)
}

// String returns the textual form of the path, using ' for hardened components and *
// for wildcards
func (p KeyPath) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, c := range p.Components {
		sb.WriteString("/")
		if c.Wildcard {
			sb.WriteString("*")
			continue
		}
		sb.WriteString(strconv.FormatUint(uint64(c.Index), 10))
		if c.Hardened {
			sb.WriteString("'")
		}
	}
	return sb.String()
}

// Component returns the component at the given level, if the path has one
func (p KeyPath) Component(level int) (PathComponent, bool) {
	if level < 0 || level >= len(p.Components) {
		return PathComponent{}, false
	}
	return p.Components[level], true
}

func (p KeyPath) levelIndex(level int) (uint32, bool) {
	c, ok := p.Component(level)
	if !ok || c.Wildcard {
		return 0, false
	}
	return c.Index, true
}

// Purpose returns the BIP44 purpose index, if present
func (p KeyPath) Purpose() (uint32, bool) { return p.levelIndex(bip44LevelPurpose) }

// CoinType returns the BIP44 coin type index, if present
func (p KeyPath) CoinType() (uint32, bool) { return p.levelIndex(bip44LevelCoinType) }

// Account returns the BIP44 account index, if present
func (p KeyPath) Account() (uint32, bool) { return p.levelIndex(bip44LevelAccount) }

// Change returns the BIP44 change index, if present
func (p KeyPath) Change() (uint32, bool) { return p.levelIndex(bip44LevelChange) }

// AddressIndex returns the BIP44 address index, if present
func (p KeyPath) AddressIndex() (uint32, bool) { return p.levelIndex(bip44LevelAddressIndex) }
