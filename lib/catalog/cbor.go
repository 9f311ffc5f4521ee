// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
)

// encMode encodes with Core Deterministic Encoding: sorted map keys,
// smallest integer encoding, no indefinite-length items.
var encMode cbor.EncMode

// decMode rejects duplicate map keys so a catalog has exactly one
// reading.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("catalog: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("catalog: CBOR decoder initialization failed: " + err.Error())
	}
}

// digestKey is the BLAKE3 key for catalog digests: the ASCII domain
// name zero-padded to 32 bytes.
var digestKey = [32]byte{
	'l', 'i', 'n', 'e', 'b', 'i', 'n', 'd', '.', 'c', 'a', 't', 'a', 'l', 'o', 'g',
}

// Digest is a 32-byte BLAKE3 digest of a catalog.
type Digest [32]byte

// String returns the digest as lower-case hex.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// CBOR returns the catalog in deterministic CBOR.
func (c *Catalog) CBOR() ([]byte, error) {
	data, err := encMode.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog as CBOR: %w", err)
	}
	return data, nil
}

// DecodeCBOR parses a catalog previously written by [Catalog.CBOR].
func DecodeCBOR(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := decMode.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog CBOR: %w", err)
	}
	if err := catalog.checkVersion(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Digest returns the keyed BLAKE3 hash of the catalog's CBOR encoding.
// Two catalogs have the same digest exactly when they describe the same
// commands in the same order.
func (c *Catalog) Digest() (Digest, error) {
	data, err := c.CBOR()
	if err != nil {
		return Digest{}, err
	}
	hasher, err := blake3.NewKeyed(digestKey[:])
	if err != nil {
		return Digest{}, fmt.Errorf("initializing catalog digest: %w", err)
	}
	hasher.Write(data)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}
