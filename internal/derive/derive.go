// Package derive computes deterministic ledger addresses for cards,
// escrows and the bridge state account from stable seeds.
package derive

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/pkg/apperror"
)

// Namespace tags keep the three account kinds in disjoint seed spaces.
const (
	seedCard        = "card"
	seedEscrow      = "escrow"
	seedBridgeState = "bridge_state"
	seedToken       = "token"
)

// Deriver derives addresses under one program id.
type Deriver struct {
	programID domain.Address
}

// New creates a Deriver for the given program.
func New(programID domain.Address) *Deriver {
	return &Deriver{programID: programID}
}

// CardAddress derives the card account address for (owner, cardID).
// cardID must be non-empty and at most 32 bytes.
func (d *Deriver) CardAddress(owner domain.Address, cardID string) (domain.Address, error) {
	if cardID == "" || len(cardID) > domain.MaxCardIDLen {
		return domain.Address{}, apperror.ErrCardIDInvalid()
	}
	return d.derive(seedCard, owner[:], []byte(cardID)), nil
}

// EscrowAddress derives the escrow account address backing a card.
func (d *Deriver) EscrowAddress(card domain.Address) domain.Address {
	return d.derive(seedEscrow, card[:])
}

// TokenAccountAddress derives the owner's token account for a mint,
// the source of top-ups and the destination of withdrawals.
func (d *Deriver) TokenAccountAddress(owner, mint domain.Address) domain.Address {
	return d.derive(seedToken, owner[:], mint[:])
}

// BridgeStateAddress derives the singleton bridge state address.
func (d *Deriver) BridgeStateAddress() domain.Address {
	return d.derive(seedBridgeState)
}

// derive hashes the program id and each seed with a length prefix, so
// adjacent seeds cannot collide by concatenation ("ab","c" vs "a","bc").
func (d *Deriver) derive(tag string, seeds ...[]byte) domain.Address {
	h := sha256.New()
	h.Write(d.programID[:])
	writeSeed(h, []byte(tag))
	for _, s := range seeds {
		writeSeed(h, s)
	}
	var a domain.Address
	copy(a[:], h.Sum(nil))
	return a
}

func writeSeed(h interface{ Write([]byte) (int, error) }, seed []byte) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(seed)))
	h.Write(n[:])
	h.Write(seed)
}
