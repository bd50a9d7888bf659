package domain

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Account data uses the program's wire layout: little-endian integers,
// u32 length-prefixed strings, one byte per bool.

// CardAccount is the decoded on-ledger card account.
type CardAccount struct {
	ID           string
	Owner        Address
	Balance      int64
	BalanceLimit int64
	IsActive     bool
	Metadata     string
	CreatedAt    time.Time
}

// MarshalBinary encodes the card account in wire layout.
func (c *CardAccount) MarshalBinary() ([]byte, error) {
	buf := appendString(nil, c.ID)
	buf = append(buf, c.Owner[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(c.Balance))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(c.BalanceLimit))
	if c.IsActive {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = appendString(buf, c.Metadata)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(c.CreatedAt.Unix()))
	return buf, nil
}

// UnmarshalBinary decodes the card account from wire layout.
func (c *CardAccount) UnmarshalBinary(data []byte) error {
	r := reader{buf: data}
	c.ID = r.readString()
	r.read(c.Owner[:])
	c.Balance = int64(r.readUint64())
	c.BalanceLimit = int64(r.readUint64())
	c.IsActive = r.readByte() != 0
	c.Metadata = r.readString()
	c.CreatedAt = time.Unix(int64(r.readUint64()), 0).UTC()
	if r.err != nil {
		return fmt.Errorf("decoding card account: %w", r.err)
	}
	return nil
}

// MarshalBinary encodes the bridge state account in wire layout.
func (b *BridgeState) MarshalBinary() ([]byte, error) {
	buf := append([]byte(nil), b.Authority[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, b.TotalCards)
	return buf, nil
}

// UnmarshalBinary decodes the bridge state account from wire layout.
func (b *BridgeState) UnmarshalBinary(data []byte) error {
	r := reader{buf: data}
	r.read(b.Authority[:])
	b.TotalCards = r.readUint64()
	if r.err != nil {
		return fmt.Errorf("decoding bridge state: %w", r.err)
	}
	return nil
}

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

type reader struct {
	buf []byte
	off int
	err error
}

func (r *reader) read(dst []byte) {
	if r.err != nil {
		return
	}
	if r.off+len(dst) > len(r.buf) {
		r.err = fmt.Errorf("short buffer at offset %d", r.off)
		return
	}
	copy(dst, r.buf[r.off:])
	r.off += len(dst)
}

func (r *reader) readByte() byte {
	var b [1]byte
	r.read(b[:])
	return b[0]
}

func (r *reader) readUint64() uint64 {
	var b [8]byte
	r.read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (r *reader) readString() string {
	var b [4]byte
	r.read(b[:])
	n := binary.LittleEndian.Uint32(b[:])
	if r.err != nil {
		return ""
	}
	if r.off+int(n) > len(r.buf) {
		r.err = fmt.Errorf("string length %d exceeds buffer at offset %d", n, r.off)
		return ""
	}
	s := string(r.buf[r.off : r.off+int(n)])
	r.off += int(n)
	return s
}
