package service

import (
	"encoding/binary"

	"github.com/aurexlabs/aurex-bridge/internal/core/domain"
	"github.com/aurexlabs/aurex-bridge/internal/core/ports"
	"github.com/aurexlabs/aurex-bridge/internal/derive"
)

// Instruction discriminators understood by the bridge program.
const (
	opCreateCard byte = iota + 1
	opTopUpCard
	opProcessPayment
	opDeactivateCard
	opWithdrawBalance
	opInitializeBridge
)

// txBuilder assembles unsigned transactions for the bridge program.
// Account ordering follows the program's expected layout.
type txBuilder struct {
	programID domain.Address
	deriver   *derive.Deriver
}

func newTxBuilder(programID domain.Address) *txBuilder {
	return &txBuilder{programID: programID, deriver: derive.New(programID)}
}

// buildCreateCard returns the transaction plus the derived card and
// escrow addresses so the caller registers exactly what was submitted.
func (b *txBuilder) buildCreateCard(owner domain.Address, cardID string, balanceLimit int64, metadata string, mint domain.Address) (*ports.Transaction, domain.Address, domain.Address, error) {
	card, err := b.deriver.CardAddress(owner, cardID)
	if err != nil {
		return nil, domain.Address{}, domain.Address{}, err
	}
	escrow := b.deriver.EscrowAddress(card)

	data := []byte{opCreateCard}
	data = appendString(data, cardID)
	data = binary.LittleEndian.AppendUint64(data, uint64(balanceLimit))
	data = appendString(data, metadata)

	tx := &ports.Transaction{
		ProgramID: b.programID,
		Accounts: []ports.AccountMeta{
			{Address: card, Writable: true},
			{Address: escrow, Writable: true},
			{Address: b.deriver.BridgeStateAddress(), Writable: true},
			{Address: owner, Signer: true, Writable: true},
			{Address: mint},
		},
		Data: data,
	}
	return tx, card, escrow, nil
}

func (b *txBuilder) buildTopUp(owner domain.Address, cardID string, amount int64, mint domain.Address) (*ports.Transaction, error) {
	card, err := b.deriver.CardAddress(owner, cardID)
	if err != nil {
		return nil, err
	}

	data := []byte{opTopUpCard}
	data = binary.LittleEndian.AppendUint64(data, uint64(amount))

	return &ports.Transaction{
		ProgramID: b.programID,
		Accounts: []ports.AccountMeta{
			{Address: card, Writable: true},
			{Address: b.deriver.EscrowAddress(card), Writable: true},
			{Address: b.deriver.TokenAccountAddress(owner, mint), Writable: true},
			{Address: owner, Signer: true, Writable: true},
		},
		Data: data,
	}, nil
}

func (b *txBuilder) buildProcessPayment(owner domain.Address, cardID string, amount int64, merchantRef string, merchant *domain.Merchant) (*ports.Transaction, error) {
	card, err := b.deriver.CardAddress(owner, cardID)
	if err != nil {
		return nil, err
	}

	data := []byte{opProcessPayment}
	data = binary.LittleEndian.AppendUint64(data, uint64(amount))
	data = appendString(data, merchantRef)

	return &ports.Transaction{
		ProgramID: b.programID,
		Accounts: []ports.AccountMeta{
			{Address: card, Writable: true},
			{Address: b.deriver.EscrowAddress(card), Writable: true},
			{Address: merchant.TokenAccount, Writable: true},
			{Address: merchant.Pubkey},
			{Address: owner, Signer: true},
		},
		Data: data,
	}, nil
}

func (b *txBuilder) buildDeactivate(owner domain.Address, cardID string) (*ports.Transaction, error) {
	card, err := b.deriver.CardAddress(owner, cardID)
	if err != nil {
		return nil, err
	}

	return &ports.Transaction{
		ProgramID: b.programID,
		Accounts: []ports.AccountMeta{
			{Address: card, Writable: true},
			{Address: owner, Signer: true},
		},
		Data: []byte{opDeactivateCard},
	}, nil
}

func (b *txBuilder) buildWithdraw(owner domain.Address, cardID string, mint domain.Address) (*ports.Transaction, error) {
	card, err := b.deriver.CardAddress(owner, cardID)
	if err != nil {
		return nil, err
	}

	return &ports.Transaction{
		ProgramID: b.programID,
		Accounts: []ports.AccountMeta{
			{Address: card, Writable: true},
			{Address: b.deriver.EscrowAddress(card), Writable: true},
			{Address: b.deriver.TokenAccountAddress(owner, mint), Writable: true},
			{Address: owner, Signer: true},
		},
		Data: []byte{opWithdrawBalance},
	}, nil
}

// buildInitialize creates the bridge state account and records its
// authority. One-time setup; the program rejects a second attempt.
func (b *txBuilder) buildInitialize(authority domain.Address) *ports.Transaction {
	data := []byte{opInitializeBridge}
	data = append(data, authority[:]...)

	return &ports.Transaction{
		ProgramID: b.programID,
		Accounts: []ports.AccountMeta{
			{Address: b.deriver.BridgeStateAddress(), Writable: true},
			{Address: authority, Signer: true, Writable: true},
		},
		Data: data,
	}
}

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}
