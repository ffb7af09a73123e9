package events

import (
	"time"

	"github.com/holiman/uint256"

	"ftl/types"
)

// EventType is an enum-like string type for ledger events
type EventType string

const (
	EventTransfer EventType = "Transfer"
	EventApproval EventType = "Approval"
)

// LedgerEvent represents an entry of the ledger's append-only
// observation stream. Events are a side channel: nothing in the ledger
// reads them back.
type LedgerEvent interface {
	Type() EventType
	Timestamp() time.Time
	Value() *uint256.Int
}

// TransferEvent records a committed balance movement. From is nil only
// for the minting event emitted once at construction.
type TransferEvent struct {
	from      *types.Address
	to        *types.Address
	value     *uint256.Int
	timestamp time.Time
}

func NewTransfer(from, to types.Address, value *uint256.Int) *TransferEvent {
	return &TransferEvent{
		from:      &from,
		to:        &to,
		value:     value,
		timestamp: time.Now(),
	}
}

// NewMint builds the construction-time Transfer event with no source
func NewMint(to types.Address, value *uint256.Int) *TransferEvent {
	return &TransferEvent{
		to:        &to,
		value:     value,
		timestamp: time.Now(),
	}
}

func (e *TransferEvent) Type() EventType {
	return EventTransfer
}

func (e *TransferEvent) Timestamp() time.Time {
	return e.timestamp
}

func (e *TransferEvent) From() *types.Address {
	return e.from
}

func (e *TransferEvent) To() *types.Address {
	return e.to
}

func (e *TransferEvent) Value() *uint256.Int {
	return e.value
}

// ApprovalEvent records an allowance overwrite. Owner and spender are
// always present.
type ApprovalEvent struct {
	owner     types.Address
	spender   types.Address
	value     *uint256.Int
	timestamp time.Time
}

func NewApproval(owner, spender types.Address, value *uint256.Int) *ApprovalEvent {
	return &ApprovalEvent{
		owner:     owner,
		spender:   spender,
		value:     value,
		timestamp: time.Now(),
	}
}

func (e *ApprovalEvent) Type() EventType {
	return EventApproval
}

func (e *ApprovalEvent) Timestamp() time.Time {
	return e.timestamp
}

func (e *ApprovalEvent) Owner() types.Address {
	return e.owner
}

func (e *ApprovalEvent) Spender() types.Address {
	return e.spender
}

func (e *ApprovalEvent) Value() *uint256.Int {
	return e.value
}
