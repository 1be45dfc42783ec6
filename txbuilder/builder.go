// Package txbuilder assembles unsigned transactions through a small state
// machine (Empty -> WithSource -> WithOps -> Built) and attaches signatures
// afterward. Grounded on the teacher's core/wallet.go SignTx sequencing
// (set sender, stamp, hash, sign, attach), generalized into a reusable
// fluent builder independent of any one operation type (spec.md §4.8).
package txbuilder

import (
	"errors"
	"fmt"
	"time"

	"corexdr/txhash"
	"corexdr/xcrypto"
	"corexdr/xdr"
)

// BuilderState names where in the assembly sequence a Builder sits.
type BuilderState int

const (
	StateEmpty BuilderState = iota
	StateWithSource
	StateWithOps
	StateBuilt
)

func (s BuilderState) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateWithSource:
		return "WithSource"
	case StateWithOps:
		return "WithOps"
	case StateBuilt:
		return "Built"
	default:
		return "Unknown"
	}
}

// MinBaseFee is the minimum per-operation fee, in stroops, a built
// transaction may carry (spec.md §4.8).
const MinBaseFee uint32 = 100

// TimeoutInfinite passed to Timeout means the built transaction's
// TimeBounds carries no upper bound (spec.md §4.8).
const TimeoutInfinite int64 = 0

// Builder assembles a Transaction one field at a time, enforcing the
// Empty -> WithSource -> WithOps -> Built progression: a transaction needs a
// source account and sequence number before operations can be added, and
// cannot be rebuilt once Built.
type Builder struct {
	state BuilderState
	err   error

	tx      xdr.Transaction
	seqNum  int64
	baseFee uint32

	precond      xdr.PreconditionsV2
	hasTimeBound bool
	explicitCond *xdr.Preconditions
}

// New starts an empty builder with default preconditions (none) and memo
// (none); Fee defaults to 0 and is raised to MinBaseFee at Build.
func New() *Builder {
	return &Builder{
		state: StateEmpty,
		tx: xdr.Transaction{
			Memo: xdr.Memo{Type: xdr.MemoTypeNone},
			Ext:  xdr.TransactionExt{V: 0},
		},
	}
}

// Source sets the transaction's source account and current sequence number,
// transitioning Empty -> WithSource. Build snapshots seqNum+1 into the
// transaction (spec.md §4.8: "build() increments it by 1"). Calling it again
// before any operation is added simply updates the source/sequence.
func (b *Builder) Source(account xdr.MuxedAccount, seqNum int64) *Builder {
	if b.err != nil || b.state == StateBuilt {
		return b
	}
	b.tx.SourceAccount = account
	b.seqNum = seqNum
	if b.state == StateEmpty {
		b.state = StateWithSource
	}
	return b
}

// Fee sets the per-operation base fee; Build multiplies it (floored at
// MinBaseFee) by the operation count to produce the transaction's wire fee
// (spec.md §4.8).
func (b *Builder) Fee(baseFee uint32) *Builder {
	if b.err != nil || b.state == StateBuilt {
		return b
	}
	b.baseFee = baseFee
	return b
}

// Memo sets the transaction memo.
func (b *Builder) Memo(m xdr.Memo) *Builder {
	if b.err != nil || b.state == StateBuilt {
		return b
	}
	b.tx.Memo = m
	return b
}

// Preconditions sets the transaction's validity preconditions directly,
// overriding any Timeout/TimeBounds/LedgerBounds/MinAccountSequence/
// ExtraSigners calls made before or after it.
func (b *Builder) Preconditions(p xdr.Preconditions) *Builder {
	if b.err != nil || b.state == StateBuilt {
		return b
	}
	b.explicitCond = &p
	return b
}

// Timeout translates a relative validity window into a TimeBounds
// precondition: TimeoutInfinite (0) leaves the upper bound open, any
// positive value sets MaxTime to now+seconds (spec.md §4.8).
func (b *Builder) Timeout(seconds int64) *Builder {
	if b.err != nil || b.state == StateBuilt {
		return b
	}
	if seconds < 0 {
		b.err = errors.New("txbuilder: timeout must be non-negative")
		return b
	}
	tb := xdr.TimeBounds{}
	if b.precond.TimeBounds != nil {
		tb.MinTime = b.precond.TimeBounds.MinTime
	}
	if seconds == TimeoutInfinite {
		tb.MaxTime = 0
	} else {
		tb.MaxTime = uint64(time.Now().Unix() + seconds)
	}
	b.precond.TimeBounds = &tb
	b.hasTimeBound = true
	return b
}

// TimeBounds sets an explicit absolute validity window, overriding any
// window set via Timeout.
func (b *Builder) TimeBounds(minTime, maxTime uint64) *Builder {
	if b.err != nil || b.state == StateBuilt {
		return b
	}
	b.precond.TimeBounds = &xdr.TimeBounds{MinTime: minTime, MaxTime: maxTime}
	b.hasTimeBound = true
	return b
}

// LedgerBounds restricts the transaction's validity to a ledger sequence
// window.
func (b *Builder) LedgerBounds(minLedger, maxLedger uint32) *Builder {
	if b.err != nil || b.state == StateBuilt {
		return b
	}
	b.precond.LedgerBounds = &xdr.LedgerBounds{MinLedger: minLedger, MaxLedger: maxLedger}
	return b
}

// MinAccountSequence requires the source account's sequence number to be at
// least minSeqNum at apply time (distinct from the Source seqNum, which this
// transaction itself consumes).
func (b *Builder) MinAccountSequence(minSeqNum int64) *Builder {
	if b.err != nil || b.state == StateBuilt {
		return b
	}
	v := minSeqNum
	b.precond.MinSeqNum = &v
	return b
}

// ExtraSigners requires additional signatures from each of signers, up to
// xdr.MaxExtraSigners.
func (b *Builder) ExtraSigners(signers ...xdr.SignerKey) *Builder {
	if b.err != nil || b.state == StateBuilt {
		return b
	}
	if len(signers) > xdr.MaxExtraSigners {
		b.err = fmt.Errorf("txbuilder: cannot exceed %d extra signers", xdr.MaxExtraSigners)
		return b
	}
	b.precond.ExtraSigners = signers
	return b
}

// AddOperation appends op, transitioning WithSource -> WithOps. It is an
// error to add an operation before Source has been called, or to exceed
// xdr.MaxOperations.
func (b *Builder) AddOperation(op xdr.Operation) *Builder {
	if b.err != nil || b.state == StateBuilt {
		return b
	}
	if b.state == StateEmpty {
		b.err = errors.New("txbuilder: Source must be called before AddOperation")
		return b
	}
	if len(b.tx.Operations) >= xdr.MaxOperations {
		b.err = fmt.Errorf("txbuilder: cannot exceed %d operations", xdr.MaxOperations)
		return b
	}
	b.tx.Operations = append(b.tx.Operations, op)
	b.state = StateWithOps
	return b
}

// preconditions assembles the precondition accumulated through
// Timeout/TimeBounds/LedgerBounds/MinAccountSequence/ExtraSigners into the
// narrowest Preconditions arm that carries it: None if nothing was set, Time
// if only a time bound was set, V2 otherwise.
func (b *Builder) preconditions() xdr.Preconditions {
	if b.explicitCond != nil {
		return *b.explicitCond
	}
	hasV2Only := b.precond.LedgerBounds != nil ||
		b.precond.MinSeqNum != nil ||
		b.precond.MinSeqAge != 0 ||
		b.precond.MinSeqLedgerGap != 0 ||
		len(b.precond.ExtraSigners) > 0
	switch {
	case !b.hasTimeBound && !hasV2Only:
		return xdr.Preconditions{Type: xdr.PrecondNone}
	case !hasV2Only:
		return xdr.Preconditions{Type: xdr.PrecondTime, TimeBounds: b.precond.TimeBounds}
	default:
		v2 := b.precond
		if v2.TimeBounds == nil && b.hasTimeBound {
			v2.TimeBounds = &xdr.TimeBounds{}
		}
		return xdr.Preconditions{Type: xdr.PrecondV2, V2: v2}
	}
}

// Build finalizes the transaction into a signature-less TransactionEnvelope
// and transitions the builder to Built. The wire fee is baseFee (floored at
// MinBaseFee) times the operation count, and the sequence number snapshotted
// is Source's seqNum+1. A Builder cannot be reused after Build succeeds; a
// Build that fails because no operation was added leaves the state unchanged.
func (b *Builder) Build() (xdr.TransactionEnvelope, error) {
	if b.err != nil {
		return xdr.TransactionEnvelope{}, b.err
	}
	if b.state != StateWithOps {
		return xdr.TransactionEnvelope{}, fmt.Errorf("txbuilder: cannot build from state %s: at least one operation is required", b.state)
	}
	perOp := b.baseFee
	if perOp < MinBaseFee {
		perOp = MinBaseFee
	}
	totalFee := uint64(perOp) * uint64(len(b.tx.Operations))
	if totalFee > 0xFFFFFFFF {
		return xdr.TransactionEnvelope{}, fmt.Errorf("txbuilder: fee %d exceeds uint32 range", totalFee)
	}
	b.tx.Fee = uint32(totalFee)
	b.tx.SeqNum = b.seqNum + 1
	b.tx.Cond = b.preconditions()

	env := xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTx,
		V1: xdr.TransactionV1Envelope{
			Tx:         b.tx,
			Signatures: nil,
		},
	}
	b.state = StateBuilt
	return env, nil
}

// WrapFeeBump builds a fee-bump envelope around an already-built, already
// (optionally) signed inner envelope, charging fee to feeSource
// (spec.md §4.9 fee-bump transactions).
func WrapFeeBump(feeSource xdr.MuxedAccount, fee int64, inner xdr.TransactionEnvelope) (xdr.TransactionEnvelope, error) {
	if inner.Type != xdr.EnvelopeTypeTx {
		return xdr.TransactionEnvelope{}, errors.New("txbuilder: fee bump inner envelope must be a plain transaction envelope")
	}
	return xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTxFeeBump,
		FeeBump: xdr.FeeBumpTransactionEnvelope{
			Tx: xdr.FeeBumpTransaction{
				FeeSource: feeSource,
				Fee:       fee,
				InnerTx:   inner.V1,
				Ext:       xdr.TransactionExt{V: 0},
			},
			Signatures: nil,
		},
	}, nil
}

// Signer abstracts over anything that can produce an Ed25519 signature
// under a known public key, so txbuilder does not need to depend on any one
// key-storage mechanism (xcrypto.BasicSigner, a hardware signer, and so on
// all satisfy it).
type Signer interface {
	PublicKey() [32]byte
	Sign(hash [32]byte) []byte
}

// Sign computes the network-tagged hash of env's transaction (or fee-bump
// transaction) and appends a DecoratedSignature from signer.
func Sign(networkID [32]byte, env *xdr.TransactionEnvelope, signer Signer) error {
	var hash [32]byte
	var err error
	switch env.Type {
	case xdr.EnvelopeTypeTx:
		hash, err = txhash.HashTransaction(networkID, env.V1.Tx)
	case xdr.EnvelopeTypeTxFeeBump:
		hash, err = txhash.HashFeeBumpTransaction(networkID, env.FeeBump.Tx)
	default:
		return fmt.Errorf("txbuilder: cannot sign envelope type %d", env.Type)
	}
	if err != nil {
		return err
	}
	pub := signer.PublicKey()
	ds := xdr.DecoratedSignature{
		Hint:      xcrypto.Hint(pub),
		Signature: signer.Sign(hash),
	}
	switch env.Type {
	case xdr.EnvelopeTypeTx:
		if len(env.V1.Signatures) >= xdr.MaxSignatures {
			return fmt.Errorf("txbuilder: cannot exceed %d signatures", xdr.MaxSignatures)
		}
		env.V1.Signatures = append(env.V1.Signatures, ds)
	case xdr.EnvelopeTypeTxFeeBump:
		if len(env.FeeBump.Signatures) >= xdr.MaxSignatures {
			return fmt.Errorf("txbuilder: cannot exceed %d signatures", xdr.MaxSignatures)
		}
		env.FeeBump.Signatures = append(env.FeeBump.Signatures, ds)
	}
	return nil
}
