package ledger

import (
	"fmt"

	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"
)

// Signer is the capability that signs platform transactions. The raw
// secret seed stays inside the implementation; calling code only ever sees
// the public address and signed transactions.
type Signer interface {
	Address() string
	Sign(tx *txnbuild.Transaction) (*txnbuild.Transaction, error)
}

type keypairSigner struct {
	kp                *keypair.Full
	networkPassphrase string
}

// NewKeypairSigner parses the custodial account's secret seed into an
// in-memory signer. The seed must never be logged or persisted in session
// state.
func NewKeypairSigner(secretSeed, networkPassphrase string) (Signer, error) {
	kp, err := keypair.ParseFull(secretSeed)
	if err != nil {
		return nil, fmt.Errorf("parse platform secret key: %w", err)
	}

	return &keypairSigner{
		kp:                kp,
		networkPassphrase: networkPassphrase,
	}, nil
}

func (s *keypairSigner) Address() string {
	return s.kp.Address()
}

func (s *keypairSigner) Sign(tx *txnbuild.Transaction) (*txnbuild.Transaction, error) {
	return tx.Sign(s.networkPassphrase, s.kp)
}
