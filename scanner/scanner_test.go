package scanner

import (
	"context"
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/deepakA18/stealth-address-solana/account"
	"github.com/deepakA18/stealth-address-solana/crypto/announcement"
	"github.com/deepakA18/stealth-address-solana/payment"
)

func TestScanDiscoversOwnPayment(t *testing.T) {
	alice, err := account.Generate(rand.Reader)
	require.NoError(t, err)

	pay, err := payment.New(rand.Reader, alice.MetaAddress())
	require.NoError(t, err)

	in := make(chan announcement.Announcement, 1)
	in <- pay.Announcement()
	close(in)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out := Scan(ctx, alice.CheckViewTag, alice.ComputeExpectedAddress, alice.DeriveStealthKeypair, nil, in)

	var discovered []DiscoveredPayment
	for dp := range out {
		discovered = append(discovered, dp)
	}
	require.Len(t, discovered, 1)
	require.Equal(t, pay.StealthAddress, discovered[0].Announcement.StealthAddress)
	require.Equal(t, pay.StealthAddress, discovered[0].Keypair.PublicKey)
}

func TestScanIgnoresOtherRecipientsPayments(t *testing.T) {
	alice, err := account.Generate(rand.Reader)
	require.NoError(t, err)
	bob, err := account.Generate(rand.Reader)
	require.NoError(t, err)

	pay, err := payment.New(rand.Reader, bob.MetaAddress())
	require.NoError(t, err)

	in := make(chan announcement.Announcement, 1)
	in <- pay.Announcement()
	close(in)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out := Scan(ctx, alice.CheckViewTag, alice.ComputeExpectedAddress, alice.DeriveStealthKeypair, nil, in)

	var discovered []DiscoveredPayment
	for dp := range out {
		discovered = append(discovered, dp)
	}
	require.Empty(t, discovered)
}

func TestScanInvokesBalanceFunc(t *testing.T) {
	alice, err := account.Generate(rand.Reader)
	require.NoError(t, err)

	pay, err := payment.New(rand.Reader, alice.MetaAddress())
	require.NoError(t, err)

	in := make(chan announcement.Announcement, 1)
	in <- pay.Announcement()
	close(in)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	balanceCalls := 0
	balance := func(ctx context.Context, addr [32]byte) (uint64, error) {
		balanceCalls++
		return 42, nil
	}

	out := Scan(ctx, alice.CheckViewTag, alice.ComputeExpectedAddress, alice.DeriveStealthKeypair, balance, in)
	dp := <-out
	require.Equal(t, uint64(42), dp.Balance)
	require.NoError(t, dp.BalanceErr)
	require.Equal(t, 1, balanceCalls)
	require.Equal(t, pay.StealthAddress, dp.Keypair.PublicKey)
}

func TestScanStopsOnContextCancel(t *testing.T) {
	alice, err := account.Generate(rand.Reader)
	require.NoError(t, err)

	in := make(chan announcement.Announcement)
	ctx, cancel := context.WithCancel(context.Background())

	out := Scan(ctx, alice.CheckViewTag, alice.ComputeExpectedAddress, alice.DeriveStealthKeypair, nil, in)
	cancel()

	select {
	case _, ok := <-out:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("scan did not stop after context cancel")
	}
}
