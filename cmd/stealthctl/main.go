// stealthctl is a small end-to-end demo of the stealth-address flow:
// a recipient publishes a meta-address, a sender pays it and
// announces the payment, and the recipient's scanner discovers it.
package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"

	"github.com/deepakA18/stealth-address-solana/account"
	"github.com/deepakA18/stealth-address-solana/config"
	"github.com/deepakA18/stealth-address-solana/payment"
	"github.com/deepakA18/stealth-address-solana/scanner"
	"github.com/deepakA18/stealth-address-solana/store"
	"github.com/deepakA18/stealth-address-solana/store/ipfs"
	"github.com/deepakA18/stealth-address-solana/store/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	fmt.Println("=============================recipient generates a meta-address=====================")
	alice, err := account.Generate(rand.Reader)
	if err != nil {
		log.Fatalf("account.Generate: %v", err)
	}
	fmt.Println("Alice's meta-address:", alice.String())

	fmt.Println("=============================sender pays the meta-address=====================")
	pay, err := payment.New(rand.Reader, alice.MetaAddress())
	if err != nil {
		log.Fatalf("payment.New: %v", err)
	}
	fmt.Printf("Stealth address to pay: %x\n", pay.StealthAddress)
	fmt.Printf("Announced ephemeral key: %x, view tag: %d\n", pay.EphemeralPubkey, pay.ViewTag)

	var announcements store.AnnouncementStore = memory.New()
	if cfg.IPFSAPIAddr != "" {
		announcements = ipfs.New(cfg.IPFSAPIAddr)
	}
	if err := announcements.Put(context.Background(), pay.Announcement()); err != nil {
		log.Fatalf("announcements.Put: %v", err)
	}

	fmt.Println("=============================recipient scans for incoming payments=====================")
	feed, err := announcements.List(context.Background())
	if err != nil {
		log.Fatalf("announcements.List: %v", err)
	}

	found := scanner.Scan(context.Background(), alice.CheckViewTag, alice.ComputeExpectedAddress, alice.DeriveStealthKeypair, nil, feed)
	for dp := range found {
		fmt.Printf("Discovered payment at stealth address %x\n", dp.Announcement.StealthAddress)
		fmt.Printf("Derived spending key for this payment, public key %x\n", dp.Keypair.PublicKey)
	}

	if cfg.AccountPath != "" {
		fmt.Println("=============================sealing account bundle=====================")
		bundle, err := alice.Seal([]byte(cfg.Passphrase))
		if err != nil {
			log.Fatalf("Seal: %v", err)
		}
		fmt.Println("Sealed bundle ready to write to", cfg.AccountPath, "len:", len(bundle.Ciphertext))
	}
}
