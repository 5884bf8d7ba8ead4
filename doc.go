// Package passbook provides the types and operations for a single-user
// account vault: accounts protected by a 4-digit PIN, balances kept in
// exact minor units, and an append-only transaction history, all persisted
// in one human-readable JSON document.
//
// The core functionalities include:
//   - Ledger: the full set of accounts loaded from and saved to the
//     accounts document, with canonical, byte-stable encoding.
//   - Engine: the only writer of the ledger. Every operation (deposit,
//     withdraw, transfer, PIN change) mutates a working copy, persists it,
//     and only then publishes it, so a failed save never leaves partial
//     state in memory or on disk.
//   - Identity: account-number generation, canonical id normalization, and
//     salted PIN digests. Plaintext PINs are never stored.
//
// This package serves as the foundational logic for the `pb` command-line
// tool; the CLI is a thin shell over the Engine's command interface.
package passbook
