package migrations

import "embed"

// FS embeds the promotion schema migrations (listings, wallets,
// campaigns and the wallet ledger). golang-migrate reads them through
// the iofs driver on startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version db.Migrate targets.
const Version = 1
