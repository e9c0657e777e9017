// Package migrations embute os scripts SQL do goose no binário.
package migrations

import "embed"

// FS contém os arquivos *.sql desta pasta.
//
//go:embed *.sql
var FS embed.FS
