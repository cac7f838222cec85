//go:build integration

package serin

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"
)

var (
	integrationDSNURLPattern   = regexp.MustCompile(`(?i)postgres(?:ql)?://[^\s]+`)
	integrationPasswordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)
	integrationIdentPattern    = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
)

func requireIntegrationEnv(t *testing.T) string {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("SERIN_DATABASE_URL"))
	if dsn == "" {
		t.Fatal("integration requires environment variable: SERIN_DATABASE_URL")
	}

	return dsn
}

func integrationTableName(t *testing.T) string {
	t.Helper()

	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		t.Fatalf("failed to generate random table suffix: %s", sanitizeErrorMessage(err))
	}
	name := fmt.Sprintf("serin_go_it_%d_%x", time.Now().Unix(), binary.BigEndian.Uint32(b[:]))
	if !integrationIdentPattern.MatchString(name) {
		t.Fatalf("generated invalid table name: %q", name)
	}

	return name
}

func quoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func sanitizeErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = integrationDSNURLPattern.ReplaceAllString(msg, "[REDACTED_DSN]")
	msg = integrationPasswordPattern.ReplaceAllString(msg, "password=[REDACTED]")
	return msg
}

func mustNoErr(t *testing.T, err error, operation string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %s", operation, sanitizeErrorMessage(err))
	}
}
