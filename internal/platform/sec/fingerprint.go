// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

package sec

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint derives a stable, non-reversible digest from request attributes.
//
// It gives the engagement layer a secondary signal for spotting abuse even
// when a visitor clears their stored identifier. The digest is keyed on
// nothing personal beyond what every HTTP request already carries, and the
// raw inputs are never stored.
func Fingerprint(userAgent, acceptLanguage, remoteIP string) string {
	data := strings.Join([]string{userAgent, acceptLanguage, remoteIP}, "|")

	digest := blake2b.Sum256([]byte(data))
	return hex.EncodeToString(digest[:])
}
