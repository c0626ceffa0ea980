// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package samples

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Detect guesses the programming language of a sample from its file name and
// content. It returns "" when nothing matches.
func Detect(path, content string) string {
	return enry.GetLanguage(filepath.Base(path), []byte(content))
}
