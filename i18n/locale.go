// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: i18n/locale.go
// Summary: Locale tag detection and localized text loading.
// Notes: Missing translations fall back to the default locale, then to an
// empty text. Nothing here is fatal.

package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("text is not valid UTF-8")

// DefaultLocale is used when LANG is unset and as the fallback text file.
const DefaultLocale = "en-us"

// LocaleEnv is the environment variable the locale tag is derived from.
const LocaleEnv = "LANG"

// Tag converts a LANG value such as "zh_CN.UTF-8" into a tag like "zh-cn":
// everything before the first '.', underscores replaced by hyphens,
// lowercased.
func Tag(lang string) string {
	if i := strings.IndexByte(lang, '.'); i >= 0 {
		lang = lang[:i]
	}
	return strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
}

// Detect reads the locale tag from the environment.
func Detect() string {
	lang, ok := os.LookupEnv(LocaleEnv)
	if !ok {
		return DefaultLocale
	}
	return Tag(lang)
}

// Catalog loads localized text files named <tag>.txt from a directory.
type Catalog struct {
	dir string
}

// NewCatalog creates a catalog rooted at dir.
func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Path returns the file holding the text for tag.
func (c *Catalog) Path(tag string) string {
	return filepath.Join(c.dir, tag+".txt")
}

// Text returns the text for tag, the default locale's text if tag has none,
// or "" when neither can be read.
func (c *Catalog) Text(tag string) string {
	text, err := c.read(tag)
	if err == nil {
		return text
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("I18n: %v", err)
	}
	if tag != DefaultLocale {
		text, err = c.read(DefaultLocale)
		if err == nil {
			return text
		}
		log.Printf("I18n: no fallback text: %v", err)
	}
	return ""
}

func (c *Catalog) read(tag string) (string, error) {
	path := c.Path(tag)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, errInvalidUTF8)
	}
	return string(data), nil
}
