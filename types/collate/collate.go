/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collate orders strings the way a reader of a given language expects.
package collate

import (
	"sync"

	"github.com/golang/glog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const enBase = "en"

// A collate.Collator keeps scratch buffers and is not safe for concurrent use, so
// every language gets a pool of them.
var pools struct {
	sync.Mutex
	m map[string]*sync.Pool
}

func newPool(tag language.Tag) *sync.Pool {
	return &sync.Pool{New: func() interface{} { return collate.New(tag) }}
}

// pool returns the collator pool for lang. Unknown or invalid languages fall back to
// English.
func pool(lang string) *sync.Pool {
	pools.Lock()
	defer pools.Unlock()

	if lang == "" {
		return pools.m[enBase]
	}
	if p, found := pools.m[lang]; found {
		return p
	}

	if tag, err := language.Parse(lang); err != nil {
		glog.Errorf("While trying to parse lang %q. Error: %v", lang, err)
	} else if tag != language.Und {
		if _, conf := tag.Base(); conf > language.No {
			p := newPool(tag)
			pools.m[lang] = p
			return p
		}
	}

	glog.Warningf("Unable to find lang %q. Reverting to English.", lang)
	// Remember the fallback so that the warning is logged once per language.
	pools.m[lang] = pools.m[enBase]
	return pools.m[enBase]
}

// Compare returns -1, 0 or 1 depending on whether a sorts before, with or after b
// in the collation order of lang.
func Compare(lang, a, b string) int {
	p := pool(lang)
	cl := p.Get().(*collate.Collator)
	defer p.Put(cl)
	return cl.CompareString(a, b)
}

func init() {
	pools.m = make(map[string]*sync.Pool)
	pools.m[enBase] = newPool(language.English)
}
