/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package collate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		lang string
		a, b string
		want int
	}{
		{"", "apple", "banana", -1},
		{"en", "banana", "apple", 1},
		{"en", "same", "same", 0},
		{"en", "a", "B", -1},
		{"de", "Äpfel", "Birne", -1},
		{"not a language", "x", "y", -1},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Compare(tc.lang, tc.a, tc.b), "%q vs %q in %q", tc.a, tc.b, tc.lang)
	}
}

func TestCompareConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if Compare("en", "alpha", "beta") != -1 {
					t.Error("alpha should sort before beta")
					return
				}
			}
		}()
	}
	wg.Wait()
}
