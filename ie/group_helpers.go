// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// findChild returns the first decoded child of type t, or nil if absent.
// Grouped IEs use this for mandatory/optional single-valued children.
func findChild(children []*Ie, t Type) *Ie {
	for _, c := range children {
		if c.Type == t {
			return c
		}
	}
	return nil
}

// findChildren returns every decoded child of type t, in wire order.
// Grouped IEs use this for repeated children (e.g. CreatePDR*N in a
// SessionEstablishmentRequest).
func findChildren(children []*Ie, t Type) []*Ie {
	var out []*Ie
	for _, c := range children {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
