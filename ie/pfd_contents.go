// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// PFDContents, 3GPP TS 29.244 clause 8.2.74, describes one Packet Flow
// Description: a flags octet (followed by one spare octet) selects which
// of several single fields (flow description, URL, domain name, custom
// PFD content, domain name protocol) and repeated-entry groups (additional
// flow descriptions, additional URLs, additional domain-name-and-protocol
// entries) follow. Each present field, and each entry of a repeated group,
// is a plain 2-octet-length-prefixed string -- there is no count prefix
// ahead of a repeated group. A repeated group's entries are read back to
// back until the payload is exhausted, except that the AFD group stops
// after one entry when AURL or ADNP is also set, and the AURL group stops
// after one entry when ADNP is also set: 3GPP never defines where one
// group's entries end and the next group's begin, so only the last
// present group may run to the end of the payload.
const (
	pfdFlagFD   = 0x01
	pfdFlagURL  = 0x02
	pfdFlagDN   = 0x04
	pfdFlagCP   = 0x08
	pfdFlagDNP  = 0x10
	pfdFlagAFD  = 0x20
	pfdFlagAURL = 0x40
	pfdFlagADNP = 0x80
)

type PFDContents struct {
	FlowDescription       string
	HasFlowDescription    bool
	URL                   string
	HasURL                bool
	DomainName            string
	HasDomainName         bool
	CustomPFDContent      []byte
	HasCustomPFDContent   bool
	DomainNameProtocol    string
	HasDomainNameProtocol bool

	AdditionalFlowDescriptions      []string
	AdditionalURLs                  []string
	AdditionalDomainNameAndProtocol []string
}

func putLP(out []byte, s []byte) []byte {
	lenBuf := make([]byte, 2)
	putUint16(lenBuf, uint16(len(s)))
	out = append(out, lenBuf...)
	return append(out, s...)
}

// Marshal encodes the PFDContents payload.
func (v PFDContents) Marshal() []byte {
	var flags byte
	if v.HasFlowDescription {
		flags |= pfdFlagFD
	}
	if v.HasURL {
		flags |= pfdFlagURL
	}
	if v.HasDomainName {
		flags |= pfdFlagDN
	}
	if v.HasCustomPFDContent {
		flags |= pfdFlagCP
	}
	if v.HasDomainNameProtocol {
		flags |= pfdFlagDNP
	}
	if len(v.AdditionalFlowDescriptions) > 0 {
		flags |= pfdFlagAFD
	}
	if len(v.AdditionalURLs) > 0 {
		flags |= pfdFlagAURL
	}
	if len(v.AdditionalDomainNameAndProtocol) > 0 {
		flags |= pfdFlagADNP
	}

	out := []byte{flags, 0} // flags octet plus one spare octet
	if v.HasFlowDescription {
		out = putLP(out, []byte(v.FlowDescription))
	}
	if v.HasURL {
		out = putLP(out, []byte(v.URL))
	}
	if v.HasDomainName {
		out = putLP(out, []byte(v.DomainName))
	}
	if v.HasCustomPFDContent {
		out = putLP(out, v.CustomPFDContent)
	}
	if v.HasDomainNameProtocol {
		out = putLP(out, []byte(v.DomainNameProtocol))
	}
	for _, fd := range v.AdditionalFlowDescriptions {
		out = putLP(out, []byte(fd))
	}
	for _, u := range v.AdditionalURLs {
		out = putLP(out, []byte(u))
	}
	for _, dnp := range v.AdditionalDomainNameAndProtocol {
		out = putLP(out, []byte(dnp))
	}
	return out
}

// readLP reads one length-prefixed string starting at offset. Unlike a
// mandatory field, a repeated-group entry that runs out of bytes before a
// 2-octet length can be read is not malformed -- it just means the group
// has no more entries, so ok is false rather than an error.
func readLP(payload []byte, offset int) (s string, next int, ok bool) {
	if len(payload) < offset+2 {
		return "", offset, false
	}
	n := int(getUint16(payload[offset : offset+2]))
	offset += 2
	if len(payload) < offset+n {
		return "", offset, false
	}
	return string(payload[offset : offset+n]), offset + n, true
}

// UnmarshalPFDContents decodes a PFDContents payload. A field whose flag is
// set but whose length prefix doesn't fit in what's left of the payload is
// simply left absent rather than rejected -- the same leniency the
// repeated-group entries get, since a truncated trailing field and an
// absent one are indistinguishable on the wire.
func UnmarshalPFDContents(payload []byte) (PFDContents, error) {
	if len(payload) < 2 {
		return PFDContents{}, NewInvalidLength("PFDContents", TypePFDContents, 2, len(payload))
	}
	flags := payload[0]
	offset := 2 // flags octet plus one spare octet
	var v PFDContents

	if flags&pfdFlagFD != 0 {
		if s, next, ok := readLP(payload, offset); ok {
			v.FlowDescription, offset, v.HasFlowDescription = s, next, true
		}
	}
	if flags&pfdFlagURL != 0 {
		if s, next, ok := readLP(payload, offset); ok {
			v.URL, offset, v.HasURL = s, next, true
		}
	}
	if flags&pfdFlagDN != 0 {
		if s, next, ok := readLP(payload, offset); ok {
			v.DomainName, offset, v.HasDomainName = s, next, true
		}
	}
	if flags&pfdFlagCP != 0 {
		if s, next, ok := readLP(payload, offset); ok {
			v.CustomPFDContent, offset, v.HasCustomPFDContent = []byte(s), next, true
		}
	}
	if flags&pfdFlagDNP != 0 {
		if s, next, ok := readLP(payload, offset); ok {
			v.DomainNameProtocol, offset, v.HasDomainNameProtocol = s, next, true
		}
	}
	if flags&pfdFlagAFD != 0 {
		for offset < len(payload) {
			fd, next, ok := readLP(payload, offset)
			if !ok {
				break
			}
			offset = next
			v.AdditionalFlowDescriptions = append(v.AdditionalFlowDescriptions, fd)
			if flags&pfdFlagAURL != 0 || flags&pfdFlagADNP != 0 {
				break
			}
		}
	}
	if flags&pfdFlagAURL != 0 {
		for offset < len(payload) {
			u, next, ok := readLP(payload, offset)
			if !ok {
				break
			}
			offset = next
			v.AdditionalURLs = append(v.AdditionalURLs, u)
			if flags&pfdFlagADNP != 0 {
				break
			}
		}
	}
	if flags&pfdFlagADNP != 0 {
		for offset < len(payload) {
			dnp, next, ok := readLP(payload, offset)
			if !ok {
				break
			}
			offset = next
			v.AdditionalDomainNameAndProtocol = append(v.AdditionalDomainNameAndProtocol, dnp)
		}
	}

	return v, nil
}

// ToIe wraps the PFDContents as a generic Ie.
func (v PFDContents) ToIe() *Ie { return New(TypePFDContents, v.Marshal()) }
