package manifest

import "encoding/xml"

// DefaultNamespace is the Salesforce metadata API namespace
const DefaultNamespace = "http://soap.sforce.com/2006/04/metadata"

// DefaultAPIVersion is the metadata API version stamped into manifests
// unless configured otherwise
const DefaultAPIVersion = "31.0"

// TypeGroup is one scanned subfolder's worth of members plus its metadata
// type label. Field order matters: members serialize before name.
type TypeGroup struct {
	Members []string `xml:"members"`
	Name    string   `xml:"name"`
}

// Manifest is the in-memory package descriptor. It is built once per
// invocation, immutable after construction, and consumed exactly once by
// the writer.
type Manifest struct {
	XMLName xml.Name    `xml:"Package"`
	Xmlns   string      `xml:"xmlns,attr"`
	Types   []TypeGroup `xml:"types"`
	Version string      `xml:"version"`
}

// New creates an empty manifest with the given version and namespace,
// substituting defaults for empty values.
func New(apiVersion, xmlns string) *Manifest {
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	if xmlns == "" {
		xmlns = DefaultNamespace
	}
	return &Manifest{
		Xmlns:   xmlns,
		Version: apiVersion,
	}
}

// MemberCount returns the total number of members across all groups.
func (m *Manifest) MemberCount() int {
	var n int
	for _, group := range m.Types {
		n += len(group.Members)
	}
	return n
}
