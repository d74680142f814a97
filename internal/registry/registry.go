package registry

// builtin is the fixed folder-to-metadata-type table. Folders outside this
// table are still emitted; see TypeName for the fallback rule.
var builtin = map[string]string{
	"aura":            "AuraDefinitionBundle",
	"classes":         "ApexClass",
	"components":      "ApexComponent",
	"pages":           "ApexPage",
	"triggers":        "ApexTrigger",
	"staticresources": "StaticResource",
	"objects":         "CustomObject",
	"profiles":        "Profile",
}

// Registry maps project folder names to Salesforce metadata type names.
// The zero value is not usable; construct with New or Load.
type Registry struct {
	entries map[string]string
}

// New returns a registry holding only the built-in table.
func New() *Registry {
	entries := make(map[string]string, len(builtin))
	for folder, typeName := range builtin {
		entries[folder] = typeName
	}
	return &Registry{entries: entries}
}

// Lookup returns the metadata type name for a folder, and whether the
// folder is mapped. It never fails; absence is reported, not raised.
func (r *Registry) Lookup(folder string) (string, bool) {
	typeName, ok := r.entries[folder]
	return typeName, ok
}

// TypeName returns the metadata type for a folder, falling back to the raw
// folder name when the folder is unmapped. The fallback mirrors how the
// manifest treats unknown folders: they appear under their own name rather
// than being dropped.
func (r *Registry) TypeName(folder string) string {
	if typeName, ok := r.entries[folder]; ok {
		return typeName
	}
	return folder
}

// Merge returns a new registry with the given mappings layered over this
// one. Existing entries are overridden on folder-name collision; neither
// receiver nor argument is mutated.
func (r *Registry) Merge(extra map[string]string) *Registry {
	entries := make(map[string]string, len(r.entries)+len(extra))
	for folder, typeName := range r.entries {
		entries[folder] = typeName
	}
	for folder, typeName := range extra {
		entries[folder] = typeName
	}
	return &Registry{entries: entries}
}

// Len returns the number of mapped folders.
func (r *Registry) Len() int {
	return len(r.entries)
}
