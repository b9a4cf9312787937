package manifest

import "github.com/chazu/nrl/pkg/rag"

// RegisterExports registers every export of m with the extension
// resolver and returns the assigned ids keyed by export name. An export
// whose bare name is already taken registers as <package>_<export>.
func RegisterExports(m *Manifest, r *rag.Resolver) map[string]uint32 {
	ids := make(map[string]uint32, len(m.Exports))
	for _, e := range m.Exports {
		name := e.Name
		if _, taken := r.GetByName(name); taken {
			name = QualifiedExport(m.Extension.Name, e.Name)
		}
		desc := e.Description
		if desc == "" {
			desc = m.Extension.Description
		}
		ids[e.Name] = r.RegisterExtension(name, desc, len(e.Inputs))
	}
	return ids
}
