package model

// Annotation classes and field keys understood by the transform. The class
// names follow the de facto FIRRTL annotation vocabulary so designs produced
// by other toolchains round-trip unchanged.
const (
	// MarkDUTClass marks the design-under-test module.
	MarkDUTClass = "sifive.enterprise.firrtl.MarkDUTAnnotation"
	// InjectHierarchyClass is the transform directive. It carries a required
	// "name" string field (wrapper name hint) and an optional "moveDut" bool.
	InjectHierarchyClass = "sifive.enterprise.firrtl.InjectDUTHierarchyAnnotation"
	// NonlocalKey is the field holding a hierarchical path symbol on
	// path-scoped annotations.
	NonlocalKey = "circt.nonlocal"
)

// Annotation is a mapping of named fields attached to a circuit, module, or
// port. The "class" field identifies what the annotation means.
type Annotation map[string]any

// Class returns the annotation's class, or "".
func (a Annotation) Class() string {
	class, _ := a.StringField("class")
	return class
}

// IsClass reports whether the annotation has the given class.
func (a Annotation) IsClass(class string) bool {
	return a.Class() == class
}

// StringField returns the named field if it is present and a string.
func (a Annotation) StringField(key string) (string, bool) {
	v, ok := a[key].(string)
	return v, ok
}

// BoolField returns the named field if it is present and a bool.
func (a Annotation) BoolField(key string) (bool, bool) {
	v, ok := a[key].(bool)
	return v, ok
}

// SetField sets the named field.
func (a Annotation) SetField(key string, value any) {
	a[key] = value
}

// Clone returns a shallow copy of the annotation's fields.
func (a Annotation) Clone() Annotation {
	clone := make(Annotation, len(a))
	for k, v := range a {
		clone[k] = v
	}

	return clone
}

func cloneAnnotations(annos []Annotation) []Annotation {
	if annos == nil {
		return nil
	}

	clones := make([]Annotation, len(annos))
	for i, a := range annos {
		clones[i] = a.Clone()
	}

	return clones
}

// CloneAnnotations deep-copies an annotation list.
func CloneAnnotations(annos []Annotation) []Annotation {
	return cloneAnnotations(annos)
}

// FilterAnnotations removes every annotation for which remove returns true and
// returns the retained list. The input slice is not modified.
func FilterAnnotations(annos []Annotation, remove func(Annotation) bool) []Annotation {
	var kept []Annotation

	for _, a := range annos {
		if !remove(a) {
			kept = append(kept, a)
		}
	}

	return kept
}
