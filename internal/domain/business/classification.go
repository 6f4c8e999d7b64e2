package business

import "strings"

// ClassificationSource answers "does this business carry classification X"
// against one schema generation. The matching engine only ever talks to this
// interface, so it stays agnostic of the migration state.
type ClassificationSource interface {
	HasClassification(p Profile, name string) bool
}

// LegacyTagSource reads the pre-migration single-tag field.
type LegacyTagSource struct{}

func (LegacyTagSource) HasClassification(p Profile, name string) bool {
	return strings.EqualFold(strings.TrimSpace(p.LegacyTag), name)
}

// TypeNameSource reads the current joined business-type names.
type TypeNameSource struct{}

func (TypeNameSource) HasClassification(p Profile, name string) bool {
	for _, tn := range p.TypeNames {
		if strings.EqualFold(strings.TrimSpace(tn), name) {
			return true
		}
	}
	return false
}

// CompositeSource is the migration-window lookup: a classification counts if
// either schema carries it.
type CompositeSource struct {
	sources []ClassificationSource
}

func NewCompositeSource(sources ...ClassificationSource) CompositeSource {
	return CompositeSource{sources: sources}
}

// NewDefaultClassificationSource covers both the legacy and the current
// schema, which is the behavior during the migration window.
func NewDefaultClassificationSource() ClassificationSource {
	return NewCompositeSource(LegacyTagSource{}, TypeNameSource{})
}

func (c CompositeSource) HasClassification(p Profile, name string) bool {
	for _, s := range c.sources {
		if s.HasClassification(p, name) {
			return true
		}
	}
	return false
}
