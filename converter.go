package ifcgml

import (
	"fmt"
	"io"
	"os"

	"github.com/bimshape/ifcgml/citygml"
	"github.com/bimshape/ifcgml/geom"
	"github.com/bimshape/ifcgml/kernel"
	"github.com/bimshape/ifcgml/model"
	"github.com/bimshape/ifcgml/step"
)

// Converter provides a fluent interface for converting an IFC model into a
// CityGML document. Each configuration method returns a new Converter
// instance, making it safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source
	filename string
	model    *model.Model
	loaded   bool

	// Geometry
	provider kernel.Provider

	// Configuration
	options convertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		model:    c.model,
		loaded:   c.loaded,
		provider: c.provider,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ensureModel reads the source file if no model is loaded yet.
func (c *Converter) ensureModel() error {
	if c.loaded {
		return nil
	}
	if c.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	m, err := step.ReadFile(c.filename)
	if err != nil {
		return fmt.Errorf("failed to read IFC: %w", err)
	}
	c.model = m
	c.loaded = true
	return nil
}

// ensureProvider loads the geometry sidecar if one was configured and no
// provider is set yet.
func (c *Converter) ensureProvider() error {
	if c.provider != nil || c.options.sidecarPath == "" {
		return nil
	}
	p, err := kernel.LoadSidecar(c.options.sidecarPath)
	if err != nil {
		return fmt.Errorf("failed to load geometry sidecar: %w", err)
	}
	c.provider = p
	return nil
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// WithGeometry sets the geometry kernel used to triangulate element shapes.
// Without one, every element is treated as geometry-less.
func (c *Converter) WithGeometry(p kernel.Provider) *Converter {
	newConv := c.clone()
	newConv.provider = p
	return newConv
}

// WithGeometrySidecar loads meshes from a JSON sidecar file keyed by
// element GUID.
//
// Example:
//
//	err := ifcgml.Open("b.ifc").WithGeometrySidecar("b.meshes.json").WriteGML("b.gml")
func (c *Converter) WithGeometrySidecar(path string) *Converter {
	newConv := c.clone()
	newConv.options.sidecarPath = path
	return newConv
}

// NoExternalReferences suppresses the external references linking output
// features back to their source GUIDs.
func (c *Converter) NoExternalReferences() *Converter {
	newConv := c.clone()
	newConv.options.noExternalReferences = true
	return newConv
}

// NoProperties suppresses property export.
func (c *Converter) NoProperties() *Converter {
	newConv := c.clone()
	newConv.options.noProperties = true
	return newConv
}

// NoAppearances suppresses appearance (color/material) export.
func (c *Converter) NoAppearances() *Converter {
	newConv := c.clone()
	newConv.options.noAppearances = true
	return newConv
}

// NoStoreys suppresses storey features and their cross-references.
func (c *Converter) NoStoreys() *Converter {
	newConv := c.clone()
	newConv.options.noStoreys = true
	return newConv
}

// ListOrphanOpenings reports every door or window that could not be
// embedded in a host element as a warning, including the hosts its fill
// chain points at.
func (c *Converter) ListOrphanOpenings() *Converter {
	newConv := c.clone()
	newConv.options.listOrphanOpenings = true
	return newConv
}

// BucketOrphanOpenings groups unembedded doors and windows into one dummy
// constructive element per storey, plus a single fallback element for
// those without any storey assignment.
func (c *Converter) BucketOrphanOpenings() *Converter {
	newConv := c.clone()
	newConv.options.bucketOrphanOpenings = true
	return newConv
}

// FlatAttributes emits properties as direct generic attributes instead of
// grouped attribute sets.
func (c *Converter) FlatAttributes() *Converter {
	newConv := c.clone()
	newConv.options.flatAttributes = true
	return newConv
}

// PrefixAttributeNames prefixes each property name with its property set
// name, e.g. "[Pset_WallCommon]IsExternal".
func (c *Converter) PrefixAttributeNames() *Converter {
	newConv := c.clone()
	newConv.options.prefixAttributeNames = true
	return newConv
}

// Georeference overrides the model's own georeferencing with a fixed
// anchor.
//
// Example:
//
//	err := ifcgml.Open("b.ifc").Georeference(ifcgml.Theresienwiese).WriteGML("b.gml")
func (c *Converter) Georeference(g geom.Georeference) *Converter {
	newConv := c.clone()
	newConv.options.georeference = &g
	return newConv
}

// Offset shifts all output coordinates by a fixed vector, applied after
// georeferencing.
func (c *Converter) Offset(x, y, z float64) *Converter {
	newConv := c.clone()
	newConv.options.offset = [3]float64{x, y, z}
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Model reads and returns the element graph without generating a document.
func (c *Converter) Model() (*model.Model, error) {
	if c.err != nil {
		return nil, c.err
	}
	work := c.clone()
	if err := work.ensureModel(); err != nil {
		return nil, err
	}
	return work.model, nil
}

// Document runs the conversion and returns the document tree along with
// any warnings accumulated while generating it.
func (c *Converter) Document() (*citygml.Node, []Warning, error) {
	doc, warnings, _, err := c.generate()
	return doc, warnings, err
}

// Stats runs the conversion and returns its counters along with any
// warnings.
func (c *Converter) Stats() (citygml.Stats, []Warning, error) {
	_, warnings, stats, err := c.generate()
	return stats, warnings, err
}

// WriteTo runs the conversion and writes the document to w. Warnings are
// returned alongside; they do not fail the write.
func (c *Converter) WriteTo(w io.Writer) ([]Warning, error) {
	doc, warnings, _, err := c.generate()
	if err != nil {
		return warnings, err
	}
	if err := doc.Write(w); err != nil {
		return warnings, fmt.Errorf("writing document: %w", err)
	}
	return warnings, nil
}

// WriteGML runs the conversion and writes the document to the named file.
//
// Example:
//
//	warnings, err := ifcgml.Open("building.ifc").WriteGML("building.gml")
func (c *Converter) WriteGML(path string) ([]Warning, error) {
	doc, warnings, _, err := c.generate()
	if err != nil {
		return warnings, err
	}
	f, err := os.Create(path)
	if err != nil {
		return warnings, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := doc.Write(f); err != nil {
		return warnings, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return warnings, fmt.Errorf("closing %s: %w", path, err)
	}
	return warnings, nil
}

// generate is the shared terminal: load the model, resolve the transform,
// and run the document generator.
func (c *Converter) generate() (*citygml.Node, []Warning, citygml.Stats, error) {
	if c.err != nil {
		return nil, nil, citygml.Stats{}, c.err
	}
	work := c.clone()
	if err := work.ensureModel(); err != nil {
		return nil, nil, citygml.Stats{}, err
	}
	if err := work.ensureProvider(); err != nil {
		return nil, nil, citygml.Stats{}, err
	}

	transform := geom.FromModel(work.model)
	if g := work.options.georeference; g != nil {
		transform = transform.WithGeoreference(*g)
	}
	transform = transform.WithOffset(work.options.offset[0], work.options.offset[1], work.options.offset[2])

	gen := citygml.NewGenerator(work.model, work.provider, transform, citygml.Options{
		NoExternalReferences: work.options.noExternalReferences,
		NoProperties:         work.options.noProperties,
		NoAppearances:        work.options.noAppearances,
		NoStoreys:            work.options.noStoreys,
		ListOrphanOpenings:   work.options.listOrphanOpenings,
		BucketOrphanOpenings: work.options.bucketOrphanOpenings,
		FlatAttributes:       work.options.flatAttributes,
		PrefixAttributeNames: work.options.prefixAttributeNames,
	})
	doc := gen.Generate()
	return doc, gen.Warnings(), gen.Stats(), nil
}
