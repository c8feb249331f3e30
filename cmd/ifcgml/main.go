// Command ifcgml converts an IFC building model into a CityGML 3.0
// document.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bimshape/ifcgml"
)

func main() {
	var (
		output       = flag.String("output", "", "Output CityGML file (default: input with .gml extension)")
		meshes       = flag.String("meshes", "", "JSON mesh sidecar with triangulated geometry per element GUID")
		noReferences = flag.Bool("no-references", false, "Do not export external references to IFC GUIDs")
		noProperties = flag.Bool("no-properties", false, "Do not export IFC property sets")
		noAppearance = flag.Bool("no-appearances", false, "Do not export appearances (colors/materials)")
		noStoreys    = flag.Bool("no-storeys", false, "Do not export storey features")
		listOrphans  = flag.Bool("list-unmapped-doors-and-windows", false, "List doors/windows that could not be embedded in a host element")
		dummyOrphans = flag.Bool("unrelated-doors-and-windows-in-dummy-bce", false, "Group unembedded doors/windows into dummy constructive elements per storey")
		flatAttrs    = flag.Bool("no-generic-attribute-sets", false, "Emit properties as flat generic attributes")
		prefixAttrs  = flag.Bool("pset-names-as-prefixes", false, "Prefix property names with their property set name")
		georef       = flag.Bool("georef-oktoberfest", false, "Override georeferencing with a fixed anchor at the Theresienwiese, Munich (EPSG:25832)")
		xoffset      = flag.Float64("xoffset", 0, "Offset added to all X coordinates")
		yoffset      = flag.Float64("yoffset", 0, "Offset added to all Y coordinates")
		zoffset      = flag.Float64("zoffset", 0, "Offset added to all Z coordinates")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] input.ifc\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	out := *output
	if out == "" {
		out = replaceExt(input, ".gml")
	}

	conv := ifcgml.Open(input)
	if *meshes != "" {
		conv = conv.WithGeometrySidecar(*meshes)
	}
	if *noReferences {
		conv = conv.NoExternalReferences()
	}
	if *noProperties {
		conv = conv.NoProperties()
	}
	if *noAppearance {
		conv = conv.NoAppearances()
	}
	if *noStoreys {
		conv = conv.NoStoreys()
	}
	if *listOrphans {
		conv = conv.ListOrphanOpenings()
	}
	if *dummyOrphans {
		conv = conv.BucketOrphanOpenings()
	}
	if *flatAttrs {
		conv = conv.FlatAttributes()
	}
	if *prefixAttrs {
		conv = conv.PrefixAttributeNames()
	}
	if *georef {
		conv = conv.Georeference(ifcgml.Theresienwiese)
	}
	if *xoffset != 0 || *yoffset != 0 || *zoffset != 0 {
		conv = conv.Offset(*xoffset, *yoffset, *zoffset)
	}

	warnings, err := conv.WriteGML(out)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully wrote %s\n", out)
	if *georef {
		g := ifcgml.Theresienwiese
		fmt.Printf("Georeference used (%s): Easting=%.3f, Northing=%.3f, Height=%.3f\n",
			g.SRSName, g.Eastings, g.Northings, g.OrthogonalHeight)
	}
	if *xoffset != 0 || *yoffset != 0 || *zoffset != 0 {
		fmt.Printf("Offset applied: X=%.3f, Y=%.3f, Z=%.3f\n", *xoffset, *yoffset, *zoffset)
	}
}

func replaceExt(path, ext string) string {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case '.':
			return path[:i] + ext
		case '/', '\\':
			return path + ext
		}
	}
	return path + ext
}
