// Package semantic maps source entity types onto the target city-model
// feature classes and decides, per element, whether its shape denotes a
// volumetric solid or a loose surface collection.
package semantic
