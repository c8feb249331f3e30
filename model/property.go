package model

// PropertySet is a named group of element properties.
type PropertySet struct {
	Name       string
	Properties []Property
}

// Property is a single named, typed value.
type Property struct {
	Name  string
	Value PropertyValue
}

// PropertyValue is the interface for typed property values. The concrete
// types are [StringValue], [IntValue], [RealValue], and [BoolValue].
type PropertyValue interface {
	isPropertyValue()
}

// StringValue is a textual property value.
type StringValue string

// IntValue is an integer property value.
type IntValue int64

// RealValue is a floating-point property value.
type RealValue float64

// BoolValue is a boolean property value.
type BoolValue bool

func (StringValue) isPropertyValue() {}
func (IntValue) isPropertyValue()    {}
func (RealValue) isPropertyValue()   {}
func (BoolValue) isPropertyValue()   {}
