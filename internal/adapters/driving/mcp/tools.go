package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/propunit/internal/core/domain"
	"github.com/custodia-labs/propunit/internal/core/ports/driving"
)

// PropertyOutput is a value with its rendered unit.
type PropertyOutput struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	Text  string  `json:"text" jsonschema:"the value and unit as a single string"`
}

// ConvertInput is the input schema for the convert_units tool.
type ConvertInput struct {
	Value float64 `json:"value" jsonschema:"the numeric value to convert"`
	From  string  `json:"from" jsonschema:"unit expression of the value, e.g. 'W m^-2 K^-1'"`
	To    string  `json:"to" jsonschema:"unit expression to convert to, e.g. 'Btu ft^-2 hr^-1 °R^-1'"`
}

// ToSIInput is the input schema for the to_si tool.
type ToSIInput struct {
	Value float64 `json:"value" jsonschema:"the numeric value to convert"`
	Unit  string  `json:"unit" jsonschema:"unit expression of the value, e.g. 'km hr^-1'"`
}

// QuantityInput is a value with a unit expression.
type QuantityInput struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit" jsonschema:"unit expression, e.g. 'bar' or 'm s^-1'"`
}

// CombineInput is the input schema for the combine_properties tool.
type CombineInput struct {
	Operation string        `json:"operation" jsonschema:"one of add, subtract, multiply, divide"`
	Left      QuantityInput `json:"left"`
	Right     QuantityInput `json:"right"`
}

// CompatibleInput is the input schema for the check_compatibility tool.
type CompatibleInput struct {
	A string `json:"a" jsonschema:"first unit expression"`
	B string `json:"b" jsonschema:"second unit expression"`
}

// CompatibleOutput is the output schema for the check_compatibility tool.
type CompatibleOutput struct {
	Compatible bool `json:"compatible"`
}

// ListUnitsInput is the input schema for the list_units tool.
type ListUnitsInput struct {
	Category string `json:"category,omitempty" jsonschema:"only list units of this category, e.g. Length"`
}

// ListUnitsOutput is the output schema for the list_units tool.
type ListUnitsOutput struct {
	Units []UnitOutput `json:"units"`
	Count int          `json:"count"`
}

// UnitOutput describes a single unit.
type UnitOutput struct {
	Symbol   string  `json:"symbol"`
	Category string  `json:"category"`
	Scale    float64 `json:"scale"`
	Offset   float64 `json:"offset,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_units",
		Description: "Convert a value from one unit expression to another compatible one",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "to_si",
		Description: "Express a value in SI reference units",
	}, s.handleToSI)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "combine_properties",
		Description: "Add, subtract, multiply or divide two quantities with units",
	}, s.handleCombine)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_compatibility",
		Description: "Check whether values in one unit can be converted to another",
	}, s.handleCompatible)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_units",
		Description: "List known unit symbols, optionally for one category",
	}, s.handleListUnits)
}

func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, PropertyOutput, error) {
	p, err := s.ports.Conversion.Convert(ctx, input.Value, input.From, input.To)
	if err != nil {
		return nil, PropertyOutput{}, err
	}
	return nil, toPropertyOutput(p), nil
}

func (s *Server) handleToSI(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ToSIInput,
) (*mcp.CallToolResult, PropertyOutput, error) {
	p, err := s.ports.Conversion.ToSI(ctx, input.Value, input.Unit)
	if err != nil {
		return nil, PropertyOutput{}, err
	}
	return nil, toPropertyOutput(p), nil
}

func (s *Server) handleCombine(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CombineInput,
) (*mcp.CallToolResult, PropertyOutput, error) {
	op := driving.Operation(input.Operation)
	if !op.IsValid() {
		return nil, PropertyOutput{}, fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidInput, input.Operation)
	}

	p, err := s.ports.Conversion.Combine(ctx, op,
		driving.Quantity{Value: input.Left.Value, Unit: input.Left.Unit},
		driving.Quantity{Value: input.Right.Value, Unit: input.Right.Unit},
	)
	if err != nil {
		return nil, PropertyOutput{}, err
	}
	return nil, toPropertyOutput(p), nil
}

func (s *Server) handleCompatible(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CompatibleInput,
) (*mcp.CallToolResult, CompatibleOutput, error) {
	ok, err := s.ports.Conversion.Compatible(ctx, input.A, input.B)
	if err != nil {
		return nil, CompatibleOutput{}, err
	}
	return nil, CompatibleOutput{Compatible: ok}, nil
}

func (s *Server) handleListUnits(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListUnitsInput,
) (*mcp.CallToolResult, ListUnitsOutput, error) {
	descriptors, err := s.ports.Catalog.List(ctx, domain.Category(input.Category))
	if err != nil {
		return nil, ListUnitsOutput{}, err
	}

	output := ListUnitsOutput{
		Units: make([]UnitOutput, len(descriptors)),
		Count: len(descriptors),
	}
	for i, d := range descriptors {
		output.Units[i] = toUnitOutput(d)
	}
	return nil, output, nil
}

func toPropertyOutput(p domain.Property) PropertyOutput {
	return PropertyOutput{
		Value: p.Value,
		Unit:  p.Unit.String(),
		Text:  p.String(),
	}
}

func toUnitOutput(d domain.Descriptor) UnitOutput {
	return UnitOutput{
		Symbol:   d.Symbol,
		Category: string(d.Category),
		Scale:    d.Converter.Scale,
		Offset:   d.Converter.Offset,
	}
}
