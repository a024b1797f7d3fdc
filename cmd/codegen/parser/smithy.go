package parser

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// SmithyAPI represents the parsed Smithy API definition
type SmithyAPI struct {
	Smithy   string                  `json:"smithy"`
	Metadata map[string]interface{}  `json:"metadata"`
	Shapes   map[string]*SmithyShape `json:"shapes"`
}

// SmithyShape represents a shape in the Smithy model
type SmithyShape struct {
	Type       string                   `json:"type"`
	Version    string                   `json:"version,omitempty"`
	Members    map[string]*SmithyMember `json:"members,omitempty"`
	Member     *SmithyMember            `json:"member,omitempty"` // For list/set types
	Key        *SmithyMember            `json:"key,omitempty"`    // For map types
	Value      *SmithyMember            `json:"value,omitempty"`  // For map types
	Traits     map[string]interface{}   `json:"traits,omitempty"`
	Target     string                   `json:"target,omitempty"`
	Input      *SmithyRef               `json:"input,omitempty"`
	Output     *SmithyRef               `json:"output,omitempty"`
	Errors     []SmithyRef              `json:"errors,omitempty"`
	Operations []SmithyRef              `json:"operations,omitempty"`
}

// SmithyMember represents a member of a structure
type SmithyMember struct {
	Target string                 `json:"target"`
	Traits map[string]interface{} `json:"traits,omitempty"`
}

// SmithyRef represents a reference to another shape
type SmithyRef struct {
	Target string `json:"target"`
}

// Operation is an operation of the service with its resolved shape names.
type Operation struct {
	Name   string
	Input  string
	Output string
	Errors []string
}

// EnumMember is one value of an enum shape.
type EnumMember struct {
	Name  string // Smithy member name (e.g. "FULL_LOAD")
	Value string // Wire value (e.g. "full-load")
}

// ParseSmithyJSON parses a Smithy JSON file and returns the API definition
func ParseSmithyJSON(filename string) (*SmithyAPI, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data)
}

// Parse parses a Smithy JSON AST document.
func Parse(data []byte) (*SmithyAPI, error) {
	var api SmithyAPI
	if err := json.Unmarshal(data, &api); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if len(api.Shapes) == 0 {
		return nil, fmt.Errorf("model has no shapes")
	}
	return &api, nil
}

// GetServiceShape returns the service shape from the API definition
func (api *SmithyAPI) GetServiceShape() (*SmithyShape, string, error) {
	for name, shape := range api.Shapes {
		if shape.Type == "service" {
			return shape, name, nil
		}
	}
	return nil, "", fmt.Errorf("no service shape found")
}

// GetOperations returns the operations bound to the service, sorted by name.
func (api *SmithyAPI) GetOperations() ([]Operation, error) {
	service, _, err := api.GetServiceShape()
	if err != nil {
		return nil, err
	}

	var ops []Operation
	for _, ref := range service.Operations {
		shape, ok := api.Shapes[ref.Target]
		if !ok || shape.Type != "operation" {
			return nil, fmt.Errorf("operation %s not found in model", ref.Target)
		}
		op := Operation{Name: GetShapeName(ref.Target)}
		if shape.Input != nil {
			op.Input = shape.Input.Target
		}
		if shape.Output != nil {
			op.Output = shape.Output.Target
		}
		for _, e := range shape.Errors {
			op.Errors = append(op.Errors, GetShapeName(e.Target))
		}
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops, nil
}

// SigningName returns the sigv4 signing name of the service.
func (api *SmithyAPI) SigningName() string {
	service, _, err := api.GetServiceShape()
	if err != nil {
		return ""
	}
	if sig, ok := service.Traits["aws.auth#sigv4"].(map[string]interface{}); ok {
		if name, ok := sig["name"].(string); ok {
			return name
		}
	}
	return ""
}

// ResolveShape follows the target chain to get the actual shape
func (api *SmithyAPI) ResolveShape(target string) (*SmithyShape, string) {
	shape, exists := api.Shapes[target]
	if !exists {
		return nil, ""
	}

	// Follow target references for simple types
	if shape.Type == "" && shape.Target != "" {
		return api.ResolveShape(shape.Target)
	}

	return shape, target
}

// GetShapeName extracts the simple name from a fully qualified shape name
func GetShapeName(fqn string) string {
	if i := strings.LastIndex(fqn, "#"); i >= 0 {
		return fqn[i+1:]
	}
	return fqn
}

// IsRequired checks if a member is required based on its traits
func (m *SmithyMember) IsRequired() bool {
	if m.Traits == nil {
		return false
	}
	_, required := m.Traits["smithy.api#required"]
	return required
}

// GetJSONName returns the JSON field name for a member. AWS JSON protocols
// use the member name as is unless a jsonName trait overrides it.
func (m *SmithyMember) GetJSONName(fieldName string) string {
	if m.Traits != nil {
		if name, ok := m.Traits["smithy.api#jsonName"].(string); ok && name != "" {
			return name
		}
	}
	return fieldName
}

// IsEnum checks if a shape is an enum
func (s *SmithyShape) IsEnum() bool {
	if s.Type == "enum" {
		return true
	}
	if s.Traits == nil {
		return false
	}
	_, hasEnum := s.Traits["smithy.api#enum"]
	return hasEnum
}

// GetEnumMembers returns the enum members sorted by wire value. Both the
// Smithy 1.0 enum trait and Smithy 2.0 enum shapes are understood.
func (s *SmithyShape) GetEnumMembers() []EnumMember {
	var members []EnumMember

	if enumList, ok := s.Traits["smithy.api#enum"].([]interface{}); ok {
		for _, item := range enumList {
			def, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			value, _ := def["value"].(string)
			name, _ := def["name"].(string)
			if name == "" {
				name = enumMemberName(value)
			}
			members = append(members, EnumMember{Name: name, Value: value})
		}
	}

	if len(members) == 0 && s.Type == "enum" {
		for name, member := range s.Members {
			value := name
			if v, ok := member.Traits["smithy.api#enumValue"].(string); ok {
				value = v
			}
			members = append(members, EnumMember{Name: name, Value: value})
		}
	}

	sort.Slice(members, func(i, j int) bool { return members[i].Value < members[j].Value })
	return members
}

// GetEnumValues returns the enum wire values in sorted order.
func (s *SmithyShape) GetEnumValues() []string {
	members := s.GetEnumMembers()
	values := make([]string, len(members))
	for i, m := range members {
		values[i] = m.Value
	}
	return values
}

func enumMemberName(value string) string {
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(strings.ToUpper(value))
}

// IsError reports whether the structure carries the error trait.
func (s *SmithyShape) IsError() bool {
	if s.Traits == nil {
		return false
	}
	_, ok := s.Traits["smithy.api#error"]
	return ok
}

// GetErrorType returns "client" or "server" for error structures.
func (s *SmithyShape) GetErrorType() string {
	if v, ok := s.Traits["smithy.api#error"].(string); ok {
		return v
	}
	return ""
}

// GetHTTPStatus returns the httpError trait value, or 0 when unset.
func (s *SmithyShape) GetHTTPStatus() int {
	if v, ok := s.Traits["smithy.api#httpError"].(float64); ok {
		return int(v)
	}
	return 0
}

// IsPrimitive checks if a shape is a primitive type
func (s *SmithyShape) IsPrimitive() bool {
	switch s.Type {
	case "string", "boolean", "byte", "short", "integer", "long",
		"float", "double", "bigInteger", "bigDecimal", "timestamp",
		"blob", "document":
		return true
	}
	return false
}

// IsCollection checks if a shape is a collection type
func (s *SmithyShape) IsCollection() bool {
	return s.Type == "list" || s.Type == "set"
}

// IsMap checks if a shape is a map type
func (s *SmithyShape) IsMap() bool {
	return s.Type == "map"
}
