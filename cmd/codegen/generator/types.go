package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nandemo-ya/dms-go/cmd/codegen/parser"
)

// Field kinds drive which accessors are emitted.
const (
	kindScalar    = "scalar"
	kindEnum      = "enum"
	kindTimestamp = "timestamp"
	kindBlob      = "blob"
	kindStruct    = "struct"
	kindList      = "list"
	kindMap       = "map"
)

// Model is the template input shared by every generated file.
type Model struct {
	Package     string
	Module      string
	ServiceID   string
	SigningName string
	APIVersion  string
	Types       []*TypeInfo
	Enums       []*EnumInfo
	Errors      []*ErrorInfo
	Operations  []parser.Operation
	NeedsTime   bool
}

// TypeInfo holds information about a generated structure
type TypeInfo struct {
	Name      string
	Operation string // set for operation inputs and outputs
	IsInput   bool
	IsOutput  bool
	Fields    []FieldInfo
}

// FieldInfo holds information about a struct field
type FieldInfo struct {
	Name     string
	GoType   string
	JSONName string
	Kind     string
	ArgType  string // setter argument type
	ElemType string // element type of list fields
	EnumType string // Go enum type of enum-constrained strings
	Validate string // validator tag value
}

// EnumInfo holds an enum type and its constants.
type EnumInfo struct {
	Name    string
	Members []EnumConst
}

// EnumConst is a generated enum constant.
type EnumConst struct {
	Name  string // Go constant name (e.g. "MigrationTypeValueFullLoad")
	Value string // Wire value (e.g. "full-load")
}

// ErrorInfo holds a fault shape.
type ErrorInfo struct {
	Name       string
	Fault      string // "client" or "server"
	HTTPStatus int
}

// Tag returns the struct tag of the field.
func (f FieldInfo) Tag() string {
	tag := fmt.Sprintf(`json:"%s,omitempty"`, f.JSONName)
	if f.Validate != "" {
		tag += fmt.Sprintf(` validate:"%s"`, f.Validate)
	}
	return "`" + tag + "`"
}

func (g *Generator) buildModel(api *parser.SmithyAPI) (*Model, error) {
	service, serviceName, err := api.GetServiceShape()
	if err != nil {
		return nil, err
	}
	ops, err := api.GetOperations()
	if err != nil {
		return nil, err
	}

	model := &Model{
		Package:     g.packageName,
		Module:      g.modulePath,
		ServiceID:   parser.GetShapeName(serviceName),
		SigningName: api.SigningName(),
		APIVersion:  service.Version,
		Operations:  ops,
	}

	// Operation inputs and outputs are renamed after the operation.
	renames := make(map[string]string)
	roles := make(map[string]*TypeInfo)
	for _, op := range ops {
		if op.Input != "" {
			renames[op.Input] = op.Name + "Request"
			roles[op.Input] = &TypeInfo{Name: op.Name + "Request", Operation: op.Name, IsInput: true}
		}
		if op.Output != "" {
			renames[op.Output] = op.Name + "Response"
			roles[op.Output] = &TypeInfo{Name: op.Name + "Response", Operation: op.Name, IsOutput: true}
		}
	}

	for id, shape := range api.Shapes {
		name := parser.GetShapeName(id)
		switch {
		case shape.IsEnum():
			model.Enums = append(model.Enums, buildEnum(name, shape))
		case shape.Type == "structure" && shape.IsError():
			model.Errors = append(model.Errors, &ErrorInfo{
				Name:       name,
				Fault:      shape.GetErrorType(),
				HTTPStatus: shape.GetHTTPStatus(),
			})
		case shape.Type == "structure":
			info, ok := roles[id]
			if !ok {
				info = &TypeInfo{Name: name}
			}
			fields, err := g.buildFields(api, shape, renames)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			info.Fields = fields
			for _, f := range fields {
				if f.Kind == kindTimestamp {
					model.NeedsTime = true
				}
			}
			model.Types = append(model.Types, info)
		}
	}

	sort.Slice(model.Types, func(i, j int) bool { return model.Types[i].Name < model.Types[j].Name })
	sort.Slice(model.Enums, func(i, j int) bool { return model.Enums[i].Name < model.Enums[j].Name })
	sort.Slice(model.Errors, func(i, j int) bool { return model.Errors[i].Name < model.Errors[j].Name })
	return model, nil
}

func buildEnum(name string, shape *parser.SmithyShape) *EnumInfo {
	info := &EnumInfo{Name: name}
	for _, m := range shape.GetEnumMembers() {
		info.Members = append(info.Members, EnumConst{
			Name:  name + pascalCase(m.Name),
			Value: m.Value,
		})
	}
	return info
}

// buildFields generates field info for a structure's members in sorted order.
func (g *Generator) buildFields(api *parser.SmithyAPI, shape *parser.SmithyShape, renames map[string]string) ([]FieldInfo, error) {
	var names []string
	for name := range shape.Members {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]FieldInfo, 0, len(names))
	for _, name := range names {
		member := shape.Members[name]
		field, err := g.buildField(api, name, member, renames)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (g *Generator) buildField(api *parser.SmithyAPI, name string, member *parser.SmithyMember, renames map[string]string) (FieldInfo, error) {
	field := FieldInfo{
		Name:     exportFieldName(name),
		JSONName: member.GetJSONName(name),
	}
	required := member.IsRequired()

	target, targetID := api.ResolveShape(member.Target)
	if target == nil {
		return field, fmt.Errorf("member %s: unknown target %s", name, member.Target)
	}

	switch {
	case target.IsEnum():
		field.Kind = kindEnum
		field.GoType = "*string"
		field.ArgType = "string"
		field.EnumType = parser.GetShapeName(targetID)
	case target.Type == "timestamp":
		field.Kind = kindTimestamp
		field.GoType = "*common.UnixTime"
		field.ArgType = "time.Time"
	case target.Type == "blob":
		field.Kind = kindBlob
		field.GoType = "[]byte"
		field.ArgType = "[]byte"
	case target.Type == "structure":
		field.Kind = kindStruct
		field.GoType = "*" + structName(targetID, renames)
		field.ArgType = field.GoType
	case target.IsCollection():
		elem, elemShape, err := elementType(api, target.Member, renames)
		if err != nil {
			return field, fmt.Errorf("member %s: %w", name, err)
		}
		field.Kind = kindList
		field.ElemType = elem
		field.GoType = "[]" + elem
		field.ArgType = field.GoType
		switch {
		case elemShape != nil && required:
			field.Validate = "required,dive"
		case hasRequiredMembers(elemShape):
			field.Validate = "omitempty,dive"
		}
	case target.IsMap():
		elem, _, err := elementType(api, target.Value, renames)
		if err != nil {
			return field, fmt.Errorf("member %s: %w", name, err)
		}
		field.Kind = kindMap
		field.GoType = "map[string]" + elem
		field.ArgType = field.GoType
	default:
		goType, ok := scalarGoType(target.Type)
		if !ok {
			return field, fmt.Errorf("member %s: unsupported type %q", name, target.Type)
		}
		field.Kind = kindScalar
		field.GoType = "*" + goType
		field.ArgType = goType
	}

	if required && field.Validate == "" {
		field.Validate = "required"
	}
	return field, nil
}

// elementType returns the Go element type of a list or map value, and the
// element shape when it is a structure validation can dive into.
func elementType(api *parser.SmithyAPI, member *parser.SmithyMember, renames map[string]string) (string, *parser.SmithyShape, error) {
	if member == nil {
		return "", nil, fmt.Errorf("collection without member")
	}
	target, targetID := api.ResolveShape(member.Target)
	if target == nil {
		return "", nil, fmt.Errorf("unknown target %s", member.Target)
	}
	switch {
	case target.IsEnum():
		return "string", nil, nil
	case target.Type == "structure":
		return structName(targetID, renames), target, nil
	case target.Type == "timestamp":
		return "common.UnixTime", nil, nil
	case target.Type == "blob":
		return "[]byte", nil, nil
	}
	goType, ok := scalarGoType(target.Type)
	if !ok {
		return "", nil, fmt.Errorf("unsupported element type %q", target.Type)
	}
	return goType, nil, nil
}

func hasRequiredMembers(shape *parser.SmithyShape) bool {
	if shape == nil {
		return false
	}
	for _, m := range shape.Members {
		if m.IsRequired() {
			return true
		}
	}
	return false
}

func structName(id string, renames map[string]string) string {
	if name, ok := renames[id]; ok {
		return name
	}
	return parser.GetShapeName(id)
}

// scalarGoType returns the Go type for primitive Smithy types
func scalarGoType(smithyType string) (string, bool) {
	switch smithyType {
	case "string":
		return "string", true
	case "boolean":
		return "bool", true
	case "byte":
		return "int8", true
	case "short":
		return "int16", true
	case "integer":
		return "int32", true
	case "long":
		return "int64", true
	case "float":
		return "float32", true
	case "double":
		return "float64", true
	}
	return "", false
}

// exportFieldName converts a field name to an exported Go field name
func exportFieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// pascalCase turns an enum member name such as FULL_LOAD_AND_CDC into
// FullLoadAndCdc.
func pascalCase(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}
