package generator

import (
	"text/template"
)

const header = `// Code generated by cmd/codegen. DO NOT EDIT.

package {{.Package}}
`

var (
	typesTmpl      = template.Must(template.New("types").Parse(header + typesTemplate))
	enumsTmpl      = template.Must(template.New("enums").Parse(header + enumsTemplate))
	accessorsTmpl  = template.Must(template.New("accessors").Parse(header + accessorsTemplate))
	errorsTmpl     = template.Must(template.New("errors").Parse(header + errorsTemplate))
	operationsTmpl = template.Must(template.New("operations").Parse(header + operationsTemplate))
)

const typesTemplate = `{{if .NeedsTime}}
import (
	"{{.Module}}/internal/common"
)
{{end}}
{{- range .Types}}

{{if .IsInput}}// {{.Name}} is the input of the {{.Operation}} operation.
{{- else if .IsOutput}}// {{.Name}} is the output of the {{.Operation}} operation.
{{- else}}// {{.Name}} represents the {{.Name}} structure.
{{- end}}
{{- if .Fields}}
type {{.Name}} struct {
{{- range $i, $f := .Fields}}
{{- if $i}}
{{end}}
	{{$f.Name}} {{$f.GoType}} {{$f.Tag}}
{{- end}}
}
{{- else}}
type {{.Name}} struct{}
{{- end}}
{{- end}}
`

const enumsTemplate = `{{range $e := .Enums}}
// {{.Name}} represents the {{.Name}} enum type
type {{.Name}} string

// Enum values for {{.Name}}
const (
{{- range $m := .Members}}
	{{$m.Name}} {{$e.Name}} = "{{$m.Value}}"
{{- end}}
)

// Values returns all known values for {{.Name}}.
func ({{.Name}}) Values() []{{.Name}} {
	return []{{.Name}}{
{{- range .Members}}
		"{{.Value}}",
{{- end}}
	}
}

// String returns the wire value of {{.Name}}.
func (v {{.Name}}) String() string {
	return string(v)
}
{{end}}`

const accessorsTemplate = `
import (
{{- if .NeedsTime}}
	"time"
{{end}}
	"github.com/aws/aws-sdk-go/aws/awsutil"

{{if .NeedsTime}}	"{{.Module}}/internal/common"
{{end}}	"{{.Module}}/internal/shape"
)
{{range $t := .Types}}
{{- range $f := .Fields}}
{{- if or (eq $f.Kind "scalar") (eq $f.Kind "enum")}}
// Set{{$f.Name}} sets the {{$f.Name}} field's value.
func (s *{{$t.Name}}) Set{{$f.Name}}(v {{$f.ArgType}}) *{{$t.Name}} {
	s.{{$f.Name}} = &v
	return s
}
{{if eq $f.Kind "enum"}}
// Set{{$f.Name}}Value sets the {{$f.Name}} field from the wire form of v.
func (s *{{$t.Name}}) Set{{$f.Name}}Value(v {{$f.EnumType}}) *{{$t.Name}} {
	return s.Set{{$f.Name}}(v.String())
}
{{end}}
{{- else if eq $f.Kind "timestamp"}}
// Set{{$f.Name}} sets the {{$f.Name}} field's value.
func (s *{{$t.Name}}) Set{{$f.Name}}(v time.Time) *{{$t.Name}} {
	s.{{$f.Name}} = common.NewUnixTime(v)
	return s
}
{{else if eq $f.Kind "list"}}
// Set{{$f.Name}} sets the {{$f.Name}} field's value.
func (s *{{$t.Name}}) Set{{$f.Name}}(v {{$f.ArgType}}) *{{$t.Name}} {
	s.{{$f.Name}} = shape.CloneSlice(v)
	return s
}

// Add{{$f.Name}} appends values to the {{$f.Name}} field.
func (s *{{$t.Name}}) Add{{$f.Name}}(v ...{{$f.ElemType}}) *{{$t.Name}} {
	s.{{$f.Name}} = shape.AppendSlice(s.{{$f.Name}}, v...)
	return s
}
{{else if eq $f.Kind "map"}}
// Set{{$f.Name}} sets the {{$f.Name}} field's value.
func (s *{{$t.Name}}) Set{{$f.Name}}(v {{$f.ArgType}}) *{{$t.Name}} {
	s.{{$f.Name}} = shape.CloneMap(v)
	return s
}
{{else}}
// Set{{$f.Name}} sets the {{$f.Name}} field's value.
func (s *{{$t.Name}}) Set{{$f.Name}}(v {{$f.ArgType}}) *{{$t.Name}} {
	s.{{$f.Name}} = v
	return s
}
{{end}}
{{- end}}
{{- if $t.IsInput}}
// OperationName returns the name of the operation {{$t.Name}} is the input of.
func (s *{{$t.Name}}) OperationName() string {
	return "{{$t.Operation}}"
}

// Validate checks that every required member of {{$t.Name}} is set.
func (s *{{$t.Name}}) Validate() error {
	return shape.Validate(s)
}
{{end}}
// String returns the string representation
func (s {{$t.Name}}) String() string {
	return shape.Render(s)
}

// GoString returns the string representation
func (s {{$t.Name}}) GoString() string {
	return awsutil.Prettify(s)
}

// Equal reports whether s and o hold equal field values.
func (s *{{$t.Name}}) Equal(o *{{$t.Name}}) bool {
	return shape.Equal(s, o)
}

// Hash returns a hash code consistent with Equal.
func (s *{{$t.Name}}) Hash() int32 {
	return shape.Hash(s)
}
{{end}}`

const errorsTemplate = `
import (
	"fmt"

	"github.com/aws/smithy-go"
)
{{range .Errors}}
// {{.Name}} is the {{.Name}} error shape.
type {{.Name}} struct {
	Message *string ` + "`" + `json:"message,omitempty"` + "`" + `
}

// Error implements the error interface.
func (e *{{.Name}}) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

// ErrorCode returns the DMS error code.
func (e *{{.Name}}) ErrorCode() string {
	return "{{.Name}}"
}

// ErrorMessage returns the error message.
func (e *{{.Name}}) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

// ErrorFault indicates whether this is a client or server error.
func (e *{{.Name}}) ErrorFault() smithy.ErrorFault {
	return {{if eq .Fault "server"}}smithy.FaultServer{{else}}smithy.FaultClient{{end}}
}
{{end}}
var errorFactories = map[string]func(message *string) error{
{{- range .Errors}}
	"{{.Name}}": func(m *string) error { return &{{.Name}}{Message: m} },
{{- end}}
}

// NewAPIError returns the typed error shape registered for code, or a
// generic API error when the code is unknown.
func NewAPIError(code, message string) error {
	if factory, ok := errorFactories[code]; ok {
		return factory(&message)
	}
	return &smithy.GenericAPIError{Code: code, Message: message, Fault: smithy.FaultUnknown}
}
`

const operationsTemplate = `
import (
	"context"

	"github.com/aws/smithy-go"
)

const (
	// ServiceID is the X-Amz-Target prefix of every operation.
	ServiceID = "{{.ServiceID}}"

	// SigningName is the SigV4 signing name of the service.
	SigningName = "{{.SigningName}}"

	// EndpointPrefix is the host prefix of the regional endpoints.
	EndpointPrefix = "{{.SigningName}}"

	// APIVersion is the version of the service model.
	APIVersion = "{{.APIVersion}}"
)

// Request is implemented by every operation input shape.
type Request interface {
	OperationName() string
	Validate() error
}

// DMSAPI defines the AWS Database Migration Service operations.
type DMSAPI interface {
{{- range .Operations}}
	{{.Name}}(ctx context.Context, req *{{.Name}}Request) (*{{.Name}}Response, error)
{{- end}}
}

var operationNames = []string{
{{- range .Operations}}
	"{{.Name}}",
{{- end}}
}

// OperationNames returns the names of all operations in sorted order.
func OperationNames() []string {
	return append([]string(nil), operationNames...)
}

// NewRequest returns an empty input shape for the named operation.
func NewRequest(operation string) (Request, bool) {
	switch operation {
{{- range .Operations}}
	case "{{.Name}}":
		return &{{.Name}}Request{}, true
{{- end}}
	}
	return nil, false
}

// NewResponse returns an empty output shape for the named operation.
func NewResponse(operation string) (any, bool) {
	switch operation {
{{- range .Operations}}
	case "{{.Name}}":
		return &{{.Name}}Response{}, true
{{- end}}
	}
	return nil, false
}

// UnimplementedDMSAPI can be embedded to satisfy DMSAPI; every operation
// returns a NotImplemented server fault.
type UnimplementedDMSAPI struct{}

func notImplemented(operation string) error {
	return &smithy.GenericAPIError{
		Code:    "NotImplemented",
		Message: operation + " is not implemented",
		Fault:   smithy.FaultServer,
	}
}
{{range .Operations}}
// {{.Name}} returns a NotImplemented fault.
func (UnimplementedDMSAPI) {{.Name}}(context.Context, *{{.Name}}Request) (*{{.Name}}Response, error) {
	return nil, notImplemented("{{.Name}}")
}
{{end}}`
