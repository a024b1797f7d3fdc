package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandemo-ya/dms-go/cmd/codegen/parser"
)

const testModel = `{
	"smithy": "2.0",
	"shapes": {
		"ns#Svc": {
			"type": "service",
			"version": "2016-01-01",
			"operations": [{"target": "ns#StartThing"}],
			"traits": {"aws.auth#sigv4": {"name": "dms"}}
		},
		"ns#StartThing": {
			"type": "operation",
			"input": {"target": "ns#StartThingMessage"},
			"output": {"target": "ns#StartThingResponse"},
			"errors": [{"target": "ns#ThingFault"}]
		},
		"ns#StartThingMessage": {
			"type": "structure",
			"members": {
				"ThingArn": {"target": "ns#String", "traits": {"smithy.api#required": {}}},
				"Mode": {"target": "ns#ModeValue"},
				"StartTime": {"target": "ns#TStamp"},
				"Filters": {"target": "ns#FilterList"},
				"Names": {"target": "ns#StringList"},
				"Labels": {"target": "ns#LabelMap"},
				"Pairs": {"target": "ns#PairList", "traits": {"smithy.api#required": {}}},
				"Count": {"target": "ns#Integer"}
			}
		},
		"ns#StartThingResponse": {"type": "structure", "members": {}},
		"ns#Filter": {
			"type": "structure",
			"members": {"Name": {"target": "ns#String", "traits": {"smithy.api#required": {}}}}
		},
		"ns#FilterList": {"type": "list", "member": {"target": "ns#Filter"}},
		"ns#Pair": {
			"type": "structure",
			"members": {"Key": {"target": "ns#String"}}
		},
		"ns#PairList": {"type": "list", "member": {"target": "ns#Pair"}},
		"ns#StringList": {"type": "list", "member": {"target": "ns#String"}},
		"ns#LabelMap": {"type": "map", "key": {"target": "ns#String"}, "value": {"target": "ns#String"}},
		"ns#ThingFault": {
			"type": "structure",
			"members": {"message": {"target": "ns#String"}},
			"traits": {"smithy.api#error": "server"}
		},
		"ns#ModeValue": {
			"type": "enum",
			"members": {
				"FULL_LOAD_AND_CDC": {"target": "smithy.api#Unit", "traits": {"smithy.api#enumValue": "full-load-and-cdc"}}
			}
		},
		"ns#String": {"type": "string"},
		"ns#Integer": {"type": "integer"},
		"ns#TStamp": {"type": "timestamp"}
	}
}`

func parseTestModel(t *testing.T) *parser.SmithyAPI {
	t.Helper()
	api, err := parser.Parse([]byte(testModel))
	require.NoError(t, err)
	return api
}

func TestBuildModel(t *testing.T) {
	g := New("api", "example.com/mod", t.TempDir())
	model, err := g.buildModel(parseTestModel(t))
	require.NoError(t, err)

	assert.Equal(t, "Svc", model.ServiceID)
	assert.Equal(t, "dms", model.SigningName)
	assert.Equal(t, "2016-01-01", model.APIVersion)
	assert.True(t, model.NeedsTime)

	var names []string
	for _, ti := range model.Types {
		names = append(names, ti.Name)
	}
	assert.Equal(t, []string{"Filter", "Pair", "StartThingRequest", "StartThingResponse"}, names)

	req := model.Types[2]
	assert.True(t, req.IsInput)
	assert.Equal(t, "StartThing", req.Operation)

	fields := make(map[string]FieldInfo)
	var order []string
	for _, f := range req.Fields {
		fields[f.Name] = f
		order = append(order, f.Name)
	}
	assert.Equal(t, []string{"Count", "Filters", "Labels", "Mode", "Names", "Pairs", "StartTime", "ThingArn"}, order)

	assert.Equal(t, "*int32", fields["Count"].GoType)
	assert.Equal(t, "[]Filter", fields["Filters"].GoType)
	assert.Equal(t, "omitempty,dive", fields["Filters"].Validate)
	assert.Equal(t, "map[string]string", fields["Labels"].GoType)
	assert.Equal(t, kindEnum, fields["Mode"].Kind)
	assert.Equal(t, "ModeValue", fields["Mode"].EnumType)
	assert.Equal(t, "[]string", fields["Names"].GoType)
	assert.Empty(t, fields["Names"].Validate)
	assert.Equal(t, "required,dive", fields["Pairs"].Validate)
	assert.Equal(t, "*common.UnixTime", fields["StartTime"].GoType)
	assert.Equal(t, "required", fields["ThingArn"].Validate)
	assert.Equal(t, "`json:\"ThingArn,omitempty\" validate:\"required\"`", fields["ThingArn"].Tag())

	require.Len(t, model.Enums, 1)
	assert.Equal(t, "ModeValueFullLoadAndCdc", model.Enums[0].Members[0].Name)

	require.Len(t, model.Errors, 1)
	assert.Equal(t, "server", model.Errors[0].Fault)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	g := New("api", "example.com/mod", dir)
	require.NoError(t, g.Generate(parseTestModel(t)))

	read := func(name string) string {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return string(data)
	}

	types := read("types.go")
	assert.Contains(t, types, "// Code generated by cmd/codegen. DO NOT EDIT.")
	assert.Contains(t, types, "// StartThingRequest is the input of the StartThing operation.")
	assert.Contains(t, types, "type StartThingResponse struct{}")
	assert.Contains(t, types, "ThingArn *string `json:\"ThingArn,omitempty\" validate:\"required\"`")
	assert.Contains(t, types, "Pairs []Pair `json:\"Pairs,omitempty\" validate:\"required,dive\"`")

	enums := read("enums.go")
	assert.Contains(t, enums, `ModeValueFullLoadAndCdc ModeValue = "full-load-and-cdc"`)
	assert.Contains(t, enums, "func (ModeValue) Values() []ModeValue {")

	accessors := read("accessors.go")
	assert.Contains(t, accessors, "func (s *StartThingRequest) SetModeValue(v ModeValue) *StartThingRequest {")
	assert.Contains(t, accessors, "func (s *StartThingRequest) SetStartTime(v time.Time) *StartThingRequest {")
	assert.Contains(t, accessors, "func (s *StartThingRequest) AddFilters(v ...Filter) *StartThingRequest {")
	assert.Contains(t, accessors, "s.Labels = shape.CloneMap(v)")
	assert.Contains(t, accessors, `return "StartThing"`)
	assert.NotContains(t, accessors, "func (s *StartThingResponse) Validate() error")

	errs := read("errors.go")
	assert.Contains(t, errs, "return smithy.FaultServer")

	ops := read("operations.go")
	assert.Contains(t, ops, `ServiceID = "Svc"`)
	assert.Contains(t, ops, "StartThing(ctx context.Context, req *StartThingRequest) (*StartThingResponse, error)")

	_, err := os.Stat(filepath.Join(dir, "types.go.unformatted"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateUnknownTarget(t *testing.T) {
	api := parseTestModel(t)
	api.Shapes["ns#Filter"].Members["Broken"] = &parser.SmithyMember{Target: "ns#Nope"}

	err := New("api", "example.com/mod", t.TempDir()).Generate(api)
	assert.Error(t, err)
}

func TestGenerateDMSModel(t *testing.T) {
	api, err := parser.ParseSmithyJSON(filepath.Join("..", "..", "..", "api-models", "dms.json"))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, New("api", "github.com/nandemo-ya/dms-go", dir).Generate(api))

	data, err := os.ReadFile(filepath.Join(dir, "operations.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `ServiceID = "AmazonDMSv20160101"`)
	assert.Contains(t, string(data), "CreateReplicationInstance(ctx context.Context, req *CreateReplicationInstanceRequest)")

	// The checked-in package must be exactly what the generator emits
	for _, name := range []string{"types.go", "enums.go", "accessors.go", "errors.go", "operations.go"} {
		generated, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		checkedIn, err := os.ReadFile(filepath.Join("..", "..", "..", "internal", "api", name))
		require.NoError(t, err)
		assert.Equal(t, string(checkedIn), string(generated), "internal/api/%s is out of date", name)
	}
}

func TestPascalCase(t *testing.T) {
	tests := map[string]string{
		"FULL_LOAD":   "FullLoad",
		"SCRAM_SHA_1": "ScramSha1",
		"none":        "None",
		"":            "",
	}
	for in, want := range tests {
		assert.Equal(t, want, pascalCase(in), in)
	}
}
