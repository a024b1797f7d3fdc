// Package api holds the request, response and resource shapes of the AWS
// Database Migration Service API (version 2016-01-01).
//
// Every shape is a plain struct whose fields are all optional. Setters
// return the receiver so calls can be chained:
//
//	req := new(api.CreateReplicationInstanceRequest).
//		SetReplicationInstanceIdentifier("myrepinstance").
//		SetAllocatedStorage(100).
//		SetReplicationInstanceClass("dms.t2.medium").
//		SetMultiAZ(false)
//
// Setters never validate. Required members are checked by Validate, which
// the DMS client calls before a request leaves the process.
//
// The types, enums, accessors, errors and operations files are generated
// from api-models/dms.json by cmd/codegen.
package api

//go:generate go run ../../cmd/codegen -model ../../api-models/dms.json -output .
