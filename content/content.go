package content

import _ "embed"

//go:embed tenant.schema.json
var TenantSchemaJSON string

//go:embed aisf.json
var AISFJSON string

//go:embed aiyf.json
var AIYFJSON string
