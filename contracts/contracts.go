package contracts

import _ "embed"

//go:embed registration.yaml
var RegistrationYAML []byte
