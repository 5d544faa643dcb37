package domain

import (
	interfaces "ecsign/internal/domain/interfaces"
	types "ecsign/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyName     = types.KeyName
	Fingerprint = types.Fingerprint
	KeyInfo     = types.KeyInfo
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyService = interfaces.KeyService
	KeyStore   = interfaces.KeyStore
)
