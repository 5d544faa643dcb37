package interfaces

import (
	"context"

	domaintypes "ecsign/internal/domain/types"
)

// KeyService creates stored key pairs and signs or verifies with them.
type KeyService interface {
	Generate(ctx context.Context, name domaintypes.KeyName, passphrase string) (domaintypes.KeyInfo, error)
	Info(ctx context.Context, name domaintypes.KeyName) (domaintypes.KeyInfo, error)
	List(ctx context.Context) ([]domaintypes.KeyInfo, error)
	Delete(ctx context.Context, name domaintypes.KeyName) error

	Sign(
		ctx context.Context,
		name domaintypes.KeyName,
		passphrase string,
		data []byte,
	) (string, error)
	Verify(
		ctx context.Context,
		name domaintypes.KeyName,
		data []byte,
		signature string,
	) (bool, error)

	ExportPublic(ctx context.Context, name domaintypes.KeyName) ([]byte, error)
	ExportPrivate(ctx context.Context, name domaintypes.KeyName, passphrase string) ([]byte, error)
}
