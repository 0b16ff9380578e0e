package service

import (
	"context"
	"fmt"

	"gocloud.dev/secrets"

	// Register master keeper provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// OpenMasterKeeper opens the keeper identified by keyURI for wrapping key
// material at rest. Supported schemes: awskms://, gcpkms://, azurekeyvault://,
// hashivault://, base64key:// (local/test).
//
// The returned *secrets.Keeper satisfies the MasterKeeper interface; callers
// own its Close.
func OpenMasterKeeper(ctx context.Context, keyURI string) (*secrets.Keeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open master keeper: %w", err)
	}
	return keeper, nil
}
