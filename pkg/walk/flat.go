// SPDX-License-Identifier: MPL-2.0

package walk

import "context"

// walkFlat emits the component files lying directly in the level directory.
// Subdirectories are never entered.
func walkFlat(ctx context.Context, scan *levelScan) error {
	entries, err := scan.readDir(ctx, scan.level)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := scan.file(ctx, scan.level, entry); err != nil {
			return err
		}
	}

	return nil
}
