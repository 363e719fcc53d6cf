// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the bemwalk CLI commands.
package cmd
