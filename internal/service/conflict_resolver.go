// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-object-sync/models"

// maxNestedDepth is the number of recovery saves allowed after the first
// save of a batch.
const maxNestedDepth = 3

// ResolveConflict decides what to re-submit for a local object the server
// rejected, given its remote copy.
//
// Under PolicyReplace the newer object by UpdatedAt wins, local on a tie, and
// the result carries the remote checksum as PreviousChecksum so the next save
// is accepted. Under PolicyFetchRemoteAndError it never merges and returns a
// *ConflictError.
func ResolveConflict(local, remote models.SyncObject, policy models.ConflictPolicy) (models.SyncObject, error) {
	switch policy {
	case models.PolicyReplace:
		winner := local
		if remote.UpdatedAt.After(local.UpdatedAt) {
			winner = remote
		}
		winner.PreviousChecksum = remote.DataChecksum
		winner.ReceivedAt = nil
		winner.DataURL = ""
		return winner, nil
	default:
		return models.SyncObject{}, &ConflictError{
			Conflicted: []models.SyncObject{local},
			Remote:     []models.SyncObject{remote},
		}
	}
}

// ResolveMissingRemote prepares a rejected object whose remote copy does not
// exist: it is re-submitted as a create.
func ResolveMissingRemote(local models.SyncObject) models.SyncObject {
	local.PreviousChecksum = ""
	return local
}

// remoteWins reports whether ResolveConflict picked the remote copy.
func remoteWins(local, remote models.SyncObject) bool {
	return remote.UpdatedAt.After(local.UpdatedAt)
}
