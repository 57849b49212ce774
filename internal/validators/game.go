// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

const (
	// FieldLogin targets the login of credentials.
	FieldLogin = "login"

	// FieldPassword targets the password of credentials.
	FieldPassword = "password"

	// FieldName targets the human-readable name of a game.
	FieldName = "name"

	// FieldData targets the encoded snapshot payload of a game.
	FieldData = "data"

	// FieldVersion targets the version written by a persist request.
	FieldVersion = "version"

	// FieldIDs targets the id list of a batch fetch.
	FieldIDs = "ids"

	// FieldFactories targets the factory list and map of a snapshot.
	FieldFactories = "factories"

	// FieldSolvers targets the solver map of a snapshot.
	FieldSolvers = "solvers"
)

const (
	maxNameLength  = 200
	maxLoginLength = 64
	maxBatchIDs    = 500
)
