package model

// Package model contains domain models/data structures.
// Pure structs shared across layers (HTTP, service, storage); no business
// logic and no persistence tags here.
