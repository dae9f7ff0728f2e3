// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewID returns a UUIDv7 string. Version 7 ids sort by creation time, so
// an owner's file rows and storage keys list in upload order. A random v4
// id is returned if the v7 clock sequence cannot be read.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// UUIDGenerator hands out [NewID] values to code that takes a generator.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (UUIDGenerator) Generate() string {
	return NewID()
}
