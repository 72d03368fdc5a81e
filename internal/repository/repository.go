package repository

// Package repository contains the data access interfaces for every entity
// collection. Implementations live in subpackages (postgres). Patch structs
// use pointer fields so an absent field is distinguishable from a zero value
// and updates stay merges, never overwrites.
